// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package merge combines a fully populated content value with a sparse
// Override. Scalars take the override when it is set, slices are replaced
// wholesale, and nested blocks are merged field by field. A block that only
// the override supplies starts from its neutral defaults. Every function is
// pure and never fails.
package merge

import (
	"reflect"
)

// Apply returns base combined with override. A nil override yields a copy
// of base with nil lists made empty, the same as an empty override. An
// override carrying an id different from base's leaves base unchanged.
func Apply[T, O any](base T, override *O) T {
	out, _ := applyID(base, override)
	return out
}

func applyID[T, O any](base T, override *O) (T, bool) {
	if override == nil {
		return Normalize(base), true
	}
	p := mustPlan(reflect.TypeFor[T](), reflect.TypeFor[O]())
	v, ok := p.apply(reflect.ValueOf(base), reflect.ValueOf(override))
	if !ok {
		return Clone(base), false
	}
	return complete(v, false).Interface().(T), true
}

// Clone returns a deep copy of v. Slices and pointers are never shared.
func Clone[T any](v T) T {
	return clone(reflect.ValueOf(v)).Interface().(T)
}

// Complete fills every zero field of the nested blocks reachable from v with
// its neutral default and turns nil slices into empty ones. It is meant for
// values where an empty field means unset: authored documents and freshly
// built entities.
func Complete[T any](v T) T {
	return complete(reflect.ValueOf(v), true).Interface().(T)
}

// Normalize returns a copy of v with every nil slice made empty. Fields are
// otherwise kept as they are, empty strings included.
func Normalize[T any](v T) T {
	return complete(reflect.ValueOf(v), false).Interface().(T)
}

// apply evaluates the plan. base is a struct of p.base, over a pointer to
// p.over (possibly nil).
func (p *plan) apply(base, over reflect.Value) (reflect.Value, bool) {
	out := clone(base)
	if !over.IsValid() || over.IsNil() {
		return out, true
	}
	ov := over.Elem()

	for _, r := range p.rules {
		if r.kind != ruleID {
			continue
		}
		of := ov.Field(r.over)
		if of.IsNil() {
			continue
		}
		bf := out.Field(r.base)
		if bf.IsZero() {
			bf.Set(of.Elem())
			continue
		}
		if bf.Interface() != of.Elem().Interface() {
			return out, false
		}
	}

	for _, r := range p.rules {
		bf := out.Field(r.base)
		of := ov.Field(r.over)
		switch r.kind {
		case ruleScalar:
			if !of.IsNil() {
				bf.Set(clone(of.Elem()))
			}
		case ruleReplace:
			if of.IsNil() || (r.nonEmpty && of.Len() == 0) {
				continue
			}
			bf.Set(r.replace(of))
		case ruleNested:
			if r.basePtr {
				if bf.IsNil() && of.IsNil() {
					continue
				}
				start := r.nested.fresh()
				if !bf.IsNil() {
					start = bf.Elem()
				}
				v, _ := r.nested.apply(start, of)
				ptr := reflect.New(r.nested.base)
				ptr.Elem().Set(complete(v, false))
				bf.Set(ptr)
				continue
			}
			v, _ := r.nested.apply(bf, of)
			bf.Set(complete(v, false))
		case ruleLines:
			if !of.IsNil() {
				bf.Set(reflect.ValueOf(ParseBullets(of.Elem().String())))
			}
		}
	}
	return out, true
}

// fresh returns a new base value holding only neutral defaults. Blocks the
// override introduces start from it, so fields the override sets, to an
// empty string or otherwise, win over the defaults.
func (p *plan) fresh() reflect.Value {
	return complete(reflect.Zero(p.base), true)
}

// replace builds the new base slice from an override slice. Elements of a
// different type are materialized onto a fresh base element.
func (r rule) replace(of reflect.Value) reflect.Value {
	n := of.Len()
	out := reflect.MakeSlice(r.baseType, n, n)
	for i := 0; i < n; i++ {
		if r.nested == nil {
			out.Index(i).Set(clone(of.Index(i)))
			continue
		}
		v, _ := r.nested.apply(r.nested.fresh(), of.Index(i).Addr())
		out.Index(i).Set(complete(v, false))
	}
	return out
}

// clone deep-copies v into a new addressable value.
func clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.New(v.Type()).Elem()
		}
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(clone(v.Elem()))
		out := reflect.New(v.Type()).Elem()
		out.Set(p)
		return out
	case reflect.Slice:
		out := reflect.New(v.Type()).Elem()
		if v.IsNil() {
			return out
		}
		s := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			s.Index(i).Set(clone(v.Index(i)))
		}
		out.Set(s)
		return out
	case reflect.Map:
		out := reflect.New(v.Type()).Elem()
		if v.IsNil() {
			return out
		}
		m := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m.SetMapIndex(iter.Key(), clone(iter.Value()))
		}
		out.Set(m)
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(clone(v.Field(i)))
		}
		return out
	default:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)
		return out
	}
}

// complete returns an addressable copy of the struct v with nil slices made
// empty and, when defaults is set, zero fields given their neutral default.
func complete(v reflect.Value, defaults bool) reflect.Value {
	out := clone(v)
	if out.Kind() == reflect.Struct {
		fill(out, defaults)
	}
	return out
}

// fill replaces nil slices with empty ones and descends into nested structs
// and struct slices. With defaults set it also fills zero fields carrying a
// `default` tag.
func fill(v reflect.Value, defaults bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if def, ok := sf.Tag.Lookup("default"); ok && defaults && fv.IsZero() {
			// Tags were validated when the plan was compiled.
			_ = setDefault(fv, def)
		}
		switch fv.Kind() {
		case reflect.Slice:
			if sf.Type.Elem().Kind() == reflect.Uint8 {
				continue
			}
			if fv.IsNil() {
				fv.Set(reflect.MakeSlice(sf.Type, 0, 0))
				continue
			}
			if sf.Type.Elem().Kind() == reflect.Struct {
				for j := 0; j < fv.Len(); j++ {
					fill(fv.Index(j), defaults)
				}
			}
		case reflect.Struct:
			fill(fv, defaults)
		case reflect.Pointer:
			if !fv.IsNil() && fv.Elem().Kind() == reflect.Struct {
				fill(fv.Elem(), defaults)
			}
		}
	}
}
