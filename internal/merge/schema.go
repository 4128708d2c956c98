// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// schema.go compiles the `merge` struct tags of an Override type into a plan
// that the combinator in merge.go evaluates. Plans are compiled once per
// (value type, override type) pair and cached.
package merge

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ruleKind is the merge policy of one override field.
type ruleKind int

const (
	ruleID ruleKind = iota
	ruleScalar
	ruleReplace
	ruleNested
	ruleLines
)

// rule binds one override field to the base field it merges into.
type rule struct {
	name     string
	kind     ruleKind
	nonEmpty bool         // replace: ignore empty slices
	over     int          // field index in the override struct
	base     int          // field index in the base struct
	baseType reflect.Type // type of the base field
	basePtr  bool         // nested: base field is a pointer to the block
	nested   *plan        // nested block plan, or element plan for replace
}

// plan is the compiled merge schema of a (value, override) type pair.
type plan struct {
	base  reflect.Type
	over  reflect.Type
	rules []rule
}

type planKey struct {
	base reflect.Type
	over reflect.Type
}

var (
	plansMu sync.RWMutex
	plans   = make(map[planKey]*plan)
)

// lookup returns the cached plan for the pair, compiling it on first use.
func lookup(base, over reflect.Type) (*plan, error) {
	key := planKey{base: base, over: over}

	plansMu.RLock()
	p := plans[key]
	plansMu.RUnlock()
	if p != nil {
		return p, nil
	}

	p, err := compile(base, over)
	if err != nil {
		return nil, err
	}

	plansMu.Lock()
	plans[key] = p
	plansMu.Unlock()
	return p, nil
}

// mustPlan is lookup for pairs that are fixed at compile time. A bad tag is
// a programming error in the models package.
func mustPlan(base, over reflect.Type) *plan {
	p, err := lookup(base, over)
	if err != nil {
		panic(err)
	}
	return p
}

func compile(base, over reflect.Type) (*plan, error) {
	if base.Kind() != reflect.Struct || over.Kind() != reflect.Struct {
		return nil, fmt.Errorf("merge: %v and %v must both be structs", base, over)
	}
	if err := checkDefaults(base); err != nil {
		return nil, err
	}

	p := &plan{base: base, over: over}
	var lines []rule
	for i := 0; i < over.NumField(); i++ {
		f := over.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, ok := f.Tag.Lookup("merge")
		if !ok {
			return nil, fmt.Errorf("merge: %s.%s has no merge tag", over.Name(), f.Name)
		}
		if tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		target := f.Name
		if parts[0] == "lines" {
			if len(parts) != 2 {
				return nil, fmt.Errorf("merge: %s.%s: lines needs a target field", over.Name(), f.Name)
			}
			target = parts[1]
		}
		bf, ok := base.FieldByName(target)
		if !ok || len(bf.Index) != 1 {
			return nil, fmt.Errorf("merge: %s has no field %s for %s.%s", base.Name(), target, over.Name(), f.Name)
		}

		r := rule{name: f.Name, over: i, base: bf.Index[0], baseType: bf.Type}
		switch parts[0] {
		case "id", "scalar":
			if f.Type.Kind() != reflect.Pointer || f.Type.Elem() != bf.Type {
				return nil, fmt.Errorf("merge: %s.%s must be *%v", over.Name(), f.Name, bf.Type)
			}
			r.kind = ruleScalar
			if parts[0] == "id" {
				r.kind = ruleID
			}
		case "replace":
			if f.Type.Kind() != reflect.Slice || bf.Type.Kind() != reflect.Slice {
				return nil, fmt.Errorf("merge: %s.%s: replace needs slices", over.Name(), f.Name)
			}
			r.kind = ruleReplace
			r.nonEmpty = len(parts) > 1 && parts[1] == "nonempty"
			if f.Type.Elem() != bf.Type.Elem() {
				elem, err := lookup(bf.Type.Elem(), f.Type.Elem())
				if err != nil {
					return nil, err
				}
				r.nested = elem
			}
		case "nested":
			if f.Type.Kind() != reflect.Pointer || f.Type.Elem().Kind() != reflect.Struct {
				return nil, fmt.Errorf("merge: %s.%s: nested needs a struct pointer", over.Name(), f.Name)
			}
			bt := bf.Type
			if bt.Kind() == reflect.Pointer {
				r.basePtr = true
				bt = bt.Elem()
			}
			block, err := lookup(bt, f.Type.Elem())
			if err != nil {
				return nil, err
			}
			r.kind = ruleNested
			r.nested = block
		case "lines":
			if f.Type != reflect.TypeFor[*string]() || bf.Type != reflect.TypeFor[[]string]() {
				return nil, fmt.Errorf("merge: %s.%s: lines maps *string onto []string", over.Name(), f.Name)
			}
			r.kind = ruleLines
			lines = append(lines, r)
			continue
		default:
			return nil, fmt.Errorf("merge: %s.%s: unknown policy %q", over.Name(), f.Name, parts[0])
		}
		p.rules = append(p.rules, r)
	}

	// Text fields win over the slice they feed.
	p.rules = append(p.rules, lines...)
	return p, nil
}

// checkDefaults verifies every `default` tag of t parses into its field.
func checkDefaults(t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		v := reflect.New(f.Type).Elem()
		if err := setDefault(v, def); err != nil {
			return fmt.Errorf("merge: %s.%s default %q: %w", t.Name(), f.Name, def, err)
		}
	}
	return nil
}

// setDefault parses def into v according to v's kind.
func setDefault(v reflect.Value, def string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(def)
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(def, 64)
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
