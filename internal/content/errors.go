// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"

	"marketsite/internal/models"
)

var (
	// ErrNotFound is returned when a mutation targets an id the store does
	// not hold.
	ErrNotFound = errors.New("content not found")

	// ErrIDMismatch is returned when an override names a different id than
	// the entity it is applied to. Nothing is changed.
	ErrIDMismatch = errors.New("override id does not match target")

	// ErrExists is returned when an add names an id that is already taken.
	ErrExists = errors.New("content id already exists")
)

// PersistError is a failed write-through. The in-memory change it belongs
// to stays applied.
type PersistError struct {
	Domain models.Domain
	ID     string
	Op     Op
	Err    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s %s/%s: %v", e.Op, e.Domain, e.ID, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
