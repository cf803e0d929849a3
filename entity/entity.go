// SPDX-License-Identifier: MIT
//
// File: entity.go
// Role: Identity capability, record header and the canonical string form.

package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformedData indicates that a serialized record is structurally invalid:
// a required field is missing, a class name does not match, or a value has the wrong shape.
var ErrMalformedData = errors.New("entity: malformed data")

// Identifiable is implemented by every entity. ID is immutable for the lifetime
// of the value; ClassName is static per concrete type.
type Identifiable interface {
	ID() string
	ClassName() string
}

// Serializable is implemented by entities that can produce a round-trippable record R.
type Serializable[R any] interface {
	Serialize() R
}

// Entity combines both capabilities with the canonical String form.
type Entity[R any] interface {
	Identifiable
	Serializable[R]
	fmt.Stringer
}

// Header is the leading field set of every record.
// It is embedded (inline) into the concrete record types.
type Header struct {
	ID        string `json:"id" yaml:"id" msgpack:"id"`
	ClassName string `json:"class_name" yaml:"class_name" msgpack:"class_name"`
}

// HeaderOf builds the record header of e.
func HeaderOf(e Identifiable) Header {
	return Header{ID: e.ID(), ClassName: e.ClassName()}
}

// Check validates the header against the expected class name.
// An empty id or a class mismatch is reported as ErrMalformedData.
func (h Header) Check(className string) error {
	if h.ID == "" {
		return fmt.Errorf("%w: %s record has empty id", ErrMalformedData, className)
	}
	if h.ClassName != className {
		return fmt.Errorf("%w: class_name %q, want %q", ErrMalformedData, h.ClassName, className)
	}

	return nil
}

// Describe returns the canonical representation "<ClassName object with id=ID>".
func Describe(e Identifiable) string {
	return "<" + e.ClassName() + " object with id=" + e.ID() + ">"
}

// NewID returns a fresh random identifier (UUIDv4, canonical textual form).
func NewID() string {
	return uuid.NewString()
}

// IDOrNew returns id unchanged, or a fresh identifier when id is empty.
func IDOrNew(id string) string {
	if id == "" {
		return NewID()
	}

	return id
}
