// SPDX-License-Identifier: MIT

package game

import (
	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/entity"
)

// ActionClass is the class name of Action records.
const ActionClass = "Action"

// Action is a named move that can label transitions.
type Action struct {
	id string

	// Description is free text.
	Description string
}

// NewAction returns an Action. An empty id is replaced by a generated one.
func NewAction(id, description string) *Action {
	return &Action{id: entity.IDOrNew(id), Description: description}
}

// ID returns the immutable action identifier.
func (a *Action) ID() string { return a.id }

// ClassName returns "Action".
func (a *Action) ClassName() string { return ActionClass }

// String returns "<Action object with id=ID>".
func (a *Action) String() string { return entity.Describe(a) }

// ActionRecord is the serialized form of an Action.
type ActionRecord struct {
	entity.Header `json:",inline" yaml:",inline" msgpack:",inline"`
	Description   string `json:"description" yaml:"description" msgpack:"description"`
}

// Serialize returns the record of a.
func (a *Action) Serialize() ActionRecord {
	return ActionRecord{Header: entity.HeaderOf(a), Description: a.Description}
}

// ActionFromRecord reconstructs an Action; a bad header yields entity.ErrMalformedData.
func ActionFromRecord(rec ActionRecord) (*Action, error) {
	if err := rec.Check(ActionClass); err != nil {
		return nil, err
	}

	return &Action{id: rec.ID, Description: rec.Description}, nil
}

// MarshalAction encodes a in format f.
func MarshalAction(a *Action, f codec.Format) ([]byte, error) {
	return codec.Marshal(f, a.Serialize())
}

// UnmarshalAction decodes an Action from data in format f.
func UnmarshalAction(data []byte, f codec.Format) (*Action, error) {
	var rec ActionRecord
	if err := codec.Unmarshal(f, data, &rec); err != nil {
		return nil, err
	}

	return ActionFromRecord(rec)
}
