// Package entity defines the identity and serialization contract shared by every
// domain object of the framework: graph vertices and edges, graphs themselves,
// game actions and Kripke structures.
//
// The contract is split into two small capabilities instead of a base type:
//
//	Identifiable   - ID() and ClassName(); String() derives from them.
//	Serializable   - Serialize() returns a plain record that any codec can encode.
//
// Each concrete type owns its record type (VertexRecord, EdgeRecord, ...) and a
// matching XFromRecord constructor. Records embed Header so the logical field set
// always starts with {id, class_name}. Decoding failures are reported with
// ErrMalformedData and must satisfy the round-trip law:
//
//	x2, _ := XFromRecord(x.Serialize())   // x2 equals x in id and all declared fields
package entity
