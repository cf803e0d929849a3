// SPDX-License-Identifier: MIT
//
// File: kripke.go
// Role: Kripke structure on top of core.Graph: alphabet, state labels, initial states.
// Invariants:
//   - Every labelled state and every initial state is a member of the graph.
//   - Every label is a member of the alphabet.

package game

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/iglsynth/iglsynth/bfs"
	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/core"
	"github.com/iglsynth/iglsynth/entity"
)

// KripkeClass is the class name of Kripke records.
const KripkeClass = "Kripke"

// ErrUnknownProposition indicates a label outside the alphabet.
var ErrUnknownProposition = errors.New("game: unknown atomic proposition")

// Kripke is a directed graph of states with a labelling function and initial states.
type Kripke struct {
	*core.Graph

	alphabet map[string]struct{}
	labels   map[string]map[string]struct{} // state -> propositions
	initial  map[string]struct{}
}

// NewKripke creates an empty Kripke structure over alphabet.
// Duplicate and empty proposition names are dropped.
func NewKripke(alphabet []string, opts ...core.GraphOption) *Kripke {
	k := newKripke(alphabet)
	k.Graph = core.NewGraph(append(slices.Clone(opts), core.WithVertexRemovedHook(k.forget))...)

	return k
}

func newKripke(alphabet []string) *Kripke {
	k := &Kripke{
		alphabet: make(map[string]struct{}, len(alphabet)),
		labels:   make(map[string]map[string]struct{}),
		initial:  make(map[string]struct{}),
	}
	for _, p := range alphabet {
		if p != "" {
			k.alphabet[p] = struct{}{}
		}
	}

	return k
}

// forget drops every annotation of a removed state.
func (k *Kripke) forget(state string) {
	delete(k.labels, state)
	delete(k.initial, state)
}

// ClassName returns "Kripke".
func (k *Kripke) ClassName() string { return KripkeClass }

// String returns "<Kripke object with id=ID>".
func (k *Kripke) String() string { return entity.Describe(k) }

// Alphabet returns the atomic propositions, sorted.
func (k *Kripke) Alphabet() []string { return sortedSet(k.alphabet) }

// Label adds props to the label set of state.
// Fails with core.ErrUnknownVertex or ErrUnknownProposition without changing anything.
func (k *Kripke) Label(state string, props ...string) error {
	if !k.ContainsVertex(state) {
		return fmt.Errorf("game: label %q: %w", state, core.ErrUnknownVertex)
	}
	for _, p := range props {
		if _, ok := k.alphabet[p]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProposition, p)
		}
	}
	set, ok := k.labels[state]
	if !ok {
		set = make(map[string]struct{}, len(props))
		k.labels[state] = set
	}
	for _, p := range props {
		set[p] = struct{}{}
	}

	return nil
}

// Labels returns the sorted propositions that hold in state.
func (k *Kripke) Labels(state string) ([]string, error) {
	if !k.ContainsVertex(state) {
		return nil, fmt.Errorf("game: labels of %q: %w", state, core.ErrUnknownVertex)
	}

	return sortedSet(k.labels[state]), nil
}

// StatesWith returns the sorted states whose label contains prop.
func (k *Kripke) StatesWith(prop string) []string {
	var out []string
	for state, set := range k.labels {
		if _, ok := set[prop]; ok {
			out = append(out, state)
		}
	}
	slices.Sort(out)

	return out
}

// Initialize replaces the initial states. Every state must be a member.
func (k *Kripke) Initialize(states ...string) error {
	for _, s := range states {
		if !k.ContainsVertex(s) {
			return fmt.Errorf("game: initial state %q: %w", s, core.ErrUnknownVertex)
		}
	}
	k.initial = make(map[string]struct{}, len(states))
	for _, s := range states {
		k.initial[s] = struct{}{}
	}

	return nil
}

// InitialStates returns the sorted initial states.
func (k *Kripke) InitialStates() []string { return sortedSet(k.initial) }

// AddTransition connects source -> target with an edge labelled by the action ID.
// A nil action leaves the label empty. Failure policy is that of core.Graph.AddEdge.
func (k *Kripke) AddTransition(source, target string, act *Action) (string, bool, error) {
	var opts []core.EdgeOption
	if act != nil {
		opts = append(opts, core.WithLabel(act.ID()))
	}

	return k.Connect(source, target, opts...)
}

// IsLeftTotal reports whether every state has at least one outgoing transition.
// An empty structure is left-total.
func (k *Kripke) IsLeftTotal() bool { return k.Stats().LeftTotal() }

// Reachable returns the sorted states reachable from the initial states,
// the initial states included.
func (k *Kripke) Reachable(ctx context.Context) ([]string, error) {
	res, err := bfs.Multi(k.Graph, k.InitialStates(), bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("game: reachable states: %w", err)
	}
	out := slices.Clone(res.Order)
	slices.Sort(out)

	return out, nil
}

// Clear removes every state and transition, labels and initial states included.
// The alphabet is kept.
func (k *Kripke) Clear() {
	k.Graph.Clear()
	k.labels = make(map[string]map[string]struct{})
	k.initial = make(map[string]struct{})
}

// KripkeRecord is the serialized form of a Kripke structure.
type KripkeRecord struct {
	entity.Header `json:",inline" yaml:",inline" msgpack:",inline"`
	Alphabet      []string            `json:"alphabet" yaml:"alphabet" msgpack:"alphabet"`
	Labels        map[string][]string `json:"labels,omitempty" yaml:"labels,omitempty" msgpack:"labels,omitempty"`
	InitialStates []string            `json:"initial_states,omitempty" yaml:"initial_states,omitempty" msgpack:"initial_states,omitempty"`
	Graph         core.GraphRecord    `json:"graph" yaml:"graph" msgpack:"graph"`
}

// Serialize returns the record of k. Slices are sorted; unlabelled states are omitted.
func (k *Kripke) Serialize() KripkeRecord {
	rec := KripkeRecord{
		Header:        entity.HeaderOf(k),
		Alphabet:      k.Alphabet(),
		InitialStates: k.InitialStates(),
		Graph:         k.Graph.Serialize(),
	}
	for state, set := range k.labels {
		if len(set) == 0 {
			continue
		}
		if rec.Labels == nil {
			rec.Labels = make(map[string][]string, len(k.labels))
		}
		rec.Labels[state] = sortedSet(set)
	}

	return rec
}

// KripkeFromRecord reconstructs a Kripke structure. opts are passed to the graph.
// Structural defects (bad headers, graph id mismatch, labels or initial states on
// unknown states, labels outside the alphabet) wrap entity.ErrMalformedData.
func KripkeFromRecord(rec KripkeRecord, opts ...core.GraphOption) (*Kripke, error) {
	if err := rec.Check(KripkeClass); err != nil {
		return nil, err
	}
	if rec.Graph.ID != rec.ID {
		return nil, fmt.Errorf("%w: kripke %q wraps graph %q", entity.ErrMalformedData, rec.ID, rec.Graph.ID)
	}
	k := newKripke(rec.Alphabet)
	g, err := core.GraphFromRecord(rec.Graph, append(slices.Clone(opts), core.WithVertexRemovedHook(k.forget))...)
	if err != nil {
		return nil, fmt.Errorf("kripke %q: %w", rec.ID, err)
	}
	k.Graph = g

	for state, props := range rec.Labels {
		if err = k.Label(state, props...); err != nil {
			return nil, fmt.Errorf("%w: kripke %q: %v", entity.ErrMalformedData, rec.ID, err)
		}
	}
	if err = k.Initialize(rec.InitialStates...); err != nil {
		return nil, fmt.Errorf("%w: kripke %q: %v", entity.ErrMalformedData, rec.ID, err)
	}

	return k, nil
}

// Marshal encodes k in format f.
func Marshal(k *Kripke, f codec.Format) ([]byte, error) {
	return codec.Marshal(f, k.Serialize())
}

// Unmarshal decodes a Kripke structure from data in format f.
func Unmarshal(data []byte, f codec.Format, opts ...core.GraphOption) (*Kripke, error) {
	var rec KripkeRecord
	if err := codec.Unmarshal(f, data, &rec); err != nil {
		return nil, err
	}

	return KripkeFromRecord(rec, opts...)
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}
