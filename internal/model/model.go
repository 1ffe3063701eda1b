package model

import (
	"errors"
	"fmt"
)

// Alphabet identifies the symbol set a model was built over.
type Alphabet string

const (
	AlphabetRNA     Alphabet = "RNA"
	AlphabetDNA     Alphabet = "DNA"
	AlphabetProtein Alphabet = "Protein"
)

// Model is an immutable sequence family model: a consensus string plus
// background symbol frequencies. It is shared read-only across all search
// workers; no mutating methods are exposed after construction.
type Model struct {
	name        string
	accession   string
	description string
	alphabet    Alphabet
	length      int
	consensus   string
	background  [4]float64 // A, C, G, U
}

// New builds a Model from already-parsed parts. Callers normally use Load.
func New(name string, alphabet Alphabet, consensus string, length int, background [4]float64) *Model {
	return &Model{
		name:       name,
		alphabet:   alphabet,
		length:     length,
		consensus:  consensus,
		background: background,
	}
}

func (m *Model) Name() string { return m.name }
func (m *Model) Accession() string { return m.accession }
func (m *Model) Description() string { return m.description }
func (m *Model) Alphabet() Alphabet { return m.alphabet }
func (m *Model) Length() int { return m.length }
func (m *Model) Consensus() string { return m.consensus }
func (m *Model) Background() [4]float64 { return m.background }

var (
	ErrNoConsensus = errors.New("model: empty consensus sequence")
	ErrNoLength    = errors.New("model: zero model length")
)

// Validate checks the invariants every downstream stage assumes.
func (m *Model) Validate() error {
	if m.length == 0 {
		return ErrNoLength
	}
	if m.consensus == "" {
		return ErrNoConsensus
	}
	var sum float64
	for _, f := range m.background {
		if f < 0 {
			return fmt.Errorf("model: negative background frequency %g", f)
		}
		sum += f
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("model: background frequencies sum to %g, want 1", sum)
	}
	return nil
}
