package model

import (
	"bufio"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load parses a model-definition file. Header lines (NAME, ACC, DESC, CLEN,
// ALPH) carry metadata; the HMM section carries one line per match state from
// which the consensus symbol is taken. A state line's consensus is the first
// single-letter field after the emission columns; when absent, the argmax of
// the four emission scores decides.
func Load(path string) (*Model, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	defer fh.Close()

	m := &Model{alphabet: AlphabetRNA}
	var consensus strings.Builder
	inHMM := false

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "NAME"):
			m.name = fieldAt(line, 1, "unknown")
		case strings.HasPrefix(line, "ACC"):
			m.accession = fieldAt(line, 1, "")
		case strings.HasPrefix(line, "DESC"):
			if i := strings.IndexAny(line[4:], " \t"); i >= 0 {
				m.description = strings.TrimSpace(line[4+i:])
			}
		case strings.HasPrefix(line, "CLEN"):
			m.length, _ = strconv.Atoi(fieldAt(line, 1, "0"))
		case strings.HasPrefix(line, "ALPH"):
			switch fieldAt(line, 1, "RNA") {
			case "DNA":
				m.alphabet = AlphabetDNA
			case "Protein":
				m.alphabet = AlphabetProtein
			default:
				m.alphabet = AlphabetRNA
			}
		case strings.HasPrefix(line, "HMM"):
			inHMM = true
		default:
			if inHMM && len(line) > 0 && isStateLine(line) {
				if c, ok := stateConsensus(line); ok {
					consensus.WriteByte(c)
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("model: scan %s: %w", path, err)
	}

	cons := consensus.String()
	// A model file without explicit consensus columns still yields a usable
	// model: fill with the alphabet's first symbol up to CLEN.
	if cons == "" && m.length > 0 {
		cons = strings.Repeat("A", m.length)
	}
	if len(cons) > m.length && m.length > 0 {
		cons = cons[:m.length]
	}
	m.consensus = cons
	m.background = backgroundFrequencies(cons)

	slog.Info("loaded model",
		"name", m.name, "length", m.length, "consensus", len(m.consensus))
	return m, nil
}

func fieldAt(line string, i int, def string) string {
	f := strings.Fields(line)
	if i < len(f) {
		return f[i]
	}
	return def
}

// isStateLine reports whether a line inside the HMM section describes a
// numbered match state (these start with the state index).
func isStateLine(line string) bool {
	c := strings.TrimSpace(line)
	return c != "" && c[0] >= '0' && c[0] <= '9'
}

// stateConsensus extracts the consensus symbol from one state line.
func stateConsensus(line string) (byte, bool) {
	parts := strings.Fields(line)
	if len(parts) < 6 {
		return 0, false
	}
	for _, p := range parts[5:] {
		if len(p) == 1 {
			c := p[0]
			if isLetter(c) && upper(c) != 'N' {
				return upper(c), true
			}
		}
	}
	// Fall back to the best-scoring emission column (A, C, G, U order).
	best := math.Inf(-1)
	idx := -1
	for i := 1; i <= 4 && i < len(parts); i++ {
		if v, err := strconv.ParseFloat(parts[i], 64); err == nil && v > best {
			best = v
			idx = i
		}
	}
	switch idx {
	case 1:
		return 'A', true
	case 2:
		return 'C', true
	case 3:
		return 'G', true
	case 4:
		return 'U', true
	}
	return 'N', true
}

// backgroundFrequencies derives the null-model symbol frequencies from the
// consensus composition; uniform when the consensus carries no counted symbol.
func backgroundFrequencies(consensus string) [4]float64 {
	var counts [4]int
	total := 0
	for i := 0; i < len(consensus); i++ {
		switch upper(consensus[i]) {
		case 'A':
			counts[0]++
			total++
		case 'C':
			counts[1]++
			total++
		case 'G':
			counts[2]++
			total++
		case 'U', 'T':
			counts[3]++
			total++
		}
	}
	if total == 0 {
		return [4]float64{0.25, 0.25, 0.25, 0.25}
	}
	var out [4]float64
	for i, c := range counts {
		out[i] = float64(c) / float64(total)
	}
	return out
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
