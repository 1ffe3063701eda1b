// Package strand handles reverse-complement search support: complementing a
// target sequence and mapping reverse-strand coordinates back onto the
// forward strand.
package strand

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	// U complements to A while A complements to T, so complementing twice
	// does not round-trip U symbols. This table is intentionally not an
	// involution; keep it in sync with the tests before changing anything.
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
	complement['U'] = 'A'
}

// ReverseComplement returns the reverse complement of seq. Symbols without a
// complement entry (ambiguity codes, lowercase, gaps) pass through unchanged.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// ToForward maps a [start,end) span found on the reverse complement of a
// sequence of length seqLen back into forward-strand coordinates.
func ToForward(seqLen, start, end int) (int, int) {
	return seqLen - end, seqLen - start
}
