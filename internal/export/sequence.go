package export

import (
	"context"

	"github.com/asmdb/genesearch/internal/store"
)

// SequenceSource serves substrings of stored DNA sequences.
// *store.Store implements it; tests may substitute an in-memory source.
type SequenceSource interface {
	Subsequence(ctx context.Context, sequenceID, start, length int64) (string, error)
}

// complement maps each nucleotide to its base pair, preserving case.
// Bytes outside {A,T,G,C,a,t,g,c} pass through unchanged.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'], complement['T'] = 'T', 'A'
	complement['G'], complement['C'] = 'C', 'G'
	complement['a'], complement['t'] = 't', 'a'
	complement['g'], complement['c'] = 'c', 'g'
}

// ReverseComplement returns the reverse complement of a DNA sequence:
// each base is complemented and the byte order reversed. The input is not
// modified. ReverseComplement is its own inverse.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}

// Sequence extracts the nucleotide sequence of a gene from its parent DNA
// sequence: bases [StartPos+1, EndPos] (1-based, inclusive),
// reverse-complemented for minus-strand loci.
//
// A missing sequence row or out-of-range locus is a data-integrity fault;
// the source's error propagates unchanged.
func Sequence(ctx context.Context, src SequenceSource, g store.GeneRecord) ([]byte, error) {
	sub, err := src.Subsequence(ctx, g.SequenceID, g.StartPos+1, g.EndPos-g.StartPos)
	if err != nil {
		return nil, err
	}

	seq := []byte(sub)
	if g.Strand == "-" {
		seq = ReverseComplement(seq)
	}
	return seq, nil
}
