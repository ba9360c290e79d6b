package store

import (
	"context"
	"fmt"

	"github.com/asmdb/genesearch/internal/query"
	"github.com/asmdb/genesearch/internal/querysql"
)

// GeneRecord is the read-only projection of a gene joined through its
// locus and parent DNA sequence. It carries everything the export
// formatters need; it has no identity beyond GeneID and is never written
// back.
type GeneRecord struct {
	GeneID     int64
	LocusTag   string
	Acc        string
	Version    int
	SequenceID int64
	StartPos   int64
	EndPos     int64
	Strand     string
}

// SearchGenes compiles and executes a gene query, materializing matches in
// ascending gene-ID order. An empty result is a normal outcome, not an
// error.
func (s *Store) SearchGenes(ctx context.Context, q query.Query) ([]GeneRecord, error) {
	stmt, params, err := querysql.CompileGenes(q)
	if err != nil {
		return nil, fmt.Errorf("compile gene query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, stmt, params...)
	if err != nil {
		return nil, fmt.Errorf("execute gene query: %w", err)
	}
	defer rows.Close()

	var genes []GeneRecord
	for rows.Next() {
		var g GeneRecord
		if err := rows.Scan(&g.GeneID, &g.LocusTag, &g.Acc, &g.Version,
			&g.SequenceID, &g.StartPos, &g.EndPos, &g.Strand); err != nil {
			return nil, fmt.Errorf("scan gene row: %w", err)
		}
		genes = append(genes, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gene rows: %w", err)
	}

	return genes, nil
}

// Subsequence returns length bytes of a stored DNA sequence starting at
// the 1-based position start. A missing sequence row or a range reaching
// past the stored sequence is a data-integrity fault and returns an error.
func (s *Store) Subsequence(ctx context.Context, sequenceID, start, length int64) (string, error) {
	if start < 1 || length < 0 {
		return "", fmt.Errorf("invalid subsequence range [%d, +%d) for sequence %d", start, length, sequenceID)
	}

	var sub string
	err := s.db.QueryRowContext(ctx,
		"SELECT substr(dna, ?, ?) FROM dna_sequences WHERE sequence_id = ?",
		start, length, sequenceID).Scan(&sub)
	if err != nil {
		return "", fmt.Errorf("subsequence of sequence %d: %w", sequenceID, err)
	}

	// substr silently truncates past the end of the stored sequence;
	// a short result means the locus coordinates are out of range.
	if int64(len(sub)) != length {
		return "", fmt.Errorf("sequence %d: range [%d, +%d) exceeds stored length", sequenceID, start, length)
	}

	return sub, nil
}
