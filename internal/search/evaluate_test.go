package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asmdb/genesearch/internal/query"
	"github.com/asmdb/genesearch/internal/querysql"
	"github.com/asmdb/genesearch/internal/store"
	"github.com/asmdb/genesearch/internal/term"
	"github.com/asmdb/genesearch/internal/testutil"
)

// geneIDs evaluates a term tree against the fixture database and returns
// the matched gene IDs in ascending order.
func geneIDs(t *testing.T, s *store.Store, tree term.Term) []int64 {
	t.Helper()

	genes, err := s.SearchGenes(context.Background(), Evaluate(tree))
	require.NoError(t, err)

	ids := make([]int64, 0, len(genes))
	for _, g := range genes {
		ids = append(ids, g.GeneID)
	}
	return ids
}

func expr(category, value string) term.Expression {
	return term.Expression{Category: category, Value: value}
}

func TestEvaluate_UnknownCategoryIsEmpty(t *testing.T) {
	q := Evaluate(expr("flavor", "umami"))
	assert.Equal(t, query.Empty{}, q)

	s := testutil.Fixture(t)
	assert.Empty(t, geneIDs(t, s, expr("flavor", "umami")))
}

func TestEvaluate_AllUnknownLeavesStayEmpty(t *testing.T) {
	s := testutil.Fixture(t)

	tree := term.Operation{
		Op:   term.OpOr,
		Left: expr("flavor", "umami"),
		Right: term.Operation{
			Op:    term.OpAnd,
			Left:  expr("color", "blue"),
			Right: expr("shape", "round"),
		},
	}
	assert.Empty(t, geneIDs(t, s, tree))
}

func TestEvaluate_UnknownOperationIsEmpty(t *testing.T) {
	tree := term.Operation{
		Op:    "xor",
		Left:  expr("genus", "Streptomyces"),
		Right: expr("genus", "Bacillus"),
	}
	assert.Equal(t, query.Empty{}, Evaluate(tree))
}

func TestEvaluate_GenusBuildsTaxonomyJoin(t *testing.T) {
	sql, params, err := querysql.Compile(Evaluate(expr("genus", "Streptomyces")))
	require.NoError(t, err)

	assert.Contains(t, sql, "JOIN loci ON loci.locus_id = genes.locus_id")
	assert.Contains(t, sql, "JOIN dna_sequences ON dna_sequences.sequence_id = loci.sequence_id")
	assert.Contains(t, sql, "JOIN genomes ON genomes.genome_id = dna_sequences.genome_id")
	assert.Contains(t, sql, "JOIN taxa ON taxa.tax_id = genomes.tax_id")
	assert.Contains(t, sql, "lower(taxa.genus) LIKE lower(?)")
	assert.Equal(t, []any{"Streptomyces"}, params)
}

func TestEvaluate_NormalizesValuesToNFC(t *testing.T) {
	// "é" spelled as e + combining acute must be bound in its
	// precomposed form so it matches the stored spelling.
	decomposed := "Bacille\u0301"
	precomposed := "Bacill\u00e9"

	_, params, err := querysql.Compile(Evaluate(expr("genus", decomposed)))
	require.NoError(t, err)
	assert.Equal(t, []any{precomposed}, params)
}

func TestEvaluate_TaxonomicCategories(t *testing.T) {
	s := testutil.Fixture(t)

	tests := []struct {
		category string
		value    string
		want     []int64
	}{
		{"genus", "Streptomyces", []int64{1, 2}},
		{"genus", "streptomyces", []int64{1, 2}}, // case-insensitive
		{"genus", "Bacillus", []int64{3}},
		{"taxid", "1423", []int64{3}},
		{"taxid", "9999", nil},
		{"strain", "A3(2)", []int64{1, 2}},
		{"species", "Bacillus%", []int64{3}}, // caller-supplied wildcard
		{"family", "Streptomycetaceae", []int64{1, 2}},
		{"order", "Bacillales", []int64{3}},
		{"class", "Actinomycetes", []int64{1, 2}},
		{"phylum", "Firmicutes", []int64{3}},
		{"superkingdom", "Bacteria", []int64{1, 2, 3}},
		{"acc", "NC_003888", []int64{1, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.category+"/"+tc.value, func(t *testing.T) {
			ids := geneIDs(t, s, expr(tc.category, tc.value))
			if tc.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tc.want, ids)
			}
		})
	}
}

func TestEvaluate_AnnotationCategories(t *testing.T) {
	s := testutil.Fixture(t)

	tests := []struct {
		category string
		value    string
		want     []int64
	}{
		// "peptide" is a substring of the nrps description and of the
		// lanthipeptide term, so cluster-type search finds all genes.
		{"type", "peptide", []int64{1, 2, 3}},
		{"type", "nrps", []int64{1, 2}},
		{"type", "no-such-type", nil},
		{"monomer", "ALA", []int64{1}},
		{"compoundseq", "ALA-GLY", []int64{1}},
		{"compoundclass", "nrp", []int64{1}},
		{"profile", "amp-binding", []int64{1}},
		{"profile", "PKS_KS", []int64{3}},
		{"asdomain", "PCP", []int64{2}},
		{"knowncluster", "BGC0000315", []int64{1, 2}},
		// The same accession under a different algorithm matches nothing.
		{"clusterblast", "BGC0000315", nil},
		{"clusterblast", "XYZ123", []int64{3}},
		{"subcluster", "XYZ123", nil},
	}

	for _, tc := range tests {
		t.Run(tc.category+"/"+tc.value, func(t *testing.T) {
			ids := geneIDs(t, s, expr(tc.category, tc.value))
			if tc.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tc.want, ids)
			}
		})
	}
}

func TestEvaluate_Operations(t *testing.T) {
	s := testutil.Fixture(t)

	streptomyces := expr("genus", "Streptomyces")
	pcp := expr("asdomain", "PCP")
	pks := expr("profile", "PKS_KS")

	t.Run("and is intersection", func(t *testing.T) {
		ids := geneIDs(t, s, term.Operation{Op: term.OpAnd, Left: streptomyces, Right: pcp})
		assert.Equal(t, []int64{2}, ids)
	})

	t.Run("or is union", func(t *testing.T) {
		ids := geneIDs(t, s, term.Operation{Op: term.OpOr, Left: pcp, Right: pks})
		assert.Equal(t, []int64{2, 3}, ids)
	})

	t.Run("except is difference", func(t *testing.T) {
		ids := geneIDs(t, s, term.Operation{Op: term.OpExcept, Left: streptomyces, Right: pcp})
		assert.Equal(t, []int64{1}, ids)
	})

	t.Run("nested tree", func(t *testing.T) {
		// (streptomyces or pks) except pcp -> genes 1 and 3
		tree := term.Operation{
			Op:    term.OpExcept,
			Left:  term.Operation{Op: term.OpOr, Left: streptomyces, Right: pks},
			Right: pcp,
		}
		assert.Equal(t, []int64{1, 3}, geneIDs(t, s, tree))
	})

	t.Run("and with empty side is empty", func(t *testing.T) {
		tree := term.Operation{Op: term.OpAnd, Left: streptomyces, Right: expr("flavor", "umami")}
		assert.Empty(t, geneIDs(t, s, tree))
	})

	t.Run("or with empty side keeps other side", func(t *testing.T) {
		tree := term.Operation{Op: term.OpOr, Left: streptomyces, Right: expr("flavor", "umami")}
		assert.Equal(t, []int64{1, 2}, geneIDs(t, s, tree))
	})
}

func TestEvaluate_PointerNodes(t *testing.T) {
	s := testutil.Fixture(t)

	e := expr("genus", "Bacillus")
	tree := &term.Operation{Op: term.OpOr, Left: &e, Right: &e}
	assert.Equal(t, []int64{3}, geneIDs(t, s, tree))
}

func TestCategories_CoversRegistry(t *testing.T) {
	got := Categories()
	assert.Len(t, got, len(geneQueries))
	assert.Contains(t, got, "genus")
	assert.Contains(t, got, "knowncluster")
}
