package testutil

import (
	"path/filepath"
	"testing"

	"github.com/asmdb/genesearch/internal/store"
)

// Fixture opens a store on a temporary database seeded with a small,
// fixed annotation dataset shared by the search, store, and export tests.
//
// The dataset:
//
//	taxa        1126 Streptomyces coelicolor A3(2), 1423 Bacillus subtilis 168
//	sequences   NC_003888.3 (24 bp), NC_000964.3 (20 bp)
//	genes       1 SCO0001 [0,12]+   2 SCO0002 [12,24]-   3 BSU0001 [3,18]+
//	clusters    bgc 1 {SCO0001, SCO0002} type nrps; bgc 2 {BSU0001} type lanthipeptide
//	hits        bgc 1: knownclusterblast BGC0000315, clusterblast ABC999; bgc 2: clusterblast XYZ123
//	profiles    SCO0001 -> AMP-binding, BSU0001 -> PKS_KS
//	domains     SCO0001 -> AMP-binding (monomer ala), SCO0002 -> PCP
//	compounds   SCO0001 -> peptide ALA-GLY, class NRP
func Fixture(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "annotations.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	seed(t, s)
	return s
}

// Sequence1 and Sequence2 are the raw DNA of the two seeded records.
// Gene coordinates below index into these.
const (
	Sequence1 = "ATGCATGCATGCAAATTTCCCGGG" // NC_003888.3
	Sequence2 = "TTTTGGGGCCCCAAAATTTT"     // NC_000964.3
)

func seed(t *testing.T, s *store.Store) {
	t.Helper()

	stmts := []struct {
		sql  string
		args []any
	}{
		{"INSERT INTO taxa (tax_id, superkingdom, phylum, class, taxonomic_order, family, genus, species, strain) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			[]any{1126, "Bacteria", "Actinobacteria", "Actinomycetes", "Streptomycetales", "Streptomycetaceae", "Streptomyces", "Streptomyces coelicolor", "A3(2)"}},
		{"INSERT INTO taxa (tax_id, superkingdom, phylum, class, taxonomic_order, family, genus, species, strain) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			[]any{1423, "Bacteria", "Firmicutes", "Bacilli", "Bacillales", "Bacillaceae", "Bacillus", "Bacillus subtilis", "168"}},

		{"INSERT INTO genomes (genome_id, tax_id) VALUES (1, 1126), (2, 1423)", nil},

		{"INSERT INTO dna_sequences (sequence_id, genome_id, acc, version, dna) VALUES (1, 1, 'NC_003888', 3, ?)", []any{Sequence1}},
		{"INSERT INTO dna_sequences (sequence_id, genome_id, acc, version, dna) VALUES (2, 2, 'NC_000964', 3, ?)", []any{Sequence2}},

		{"INSERT INTO loci (locus_id, sequence_id, start_pos, end_pos, strand) VALUES (1, 1, 0, 12, '+'), (2, 1, 12, 24, '-'), (3, 2, 3, 18, '+')", nil},

		{"INSERT INTO genes (gene_id, locus_tag, locus_id) VALUES (1, 'SCO0001', 1), (2, 'SCO0002', 2), (3, 'BSU0001', 3)", nil},

		{"INSERT INTO bgcs (bgc_id) VALUES (1), (2)", nil},
		{"INSERT INTO bgc_types (bgc_type_id, term, description) VALUES (1, 'nrps', 'Non-ribosomal peptide synthetase'), (2, 'lanthipeptide', 'Lanthipeptide cluster')", nil},
		{"INSERT INTO rel_clusters_types (bgc_id, bgc_type_id) VALUES (1, 1), (2, 2)", nil},
		{"INSERT INTO gene_cluster_map (gene_id, bgc_id) VALUES (1, 1), (2, 1), (3, 2)", nil},

		{"INSERT INTO clusterblast_algorithms (algorithm_id, name) VALUES (1, 'clusterblast'), (2, 'knownclusterblast'), (3, 'subclusterblast')", nil},
		{"INSERT INTO clusterblast_hits (clusterblast_hit_id, bgc_id, algorithm_id, acc) VALUES (1, 1, 2, 'BGC0000315'), (2, 1, 1, 'ABC999'), (3, 2, 1, 'XYZ123')", nil},

		{"INSERT INTO profiles (name, description) VALUES ('AMP-binding', 'AMP-binding enzyme'), ('PKS_KS', 'Ketosynthase domain')", nil},
		{"INSERT INTO profile_hits (gene_id, profile_name) VALUES (1, 'AMP-binding'), (3, 'PKS_KS')", nil},

		{"INSERT INTO as_domains (as_domain_id, gene_id, name) VALUES (1, 1, 'AMP-binding'), (2, 2, 'PCP')", nil},
		{"INSERT INTO monomers (monomer_id, name) VALUES (1, 'ala'), (2, 'gly')", nil},
		{"INSERT INTO rel_as_domains_monomer (as_domain_id, monomer_id) VALUES (1, 1)", nil},

		{"INSERT INTO compounds (compound_id, locus_tag, peptide_sequence, class) VALUES (1, 'SCO0001', 'ALA-GLY', 'NRP')", nil},
	}

	for _, stmt := range stmts {
		if _, err := s.DB().Exec(stmt.sql, stmt.args...); err != nil {
			t.Fatalf("seed fixture: %v\n%s", err, stmt.sql)
		}
	}
}
