package search

import (
	"github.com/asmdb/genesearch/internal/query"
)

// handler builds a gene query for a single search value.
// Handlers are pure: they compose query IR and never touch the database.
type handler func(value string) query.Query

// geneQueries maps each search category to its query builder.
// Populated once at init and read-only afterwards, so concurrent use
// needs no locking. Categories absent from this table fail closed: the
// evaluator returns the empty query for them.
var geneQueries = map[string]handler{
	// Taxonomic categories
	"taxid":        queryTaxID,
	"strain":       taxonField("taxa.strain"),
	"species":      taxonField("taxa.species"),
	"genus":        taxonField("taxa.genus"),
	"family":       taxonField("taxa.family"),
	"order":        taxonField("taxa.taxonomic_order"),
	"class":        taxonField("taxa.class"),
	"phylum":       taxonField("taxa.phylum"),
	"superkingdom": taxonField("taxa.superkingdom"),
	"acc":          queryAcc,

	// Annotation categories
	"type":          queryType,
	"monomer":       queryMonomer,
	"compoundseq":   queryCompoundSeq,
	"compoundclass": queryCompoundClass,
	"profile":       queryProfile,
	"asdomain":      queryAsDomain,
	"clusterblast":  clusterblastFor("clusterblast"),
	"knowncluster":  clusterblastFor("knownclusterblast"),
	"subcluster":    clusterblastFor("subclusterblast"),
}

// Categories lists the registered search categories. Useful for callers
// validating parser output or rendering help text.
func Categories() []string {
	names := make([]string, 0, len(geneQueries))
	for name := range geneQueries {
		names = append(names, name)
	}
	return names
}

// taxonJoins is the Gene -> Locus -> DnaSequence -> Genome -> Taxa join
// chain shared by every taxonomy query.
func taxonJoins() []query.Join {
	return []query.Join{
		{Table: "loci", On: "loci.locus_id = genes.locus_id"},
		{Table: "dna_sequences", On: "dna_sequences.sequence_id = loci.sequence_id"},
		{Table: "genomes", On: "genomes.genome_id = dna_sequences.genome_id"},
		{Table: "taxa", On: "taxa.tax_id = genomes.tax_id"},
	}
}

// clusterJoins is the Gene -> Bgc join chain shared by cluster-level
// annotation queries.
func clusterJoins() []query.Join {
	return []query.Join{
		{Table: "gene_cluster_map", On: "gene_cluster_map.gene_id = genes.gene_id"},
		{Table: "bgcs", On: "bgcs.bgc_id = gene_cluster_map.bgc_id"},
	}
}

// taxonField builds a handler matching one taxonomy rank column with a
// case-insensitive pattern.
func taxonField(column string) handler {
	return func(value string) query.Query {
		return query.Select{
			Joins: taxonJoins(),
			Where: []query.Predicate{query.ILike{Column: column, Pattern: value}},
		}
	}
}

// queryTaxID matches the NCBI taxonomy ID exactly.
func queryTaxID(value string) query.Query {
	return query.Select{
		Joins: taxonJoins(),
		Where: []query.Predicate{query.Equals{Column: "taxa.tax_id", Value: value}},
	}
}

// queryAcc matches the sequence accession of the gene's parent record.
func queryAcc(value string) query.Query {
	return query.Select{
		Joins: []query.Join{
			{Table: "loci", On: "loci.locus_id = genes.locus_id"},
			{Table: "dna_sequences", On: "dna_sequences.sequence_id = loci.sequence_id"},
		},
		Where: []query.Predicate{query.ILike{Column: "dna_sequences.acc", Pattern: value}},
	}
}

// queryType matches the cluster type by term or description. This is the
// one category with substring semantics: the value is wrapped in
// wildcards so "peptide" finds lanthipeptide clusters too.
func queryType(value string) query.Query {
	pattern := "%" + value + "%"
	joins := append(clusterJoins(),
		query.Join{Table: "rel_clusters_types", On: "rel_clusters_types.bgc_id = bgcs.bgc_id"},
		query.Join{Table: "bgc_types", On: "bgc_types.bgc_type_id = rel_clusters_types.bgc_type_id"},
	)
	return query.Select{
		Joins: joins,
		Where: []query.Predicate{query.Or{Predicates: []query.Predicate{
			query.ILike{Column: "bgc_types.term", Pattern: pattern},
			query.ILike{Column: "bgc_types.description", Pattern: pattern},
		}}},
	}
}

// queryMonomer matches genes whose biosynthetic domains incorporate the
// named monomer.
func queryMonomer(value string) query.Query {
	return query.Select{
		Joins: []query.Join{
			{Table: "as_domains", On: "as_domains.gene_id = genes.gene_id"},
			{Table: "rel_as_domains_monomer", On: "rel_as_domains_monomer.as_domain_id = as_domains.as_domain_id"},
			{Table: "monomers", On: "monomers.monomer_id = rel_as_domains_monomer.monomer_id"},
		},
		Where: []query.Predicate{query.ILike{Column: "monomers.name", Pattern: value}},
	}
}

// compoundJoin links genes to predicted compounds via the shared locus tag.
func compoundJoin() []query.Join {
	return []query.Join{
		{Table: "compounds", On: "compounds.locus_tag = genes.locus_tag"},
	}
}

// queryCompoundSeq matches the predicted peptide sequence of a compound.
func queryCompoundSeq(value string) query.Query {
	return query.Select{
		Joins: compoundJoin(),
		Where: []query.Predicate{query.ILike{Column: "compounds.peptide_sequence", Pattern: value}},
	}
}

// queryCompoundClass matches the compound class annotation.
func queryCompoundClass(value string) query.Query {
	return query.Select{
		Joins: compoundJoin(),
		Where: []query.Predicate{query.ILike{Column: "compounds.class", Pattern: value}},
	}
}

// queryProfile matches genes with a hit against the named detection profile.
func queryProfile(value string) query.Query {
	return query.Select{
		Joins: []query.Join{
			{Table: "profile_hits", On: "profile_hits.gene_id = genes.gene_id"},
			{Table: "profiles", On: "profiles.name = profile_hits.profile_name"},
		},
		Where: []query.Predicate{query.ILike{Column: "profiles.name", Pattern: value}},
	}
}

// queryAsDomain matches genes annotated with the named biosynthetic domain.
func queryAsDomain(value string) query.Query {
	return query.Select{
		Joins: []query.Join{
			{Table: "as_domains", On: "as_domains.gene_id = genes.gene_id"},
		},
		Where: []query.Predicate{query.ILike{Column: "as_domains.name", Pattern: value}},
	}
}

// clusterblastFor builds a handler matching ClusterBlast hit accessions
// for one of the three comparison algorithms. The algorithm name is an
// exact match; the accession is a case-insensitive pattern.
func clusterblastFor(algorithm string) handler {
	return func(value string) query.Query {
		joins := append(clusterJoins(),
			query.Join{Table: "clusterblast_hits", On: "clusterblast_hits.bgc_id = bgcs.bgc_id"},
			query.Join{Table: "clusterblast_algorithms", On: "clusterblast_algorithms.algorithm_id = clusterblast_hits.algorithm_id"},
		)
		return query.Select{
			Joins: joins,
			Where: []query.Predicate{
				query.Equals{Column: "clusterblast_algorithms.name", Value: algorithm},
				query.ILike{Column: "clusterblast_hits.acc", Pattern: value},
			},
		}
	}
}
