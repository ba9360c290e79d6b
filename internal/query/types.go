package query

// Query represents an abstract, composable gene query.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the SQL compiler.
//
// Query types:
//   - Select: the gene base table plus a join chain and filters
//   - SetOp: union / intersect / except of two queries
//   - Empty: matches zero rows
//
// Every query produces a set of gene IDs. Building a query performs no
// I/O; execution belongs to the store.
type Query interface {
	queryNode() // Marker method - seals interface to this package
}

// Predicate represents a filter condition on a Select.
//
// This is a sealed interface - only types in this package implement it.
//
// Predicate types:
//   - Equals: column = value (exact, parameterized)
//   - ILike: case-insensitive SQL LIKE pattern match
//   - Or: at least one sub-predicate must hold
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// Select is the base query shape: the genes table, an ordered chain of
// inner joins reaching the annotation tables, and AND-ed predicates.
//
// Semantics:
//
//	SELECT genes.gene_id FROM genes
//	JOIN <j.Table> ON <j.On> ...
//	WHERE <where[0]> AND <where[1]> ...
//
// Example - genes of a genus:
//
//	Select{
//	  Joins: []Join{
//	    {Table: "loci", On: "loci.locus_id = genes.locus_id"},
//	    {Table: "dna_sequences", On: "dna_sequences.sequence_id = loci.sequence_id"},
//	    {Table: "genomes", On: "genomes.genome_id = dna_sequences.genome_id"},
//	    {Table: "taxa", On: "taxa.tax_id = genomes.tax_id"},
//	  },
//	  Where: []Predicate{ILike{Column: "taxa.genus", Pattern: "Streptomyces"}},
//	}
type Select struct {
	Joins []Join
	Where []Predicate
}

func (Select) queryNode() {}

// Join is one inner-join step in a Select chain. On is a join condition
// over schema column names only; user values never appear here, they are
// always bound through predicates.
type Join struct {
	Table string
	On    string
}

// SetOpKind identifies a set operation combining two queries.
type SetOpKind string

const (
	SetUnion     SetOpKind = "UNION"
	SetIntersect SetOpKind = "INTERSECT"
	SetExcept    SetOpKind = "EXCEPT"
)

// SetOp combines the gene-ID sets of two queries.
type SetOp struct {
	Op    SetOpKind
	Left  Query
	Right Query
}

func (SetOp) queryNode() {}

// Empty matches zero rows. It is the fail-closed result for unknown
// search categories and malformed operations.
type Empty struct{}

func (Empty) queryNode() {}

// Union returns a query matching genes matched by either operand.
func Union(left, right Query) Query {
	return SetOp{Op: SetUnion, Left: left, Right: right}
}

// Intersect returns a query matching genes matched by both operands.
func Intersect(left, right Query) Query {
	return SetOp{Op: SetIntersect, Left: left, Right: right}
}

// Except returns a query matching genes matched by left but not right.
func Except(left, right Query) Query {
	return SetOp{Op: SetExcept, Left: left, Right: right}
}

// Equals filters on exact column equality. Value is always bound as a
// SQL parameter, never interpolated.
type Equals struct {
	Column string
	Value  any
}

func (Equals) predicateNode() {}

// ILike filters on a case-insensitive SQL LIKE pattern. The pattern is
// passed through as supplied; callers add % wildcards where substring
// semantics are wanted.
type ILike struct {
	Column  string
	Pattern string
}

func (ILike) predicateNode() {}

// Or holds if at least one sub-predicate holds.
type Or struct {
	Predicates []Predicate
}

func (Or) predicateNode() {}
