package term

// Term represents one node of a parsed search expression.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the evaluator.
//
// Term types:
//   - Expression: a leaf, matching a single category against a value
//   - Operation: a boolean combination of two sub-terms
type Term interface {
	termNode() // Marker method - seals interface to this package
}

// OpKind identifies the boolean operator of an Operation node.
type OpKind string

const (
	// OpAnd keeps genes matched by both sides.
	OpAnd OpKind = "and"

	// OpOr keeps genes matched by either side.
	OpOr OpKind = "or"

	// OpExcept keeps genes matched by the left side but not the right.
	OpExcept OpKind = "except"
)

// Expression is a leaf term: a search category name and the value to
// match within it, e.g. category "genus" with value "Streptomyces".
//
// Expressions are produced by the external search-grammar parser and are
// immutable once constructed.
type Expression struct {
	// Category names the search field, e.g. "genus" or "asdomain".
	Category string

	// Value is the user-supplied match value. Pattern wildcards are
	// passed through to the query layer unchanged.
	Value string
}

func (Expression) termNode() {}

// Operation combines two sub-terms with a boolean operator.
type Operation struct {
	Op    OpKind
	Left  Term
	Right Term
}

func (Operation) termNode() {}
