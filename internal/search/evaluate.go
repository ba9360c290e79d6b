package search

import (
	"golang.org/x/text/unicode/norm"

	"github.com/asmdb/genesearch/internal/query"
	"github.com/asmdb/genesearch/internal/term"
)

// Evaluate recursively converts a parsed search term into a composable
// gene query.
//
// Unknown categories and unknown operation tags both evaluate to the
// empty query rather than an error: a search that cannot match anything
// returns no rows. Evaluate never fails.
func Evaluate(t term.Term) query.Query {
	switch node := t.(type) {
	case term.Expression:
		return evaluateExpression(node)
	case *term.Expression:
		return evaluateExpression(*node)
	case term.Operation:
		return evaluateOperation(node)
	case *term.Operation:
		return evaluateOperation(*node)
	}
	return query.Empty{}
}

func evaluateExpression(expr term.Expression) query.Query {
	h, ok := geneQueries[expr.Category]
	if !ok {
		return query.Empty{}
	}
	// Normalize to NFC so decomposed and precomposed spellings of the
	// same organism name match the stored form.
	return h(norm.NFC.String(expr.Value))
}

func evaluateOperation(op term.Operation) query.Query {
	left := Evaluate(op.Left)
	right := Evaluate(op.Right)

	switch op.Op {
	case term.OpExcept:
		return query.Except(left, right)
	case term.OpOr:
		return query.Union(left, right)
	case term.OpAnd:
		return query.Intersect(left, right)
	}

	// A tag outside and/or/except means a malformed tree; fail closed
	// like an unknown category.
	return query.Empty{}
}
