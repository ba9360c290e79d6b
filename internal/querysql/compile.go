package querysql

import (
	"fmt"
	"strings"

	"github.com/asmdb/genesearch/internal/query"
)

// Compile converts a query IR node to parameterized SQL selecting gene IDs.
// Returns (sql, params, error).
//
// All values are parameterized (never interpolated). Join conditions only
// ever contain schema column names, so they are emitted verbatim.
func Compile(q query.Query) (string, []any, error) {
	if q == nil {
		return "", nil, fmt.Errorf("cannot compile nil query")
	}

	switch node := q.(type) {
	case query.Select:
		return compileSelect(node)
	case *query.Select:
		return compileSelect(*node)
	case query.SetOp:
		return compileSetOp(node)
	case *query.SetOp:
		return compileSetOp(*node)
	case query.Empty:
		return emptySQL, nil, nil
	case *query.Empty:
		return emptySQL, nil, nil
	default:
		return "", nil, fmt.Errorf("unsupported query type: %T", q)
	}
}

// emptySQL is the zero-row query. Kept as a real SELECT so Empty composes
// with set operations like any other operand.
const emptySQL = "SELECT genes.gene_id AS gene_id FROM genes WHERE 1 = 0"

// geneColumns is the projection materialized for export. Column order must
// match store.GeneRecord scan order.
const geneColumns = "genes.gene_id, genes.locus_tag, dna_sequences.acc, " +
	"dna_sequences.version, loci.sequence_id, loci.start_pos, loci.end_pos, loci.strand"

// CompileGenes wraps a compiled query into the materialization statement
// joining genes to loci and dna_sequences, producing export-ready rows.
// Results are ordered by gene ID so output is deterministic across runs.
func CompileGenes(q query.Query) (string, []any, error) {
	sub, params, err := Compile(q)
	if err != nil {
		return "", nil, err
	}

	sql := fmt.Sprintf("SELECT %s FROM genes"+
		" JOIN loci ON loci.locus_id = genes.locus_id"+
		" JOIN dna_sequences ON dna_sequences.sequence_id = loci.sequence_id"+
		" WHERE genes.gene_id IN (%s)"+
		" ORDER BY genes.gene_id ASC",
		geneColumns, sub)

	return sql, params, nil
}

// compileSelect compiles a Select to a single flat SELECT over genes.
func compileSelect(q query.Select) (string, []any, error) {
	var b strings.Builder
	b.WriteString("SELECT genes.gene_id AS gene_id FROM genes")

	for _, j := range q.Joins {
		if j.Table == "" || j.On == "" {
			return "", nil, fmt.Errorf("join missing table or condition: %+v", j)
		}
		fmt.Fprintf(&b, " JOIN %s ON %s", j.Table, j.On)
	}

	var params []any
	if len(q.Where) > 0 {
		var parts []string
		for _, p := range q.Where {
			sql, predParams, err := compilePredicate(p)
			if err != nil {
				return "", nil, fmt.Errorf("compile filter: %w", err)
			}
			parts = append(parts, sql)
			params = append(params, predParams...)
		}
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(parts, " AND "))
	}

	return b.String(), params, nil
}

// compileSetOp compiles a set operation to a compound SELECT. Both
// operands are wrapped in subselects so nested operations keep their own
// grouping regardless of SQLite's compound-operator precedence.
func compileSetOp(q query.SetOp) (string, []any, error) {
	switch q.Op {
	case query.SetUnion, query.SetIntersect, query.SetExcept:
	default:
		return "", nil, fmt.Errorf("unsupported set operation: %q", q.Op)
	}

	leftSQL, leftParams, err := Compile(q.Left)
	if err != nil {
		return "", nil, fmt.Errorf("compile left operand: %w", err)
	}
	rightSQL, rightParams, err := Compile(q.Right)
	if err != nil {
		return "", nil, fmt.Errorf("compile right operand: %w", err)
	}

	sql := fmt.Sprintf("SELECT gene_id FROM (%s) %s SELECT gene_id FROM (%s)",
		leftSQL, q.Op, rightSQL)

	params := append(leftParams, rightParams...)
	return sql, params, nil
}

// compilePredicate compiles a Predicate to a WHERE clause fragment.
func compilePredicate(p query.Predicate) (string, []any, error) {
	if p == nil {
		return "1 = 1", nil, nil
	}

	switch pred := p.(type) {
	case query.Equals:
		return fmt.Sprintf("%s = ?", pred.Column), []any{pred.Value}, nil
	case *query.Equals:
		return fmt.Sprintf("%s = ?", pred.Column), []any{pred.Value}, nil
	case query.ILike:
		return compileILike(pred)
	case *query.ILike:
		return compileILike(*pred)
	case query.Or:
		return compileOr(pred)
	case *query.Or:
		return compileOr(*pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

// compileILike emulates PostgreSQL ILIKE. SQLite LIKE is only
// case-insensitive for ASCII when the default NOCASE behavior applies, so
// both sides are lowered explicitly to keep the semantics driver-independent.
func compileILike(pred query.ILike) (string, []any, error) {
	sql := fmt.Sprintf("lower(%s) LIKE lower(?)", pred.Column)
	return sql, []any{pred.Pattern}, nil
}

// compileOr compiles a disjunction, parenthesized so it composes with the
// AND-ed predicate list of the enclosing Select.
func compileOr(or query.Or) (string, []any, error) {
	if len(or.Predicates) == 0 {
		return "1 = 0", nil, nil // Empty disjunction is false
	}

	var parts []string
	var params []any
	for _, p := range or.Predicates {
		sql, predParams, err := compilePredicate(p)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		params = append(params, predParams...)
	}

	return "(" + strings.Join(parts, " OR ") + ")", params, nil
}
