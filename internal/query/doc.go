// Package query provides the abstract query intermediate representation
// for gene searches.
//
// The IR is the boundary between the search-term evaluator and the SQL
// backend: the evaluator builds Query values, the querysql package
// compiles them to parameterized SQL, and the store executes them.
// Queries are plain values - building and composing them performs no I/O
// and cannot fail.
//
// The representable fragment is deliberately small:
//   - Select: genes plus an inner-join chain and AND-ed predicates
//   - SetOp: UNION / INTERSECT / EXCEPT over gene-ID sets
//   - Empty: the zero-row query
//
// Query and Predicate are sealed interfaces using the marker method
// pattern, so backend type switches are exhaustive by construction.
package query
