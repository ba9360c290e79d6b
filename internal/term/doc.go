// Package term defines the search-term tree produced by the external
// search-grammar parser.
//
// A term is either an Expression leaf (category + value) or an Operation
// combining two sub-terms with and/or/except. The tree is a plain
// immutable value: parsing happens upstream, evaluation happens in the
// search package.
package term
