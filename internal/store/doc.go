// Package store owns access to the genomic annotation database.
//
// The store opens a SQLite database, applies the embedded annotation
// schema, and executes compiled gene queries. It is the only package that
// touches database/sql; the query IR and the search evaluator stay pure.
//
// All read methods take a context and are safe for concurrent use; the
// store never writes at request time.
package store
