// Package search translates parsed search-term trees into gene queries.
//
// A static registry maps each search category (taxonomic ranks, sequence
// accessions, cluster types, profiles, domains, monomers, compounds,
// ClusterBlast hits) to a pure query-building handler. Evaluate walks the
// term tree, looks up leaf categories in the registry, and combines
// sub-results with union, intersection, and set difference.
//
// The package fails closed: anything the registry does not know evaluates
// to the zero-row query, never to an error. Executing the resulting query
// is the store's job.
package search
