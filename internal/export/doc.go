// Package export renders matched gene records into output formats.
//
// Two formats are registered: "fasta" emits one header-plus-sequence
// record per gene with the nucleotide sequence extracted from the parent
// DNA sequence (reverse-complemented on the minus strand), and "csv"
// emits tab-separated coordinate lines under a fixed header. Formatters
// preserve input order and leave all sorting to the query layer.
package export
