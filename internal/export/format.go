package export

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/asmdb/genesearch/internal/config"
	"github.com/asmdb/genesearch/internal/store"
)

// DefaultLineWidth is the FASTA sequence wrap width used when no explicit
// width is configured.
const DefaultLineWidth = 80

// Exporter renders matched gene records into output formats.
type Exporter struct {
	// Source serves DNA subsequences for sequence-bearing formats.
	Source SequenceSource

	// LineWidth is the FASTA wrap width.
	LineWidth int
}

// New returns an Exporter with the default line width.
func New(src SequenceSource) *Exporter {
	return &Exporter{Source: src, LineWidth: DefaultLineWidth}
}

// NewFromConfig returns an Exporter using the configured FASTA wrap width.
func NewFromConfig(src SequenceSource, cfg config.Config) *Exporter {
	return &Exporter{Source: src, LineWidth: cfg.FastaLineWidth}
}

// geneFormatters maps each output format name to its renderer.
// Populated once; read-only afterwards.
var geneFormatters = map[string]func(*Exporter, context.Context, []store.GeneRecord) ([]string, error){
	"fasta": (*Exporter).fasta,
	"csv":   (*Exporter).csv,
}

// Formats lists the registered output format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(geneFormatters))
	for name := range geneFormatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format renders genes with the named formatter. Output order matches
// input order; no sorting or deduplication happens here. Unknown format
// names are a caller error - validate against Formats first.
func (e *Exporter) Format(ctx context.Context, name string, genes []store.GeneRecord) ([]string, error) {
	f, ok := geneFormatters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return f(e, ctx, genes)
}

// fasta renders one multi-line FASTA record per gene:
//
//	>{locus_tag}|{acc}.{version}|{start}-{end}({strand})
//	{sequence, wrapped at LineWidth}
func (e *Exporter) fasta(ctx context.Context, genes []store.GeneRecord) ([]string, error) {
	records := make([]string, 0, len(genes))
	for _, g := range genes {
		seq, err := Sequence(ctx, e.Source, g)
		if err != nil {
			return nil, fmt.Errorf("extract sequence for %s: %w", g.LocusTag, err)
		}
		record := fmt.Sprintf(">%s|%s.%d|%d-%d(%s)\n%s",
			g.LocusTag, g.Acc, g.Version, g.StartPos, g.EndPos, g.Strand,
			breakLines(string(seq), e.LineWidth))
		records = append(records, record)
	}

	return records, nil
}

// csvHeader is the fixed tab-separated header line.
const csvHeader = "#Locus tag\tAccession\tStart\tEnd\tStrand"

// csv renders a header line plus one tab-separated line per gene.
func (e *Exporter) csv(_ context.Context, genes []store.GeneRecord) ([]string, error) {
	lines := make([]string, 0, len(genes)+1)
	lines = append(lines, csvHeader)
	for _, g := range genes {
		lines = append(lines, fmt.Sprintf("%s\t%s.%d\t%d\t%d\t%s",
			g.LocusTag, g.Acc, g.Version, g.StartPos, g.EndPos, g.Strand))
	}
	return lines, nil
}

// breakLines wraps s at width characters per line. Non-positive widths
// fall back to DefaultLineWidth.
func breakLines(s string, width int) string {
	if width <= 0 {
		width = DefaultLineWidth
	}
	if len(s) <= width {
		return s
	}

	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
