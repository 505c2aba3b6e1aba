package enrollment

import (
	"context"
	"fmt"
	"log/slog"

	"enrollment-backend/lib/scrapers/classschedule"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SectionFetcher returns the seating availability listing for one term
// and subject. *classschedule.Client is the production implementation.
type SectionFetcher interface {
	Sections(ctx context.Context, termKey int, subject string) ([]classschedule.Section, error)
}

type CollectorOptions struct {
	Fetcher          SectionFetcher
	PrimarySubject   string
	SecondarySubject string
	// most recent academic year to collect
	ReferenceYear int
	// how many years to walk back from ReferenceYear
	YearSpan int
	// sections below this catalog number are ignored, <= 0 disables
	MinimumCatalogNumber int
}

type Collector struct {
	opts CollectorOptions
}

func NewCollector(opts CollectorOptions) Collector {
	return Collector{opts: opts}
}

// Collect walks the configured year range newest-first, fetching
// (Spring, year+1) then (Fall, year) for each year. Summer terms are
// never collected. Terms with no qualifying primary sections are
// skipped silently, any fetch or codec error aborts the whole run.
func (c Collector) Collect(ctx context.Context) (*Table, error) {
	ctx, span := tracer.Start(ctx, "Collect")
	defer span.End()
	span.SetAttributes(
		attribute.String("primary_subject", c.opts.PrimarySubject),
		attribute.String("secondary_subject", c.opts.SecondarySubject),
		attribute.Int("reference_year", c.opts.ReferenceYear),
		attribute.Int("year_span", c.opts.YearSpan),
	)

	out := NewTable(c.opts.PrimarySubject, c.opts.SecondarySubject)
	for year := c.opts.ReferenceYear; year > c.opts.ReferenceYear-c.opts.YearSpan; year-- {
		terms := []struct {
			semester Semester
			year     int
		}{
			{Spring, year + 1},
			{Fall, year},
		}
		for _, term := range terms {
			rows, err := c.collectTerm(ctx, term.semester, term.year)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return nil, err
			}
			if len(rows) == 0 {
				slog.DebugContext(
					ctx, "term has no qualifying sections",
					"semester", term.semester,
					"year", term.year,
				)
				continue
			}
			out.Append(rows...)
		}
	}
	return out, nil
}

func (c Collector) collectTerm(ctx context.Context, semester Semester, year int) ([]Row, error) {
	key, err := EncodeTerm(string(semester), year)
	if err != nil {
		return nil, err
	}

	primary, err := c.opts.Fetcher.Sections(ctx, key, c.opts.PrimarySubject)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s %d: %w", c.opts.PrimarySubject, semester, year, err)
	}
	if len(primary) == 0 {
		return nil, nil
	}

	secondary, err := c.opts.Fetcher.Sections(ctx, key, c.opts.SecondarySubject)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s %d: %w", c.opts.SecondarySubject, semester, year, err)
	}

	rows := Merge(primary, secondary, c.opts.MinimumCatalogNumber)
	for i := range rows {
		rows[i].Year = year
		rows[i].Semester = semester
	}
	return rows, nil
}
