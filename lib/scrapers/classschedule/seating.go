package classschedule

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"enrollment-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Section is one row of the seating availability listing for a single
// term and subject.
type Section struct {
	CatalogNumber int
	Session       int
	Title         string
	Enrolled      int
}

// column offsets inside a seating availability table row
const (
	catalogNumberCell = 2
	sessionCell       = 3
	titleCell         = 4
	enrolledCell      = 7
)

// Sections fetches the seating availability listing for the given term
// key and subject code. The subject is upper-cased and trimmed before
// the request. A term/subject with nothing offered returns an empty
// slice, a missing listing table is an error.
func (c *Client) Sections(ctx context.Context, termKey int, subject string) ([]Section, error) {
	subject = strings.ToUpper(strings.TrimSpace(subject))

	ctx, span := tracer.Start(ctx, "client:Sections")
	defer span.End()
	span.SetAttributes(
		attribute.Int("term_key", termKey),
		attribute.String("subject", subject),
	)

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("subject", subject).
		Get(fmt.Sprintf("/%d/seating_availability.html", termKey))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	sections, err := ParseSeatingTable(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("term %d subject %s: %w", termKey, subject, err)
	}
	return sections, nil
}

// ParseSeatingTable extracts sections from a seating availability page.
// Exported so tests and one-off tools can run against saved pages.
func ParseSeatingTable(r io.Reader) ([]Section, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	listing := doc.Find("#seatingAvailabilityTable")
	if listing.Length() == 0 {
		return nil, fmt.Errorf("could not find #seatingAvailabilityTable")
	}

	sections := []Section{}
	var rowErr error
	listing.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		cols := row.Find("td")
		if cols.Length() <= enrolledCell {
			// header row
			return true
		}

		section, err := sectionFromCells(cols)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		sections = append(sections, section)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return sections, nil
}

func sectionFromCells(cols *goquery.Selection) (Section, error) {
	catNo, err := cellInt(cols, catalogNumberCell, "catalog number")
	if err != nil {
		return Section{}, err
	}
	session, err := cellInt(cols, sessionCell, "session")
	if err != nil {
		return Section{}, err
	}
	enrolled, err := cellInt(cols, enrolledCell, "enrolled count")
	if err != nil {
		return Section{}, err
	}
	return Section{
		CatalogNumber: catNo,
		Session:       session,
		Title:         htmlutil.CleanText(htmlutil.GetText(cols.Get(titleCell))),
		Enrolled:      enrolled,
	}, nil
}

func cellInt(cols *goquery.Selection, index int, name string) (int, error) {
	text := strings.TrimSpace(cols.Eq(index).Text())
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q", name, text)
	}
	return value, nil
}
