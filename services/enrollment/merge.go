package enrollment

import (
	"cmp"
	"slices"

	"enrollment-backend/lib/scrapers/classschedule"
)

// Row is one section of the primary subject with enrollment counts
// split by source subject.
type Row struct {
	Year              int
	Semester          Semester
	CatalogNumber     int
	Session           int
	Title             string
	EnrolledPrimary   int
	EnrolledSecondary int
	EnrolledAll       int
}

type sectionKey struct {
	catalogNumber int
	session       int
}

// Merge left-joins the secondary subject's listing onto the primary
// subject's, keyed on (catalog number, session). Primary sections
// below minCatNo are dropped first, minCatNo <= 0 disables the filter.
// A secondary section without a surviving primary match never produces
// a row of its own. Duplicate keys within one listing resolve
// last-write-wins. Output is sorted by catalog number, then session.
func Merge(primary, secondary []classschedule.Section, minCatNo int) []Row {
	secondaryByKey := make(map[sectionKey]classschedule.Section, len(secondary))
	for _, s := range secondary {
		secondaryByKey[sectionKey{s.CatalogNumber, s.Session}] = s
	}

	var keys []sectionKey
	primaryByKey := map[sectionKey]classschedule.Section{}
	for _, p := range primary {
		if minCatNo > 0 && p.CatalogNumber < minCatNo {
			continue
		}
		key := sectionKey{p.CatalogNumber, p.Session}
		if _, seen := primaryByKey[key]; !seen {
			keys = append(keys, key)
		}
		primaryByKey[key] = p
	}

	rows := make([]Row, 0, len(keys))
	for _, key := range keys {
		p := primaryByKey[key]
		row := Row{
			CatalogNumber:   p.CatalogNumber,
			Session:         p.Session,
			Title:           p.Title,
			EnrolledPrimary: p.Enrolled,
		}
		if s, ok := secondaryByKey[key]; ok {
			row.EnrolledSecondary = s.Enrolled
		}
		row.EnrolledAll = row.EnrolledPrimary + row.EnrolledSecondary
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(a.CatalogNumber, b.CatalogNumber); c != 0 {
			return c
		}
		return cmp.Compare(a.Session, b.Session)
	})
	return rows
}
