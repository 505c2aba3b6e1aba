package enrollment

import (
	"context"
	"fmt"
	"testing"

	"enrollment-backend/lib/scrapers/classschedule"

	"github.com/stretchr/testify/require"
)

type fetchCall struct {
	termKey int
	subject string
}

type fakeFetcher struct {
	// listings[termKey][subject]
	listings map[int]map[string][]classschedule.Section
	failOn   fetchCall
	failErr  error
	calls    []fetchCall
}

func (f *fakeFetcher) Sections(ctx context.Context, termKey int, subject string) ([]classschedule.Section, error) {
	call := fetchCall{termKey: termKey, subject: subject}
	f.calls = append(f.calls, call)
	if f.failErr != nil && call == f.failOn {
		return nil, f.failErr
	}
	return f.listings[termKey][subject], nil
}

func TestCollect(t *testing.T) {
	// term keys: spring 2024 = 1244, fall 2023 = 1238,
	// spring 2023 = 1234, fall 2022 = 1228
	fetcher := &fakeFetcher{
		listings: map[int]map[string][]classschedule.Section{
			1244: {
				"ASTR": {
					{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", Enrolled: 40},
					{CatalogNumber: 999, Session: 1, Title: "Low", Enrolled: 10},
				},
				"PHYS": {
					{CatalogNumber: 3500, Session: 1, Title: "X", Enrolled: 5},
				},
			},
			1238: {
				"ASTR": {
					{CatalogNumber: 5580, Session: 1, Title: "Galaxies", Enrolled: 17},
				},
			},
			// spring 2023 offered nothing
			1234: {},
			1228: {
				// every section below the catalog floor
				"ASTR": {
					{CatalogNumber: 990, Session: 1, Title: "Stars", Enrolled: 98},
				},
			},
		},
	}

	collector := NewCollector(CollectorOptions{
		Fetcher:              fetcher,
		PrimarySubject:       "ASTR",
		SecondarySubject:     "PHYS",
		ReferenceYear:        2023,
		YearSpan:             2,
		MinimumCatalogNumber: 1000,
	})

	out, err := collector.Collect(context.Background())
	require.NoError(t, err)

	require.Equal(t, []Row{
		{Year: 2024, Semester: Spring, CatalogNumber: 3500, Session: 1, Title: "Intro Astro", EnrolledPrimary: 40, EnrolledSecondary: 5, EnrolledAll: 45},
		{Year: 2023, Semester: Fall, CatalogNumber: 5580, Session: 1, Title: "Galaxies", EnrolledPrimary: 17, EnrolledAll: 17},
	}, out.Rows)

	// primary fetched for all four terms in order, secondary only for
	// the terms where the primary listing had sections
	require.Equal(t, []fetchCall{
		{1244, "ASTR"},
		{1244, "PHYS"},
		{1238, "ASTR"},
		{1238, "PHYS"},
		{1234, "ASTR"},
		{1228, "ASTR"},
		{1228, "PHYS"},
	}, fetcher.calls)
}

func TestCollectFetchFailureAborts(t *testing.T) {
	fetchErr := fmt.Errorf("connection reset")
	fetcher := &fakeFetcher{
		listings: map[int]map[string][]classschedule.Section{
			1244: {
				"ASTR": {
					{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", Enrolled: 40},
				},
			},
		},
		failOn:  fetchCall{termKey: 1238, subject: "ASTR"},
		failErr: fetchErr,
	}

	collector := NewCollector(CollectorOptions{
		Fetcher:              fetcher,
		PrimarySubject:       "ASTR",
		SecondarySubject:     "PHYS",
		ReferenceYear:        2023,
		YearSpan:             1,
		MinimumCatalogNumber: 1000,
	})

	out, err := collector.Collect(context.Background())
	require.ErrorIs(t, err, fetchErr)
	require.Nil(t, out)
}

func TestCollectTermOrder(t *testing.T) {
	fetcher := &fakeFetcher{listings: map[int]map[string][]classschedule.Section{}}

	collector := NewCollector(CollectorOptions{
		Fetcher:          fetcher,
		PrimarySubject:   "ASTR",
		SecondarySubject: "PHYS",
		ReferenceYear:    2022,
		YearSpan:         3,
	})

	out, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Empty(t, out.Rows)

	// (spring, year+1) then (fall, year), descending years, no summer
	require.Equal(t, []fetchCall{
		{1234, "ASTR"}, // spring 2023
		{1228, "ASTR"}, // fall 2022
		{1224, "ASTR"}, // spring 2022
		{1218, "ASTR"}, // fall 2021
		{1214, "ASTR"}, // spring 2021
		{1208, "ASTR"}, // fall 2020
	}, fetcher.calls)
}
