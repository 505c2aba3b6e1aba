package enrollment

import (
	"testing"

	"enrollment-backend/lib/scrapers/classschedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	testCases := []struct {
		name      string
		primary   []classschedule.Section
		secondary []classschedule.Section
		minCatNo  int
		expected  []Row
	}{
		{
			name: "cross-listed section sums both counts",
			primary: []classschedule.Section{
				{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", Enrolled: 40},
			},
			secondary: []classschedule.Section{
				{CatalogNumber: 3500, Session: 1, Title: "X", Enrolled: 5},
			},
			minCatNo: 1000,
			expected: []Row{
				{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", EnrolledPrimary: 40, EnrolledSecondary: 5, EnrolledAll: 45},
			},
		},
		{
			name: "primary below the catalog floor yields nothing",
			primary: []classschedule.Section{
				{CatalogNumber: 999, Session: 1, Title: "Low", Enrolled: 10},
			},
			minCatNo: 1000,
			expected: []Row{},
		},
		{
			name: "missing secondary defaults to zero",
			primary: []classschedule.Section{
				{CatalogNumber: 2100, Session: 1, Title: "Solo", Enrolled: 22},
			},
			secondary: []classschedule.Section{
				{CatalogNumber: 2100, Session: 2, Title: "Other session", Enrolled: 7},
			},
			minCatNo: 1000,
			expected: []Row{
				{CatalogNumber: 2100, Session: 1, Title: "Solo", EnrolledPrimary: 22, EnrolledAll: 22},
			},
		},
		{
			name: "secondary orphans are dropped",
			primary: []classschedule.Section{
				{CatalogNumber: 4000, Session: 1, Title: "Primary only view", Enrolled: 15},
			},
			secondary: []classschedule.Section{
				{CatalogNumber: 4000, Session: 1, Title: "Cross", Enrolled: 3},
				{CatalogNumber: 6000, Session: 1, Title: "Secondary only", Enrolled: 50},
			},
			minCatNo: 1000,
			expected: []Row{
				{CatalogNumber: 4000, Session: 1, Title: "Primary only view", EnrolledPrimary: 15, EnrolledSecondary: 3, EnrolledAll: 18},
			},
		},
		{
			name: "zero floor keeps every primary row",
			primary: []classschedule.Section{
				{CatalogNumber: 990, Session: 1, Title: "Stars", Enrolled: 98},
				{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", Enrolled: 40},
			},
			minCatNo: 0,
			expected: []Row{
				{CatalogNumber: 990, Session: 1, Title: "Stars", EnrolledPrimary: 98, EnrolledAll: 98},
				{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", EnrolledPrimary: 40, EnrolledAll: 40},
			},
		},
		{
			name: "duplicate primary keys resolve last-write-wins",
			primary: []classschedule.Section{
				{CatalogNumber: 3500, Session: 1, Title: "Old title", Enrolled: 10},
				{CatalogNumber: 3500, Session: 1, Title: "New title", Enrolled: 12},
			},
			minCatNo: 1000,
			expected: []Row{
				{CatalogNumber: 3500, Session: 1, Title: "New title", EnrolledPrimary: 12, EnrolledAll: 12},
			},
		},
		{
			name: "output sorted by catalog number then session",
			primary: []classschedule.Section{
				{CatalogNumber: 5580, Session: 1, Title: "Galaxies", Enrolled: 17},
				{CatalogNumber: 3500, Session: 2, Title: "Intro Astro", Enrolled: 12},
				{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", Enrolled: 40},
			},
			minCatNo: 1000,
			expected: []Row{
				{CatalogNumber: 3500, Session: 1, Title: "Intro Astro", EnrolledPrimary: 40, EnrolledAll: 40},
				{CatalogNumber: 3500, Session: 2, Title: "Intro Astro", EnrolledPrimary: 12, EnrolledAll: 12},
				{CatalogNumber: 5580, Session: 1, Title: "Galaxies", EnrolledPrimary: 17, EnrolledAll: 17},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Merge(tc.primary, tc.secondary, tc.minCatNo)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeTotalsAndCardinality(t *testing.T) {
	primary := []classschedule.Section{
		{CatalogNumber: 1010, Session: 1, Title: "A", Enrolled: 5},
		{CatalogNumber: 2020, Session: 1, Title: "B", Enrolled: 8},
		{CatalogNumber: 3030, Session: 2, Title: "C", Enrolled: 13},
	}
	secondary := []classschedule.Section{
		{CatalogNumber: 2020, Session: 1, Title: "B cross", Enrolled: 4},
		{CatalogNumber: 7070, Session: 1, Title: "Orphan", Enrolled: 99},
		{CatalogNumber: 3030, Session: 1, Title: "Wrong session", Enrolled: 2},
	}

	rows := Merge(primary, secondary, 0)
	require.Len(t, rows, len(primary))
	for _, row := range rows {
		require.Equal(t, row.EnrolledPrimary+row.EnrolledSecondary, row.EnrolledAll)
	}
	require.Equal(t, 0, rows[0].EnrolledSecondary)
	require.Equal(t, 4, rows[1].EnrolledSecondary)
	require.Equal(t, 0, rows[2].EnrolledSecondary)
}
