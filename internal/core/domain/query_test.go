package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/responsive/internal/core/domain"
)

func TestBuildMediaQueries(t *testing.T) {
	queries := domain.BuildMediaQueries([]domain.Breakpoint{
		{Name: "xs", MinWidth: 0},
		{Name: "sm", MinWidth: 576},
		{Name: "md", MinWidth: 768},
	})

	assert.Equal(t, []domain.NamedQuery{
		{Name: "xs", Query: "(min-width: 0px) and (max-width: 575px)"},
		{Name: "sm", Query: "(min-width: 576px) and (max-width: 767px)"},
		{Name: "md", Query: "(min-width: 768px)"},
	}, queries)
}

func TestBuildMediaQueries_Empty(t *testing.T) {
	assert.Empty(t, domain.BuildMediaQueries(nil))
	assert.Equal(t, 0, domain.BuildDescriptors(nil).Len())
}

func TestBuildMediaQueries_Single(t *testing.T) {
	queries := domain.BuildMediaQueries([]domain.Breakpoint{{Name: "only", MinWidth: 40}})
	require.Len(t, queries, 1)
	assert.Equal(t, "(min-width: 40px)", queries[0].Query)
}

func TestSortByWidth_StableForTies(t *testing.T) {
	in := []domain.Breakpoint{
		{Name: "wide", MinWidth: 120},
		{Name: "a", MinWidth: 80},
		{Name: "narrow", MinWidth: 0},
		{Name: "b", MinWidth: 80},
	}

	sorted := domain.SortByWidth(in)

	names := make([]string, len(sorted))
	for i, bp := range sorted {
		names[i] = bp.Name
	}
	assert.Equal(t, []string{"narrow", "a", "b", "wide"}, names)
	// The input is left untouched.
	assert.Equal(t, "wide", in[0].Name)
}

func TestBuildDescriptors_Relations(t *testing.T) {
	set, err := domain.NewWidthSet(
		domain.Breakpoint{Name: "xs", MinWidth: 0},
		domain.Breakpoint{Name: "sm", MinWidth: 576},
		domain.Breakpoint{Name: "md", MinWidth: 768},
		domain.Breakpoint{Name: "lg", MinWidth: 992},
	)
	require.NoError(t, err)

	ds := domain.BuildDescriptors(set.Queries())
	require.Equal(t, 4, ds.Len())
	assert.Equal(t, []string{"xs", "sm", "md", "lg"}, ds.Names())

	assert.Equal(t, []string{"xs", "sm"}, ds.GreaterThan("md"))
	assert.Equal(t, []string{"lg"}, ds.LessThan("md"))
	assert.Empty(t, ds.GreaterThan("xs"))
	assert.Empty(t, ds.LessThan("lg"))
	assert.Nil(t, ds.GreaterThan("unknown"))

	// For every a before b: b is greater than a, a is less than b, never the reverse.
	names := ds.Names()
	for i, a := range names {
		da, _ := ds.Lookup(a)
		for j, b := range names {
			db, _ := ds.Lookup(b)
			switch {
			case i < j:
				assert.True(t, db.IsGreaterThan(a), "%s > %s", b, a)
				assert.True(t, da.IsLessThan(b), "%s < %s", a, b)
				assert.False(t, da.IsGreaterThan(b))
				assert.False(t, db.IsLessThan(a))
			case i == j:
				assert.False(t, da.IsGreaterThan(b))
				assert.False(t, da.IsLessThan(b))
			}
		}
	}
}

func TestBuildDescriptors_DuplicateWidthsKept(t *testing.T) {
	set, err := domain.NewWidthSet(
		domain.Breakpoint{Name: "xs", MinWidth: 0},
		domain.Breakpoint{Name: "compact", MinWidth: 80},
		domain.Breakpoint{Name: "medium", MinWidth: 80},
	)
	require.NoError(t, err)

	ds := domain.BuildDescriptors(set.Queries())
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, "(min-width: 80px) and (max-width: 79px)", ds.At(1).Query)
	assert.Equal(t, "(min-width: 80px)", ds.At(2).Query)
}

func TestBuildDescriptors_QuerySetKeepsOrder(t *testing.T) {
	set, err := domain.NewQuerySet(
		domain.NamedQuery{Name: "narrow", Query: "(max-width: 79px)"},
		domain.NamedQuery{Name: "wide", Query: "(min-width: 80px)"},
	)
	require.NoError(t, err)

	ds := domain.BuildDescriptors(set.Queries())
	assert.Equal(t, []string{"narrow", "wide"}, ds.Names())
	d, ok := ds.Lookup("wide")
	require.True(t, ok)
	assert.Equal(t, "(min-width: 80px)", d.Query)
	assert.True(t, d.IsGreaterThan("narrow"))
}
