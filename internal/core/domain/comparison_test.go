package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/responsive/internal/core/domain"
)

func fourTiers(t *testing.T) *domain.Descriptors {
	t.Helper()
	set, err := domain.NewWidthSet(
		domain.Breakpoint{Name: "xs", MinWidth: 0},
		domain.Breakpoint{Name: "sm", MinWidth: 576},
		domain.Breakpoint{Name: "md", MinWidth: 768},
		domain.Breakpoint{Name: "lg", MinWidth: 992},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return domain.BuildDescriptors(set.Queries())
}

func TestCompare(t *testing.T) {
	c := domain.Compare("md", fourTiers(t))

	assert.Equal(t, map[string]bool{"xs": false, "sm": false, "md": true, "lg": false}, c.Is)
	assert.Equal(t, map[string]bool{"xs": true, "sm": true, "md": false, "lg": false}, c.GreaterThan)
	assert.Equal(t, map[string]bool{"xs": false, "sm": false, "md": false, "lg": true}, c.LessThan)
}

func TestCompare_ExactlyOneIs(t *testing.T) {
	ds := fourTiers(t)
	for _, active := range ds.Names() {
		c := domain.Compare(active, ds)
		count := 0
		for name, is := range c.Is {
			if is {
				count++
				assert.Equal(t, active, name)
			}
		}
		assert.Equal(t, 1, count, "active %s", active)
	}
}

func TestCompare_UnknownActive(t *testing.T) {
	ds := fourTiers(t)
	allFalse := map[string]bool{"xs": false, "sm": false, "md": false, "lg": false}

	first := domain.Compare("xxl", ds)
	second := domain.Compare("xxl", ds)

	assert.Equal(t, allFalse, first.Is)
	assert.Equal(t, allFalse, first.GreaterThan)
	assert.Equal(t, allFalse, first.LessThan)
	assert.True(t, first.Equal(second))
}

func TestCompare_NilDescriptors(t *testing.T) {
	c := domain.Compare("xs", nil)
	assert.Empty(t, c.Is)
	assert.Empty(t, c.GreaterThan)
	assert.Empty(t, c.LessThan)
}

func TestComparison_Equal(t *testing.T) {
	ds := fourTiers(t)
	assert.True(t, domain.Compare("sm", ds).Equal(domain.Compare("sm", ds)))
	assert.False(t, domain.Compare("sm", ds).Equal(domain.Compare("md", ds)))
}
