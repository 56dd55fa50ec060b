package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamarw/sillage/internal/domain"
)

func TestPagination_Clamping(t *testing.T) {
	t.Run("should clamp below lower bound to 1", func(t *testing.T) {
		p := domain.NewPagination(20)
		p.SetTotal(10)

		p.SetCurrent(0)
		require.Equal(t, 1, p.Current)

		p.SetCurrent(-3)
		require.Equal(t, 1, p.Current)
	})

	t.Run("should clamp above upper bound to total", func(t *testing.T) {
		p := domain.NewPagination(20)
		p.SetTotal(10)

		p.SetCurrent(15)
		require.Equal(t, 10, p.Current)
	})

	t.Run("should clamp to 1 when no pages are known", func(t *testing.T) {
		p := domain.NewPagination(20)

		p.SetCurrent(7)
		require.Equal(t, 1, p.Current)
	})

	t.Run("should re-clamp current when total shrinks", func(t *testing.T) {
		p := domain.NewPagination(20)
		p.SetTotal(10)
		p.SetCurrent(9)

		p.SetTotal(3)
		require.Equal(t, 3, p.Current)
	})
}

func TestPagination_Navigation(t *testing.T) {
	p := domain.NewPagination(20)
	p.SetTotal(3)

	require.False(t, p.HasPrevious())
	require.True(t, p.HasNext())

	p.SetCurrent(3)
	require.True(t, p.HasPrevious())
	require.False(t, p.HasNext())

	p.SetTotal(0)
	require.False(t, p.HasPrevious())
	require.False(t, p.HasNext())
}

func TestPageNumbers(t *testing.T) {
	e := domain.Ellipsis

	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"no pages", 1, 0, []int{1}},
		{"single page", 1, 1, []int{1}},
		{"two pages", 1, 2, []int{1, 2}},
		{"start of long range", 1, 20, []int{1, 2, e, 20}},
		{"page three has no leading ellipsis", 3, 20, []int{1, 2, 3, 4, e, 20}},
		{"page four gains leading ellipsis", 4, 20, []int{1, e, 3, 4, 5, e, 20}},
		{"middle window", 10, 20, []int{1, e, 9, 10, 11, e, 20}},
		{"near end loses trailing ellipsis", 18, 20, []int{1, e, 17, 18, 19, 20}},
		{"last page", 20, 20, []int{1, e, 19, 20}},
		{"short range has no ellipses", 2, 4, []int{1, 2, 3, 4}},
		{"out of range is clamped first", 99, 5, []int{1, e, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.PageNumbers(tt.current, tt.total))
		})
	}
}
