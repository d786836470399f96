package pagination_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardapi/pkg/pagination"
)

func TestParse_Window(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		page    string
		bounded bool
		size    int
		offset  int
	}{
		{"nothing", "", "", false, pagination.DefaultPageSize, 0},
		{"limit_only", "5", "", true, 5, 0},
		{"page_only", "", "3", true, 10, 20},
		{"both", "4", "2", true, 4, 4},
		{"first_page", "7", "1", true, 7, 0},
		{"zero_limit", "0", "", true, 0, 0},
		{"zero_limit_far_page", "0", "50", true, 0, 0},
		{"far_page", "10", "1000000", true, 10, 9999990},
		{"max_page", "10", strconv.Itoa(math.MaxInt), true, 10, math.MaxInt},
		{"max_page_default_size", "", strconv.Itoa(math.MaxInt), true, 10, math.MaxInt},
		{"max_limit_second_page", strconv.Itoa(math.MaxInt), "2", true, math.MaxInt, math.MaxInt},
		{"max_limit_third_page", strconv.Itoa(math.MaxInt), "3", true, math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := pagination.Parse(tt.limit, tt.page)
			require.NoError(t, err)

			assert.Equal(t, tt.bounded, params.Bounded())
			assert.Equal(t, tt.size, params.Size())
			assert.Equal(t, tt.offset, params.Offset())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		page  string
		want  error
	}{
		{"word_limit", "ten", "", pagination.ErrInvalidLimit},
		{"decimal_limit", "2.5", "", pagination.ErrInvalidLimit},
		{"negative_limit", "-1", "", pagination.ErrInvalidLimit},
		{"word_page", "", "two", pagination.ErrInvalidPage},
		{"zero_page", "", "0", pagination.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pagination.Parse(tt.limit, tt.page)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOffset_NeverNegative(t *testing.T) {
	for _, page := range []int{2, 1 << 20, math.MaxInt / 10, math.MaxInt/10 + 1, math.MaxInt - 1, math.MaxInt} {
		for _, limit := range []string{"", "1", "7", "10", "1000", strconv.Itoa(math.MaxInt)} {
			params, err := pagination.Parse(limit, strconv.Itoa(page))
			if !assert.NoError(t, err) {
				continue
			}
			assert.GreaterOrEqual(t, params.Offset(), 0, "limit=%q page=%d", limit, page)
		}
	}
}
