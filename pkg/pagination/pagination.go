// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how the optional `limit` and `p` query parameters select a
// slice of an ordered result set:
//
//   - neither given: the whole result set
//   - limit only: the first `limit` rows
//   - page only: page `p` of [DefaultPageSize] rows
//   - both: page `p` of `limit` rows
package pagination

import (
	"errors"
	"math"
	"strconv"
)

const (
	// DefaultPageSize is the number of items per page when only a page is requested.
	DefaultPageSize = 10
	// FirstPage is the starting page (1-indexed).
	FirstPage = 1
)

var (
	// ErrInvalidLimit is returned when limit is not a non-negative integer.
	ErrInvalidLimit = errors.New("pagination: limit must be a non-negative integer")
	// ErrInvalidPage is returned when page is not a positive integer.
	ErrInvalidPage = errors.New("pagination: page must be a positive integer")
)

// Params holds the parsed page and limit. The zero value selects everything.
type Params struct {
	Limit    int
	Page     int
	HasLimit bool
	HasPage  bool
}

// Parse converts raw `limit` and `p` query values into [Params].
// Empty strings mean the parameter was not supplied.
func Parse(rawLimit, rawPage string) (Params, error) {
	var params Params

	if rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			return Params{}, ErrInvalidLimit
		}
		params.Limit, params.HasLimit = limit, true
	}

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < FirstPage {
			return Params{}, ErrInvalidPage
		}
		params.Page, params.HasPage = page, true
	}

	return params, nil
}

// Bounded reports whether the result set must be cut at all.
func (p Params) Bounded() bool {
	return p.HasLimit || p.HasPage
}

// Size returns the SQL LIMIT value: the explicit limit, or [DefaultPageSize].
func (p Params) Size() int {
	if p.HasLimit {
		return p.Limit
	}
	return DefaultPageSize
}

// Offset returns the SQL OFFSET value derived from [Params.Page] and [Params.Size].
//
// A window that starts beyond the largest representable offset is clamped to
// [math.MaxInt], which is past any real row count and yields an empty page.
func (p Params) Offset() int {
	if !p.HasPage || p.Page <= FirstPage {
		return 0
	}

	skipped, size := p.Page-1, p.Size()
	if size > 0 && skipped > math.MaxInt/size {
		return math.MaxInt
	}
	return skipped * size
}
