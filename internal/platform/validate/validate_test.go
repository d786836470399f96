// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
	"github.com/taibuivan/boardapi/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "body", "Great article", false},
		{"empty_string", "body", "", true},
		{"whitespace_only", "body", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeBadRequest, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_OneOf checks the allow-list rule, which is case-sensitive.
*/
func TestValidator_OneOf(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"asc", "asc", true},
		{"desc", "desc", true},
		{"upper_case", "ASC", false},
		{"unknown", "sideways", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.OneOf("order", tt.value, "asc", "desc")
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

func TestValidator_Int32(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		isValid bool
	}{
		{"zero", 0, true},
		{"negative", -100, true},
		{"max", math.MaxInt32, true},
		{"min", math.MinInt32, true},
		{"above_max", math.MaxInt32 + 1, false},
		{"below_min", math.MinInt32 - 1, false},
		{"three_billion", 3000000000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Int32("inc_votes", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").
		Required("body", "").
		OneOf("sort_by", "colour", "title", "votes").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, apperr.MessageBadRequest, ae.Message)
}

/*
TestParseID verifies identifier parsing for path parameters.
*/
func TestParseID(t *testing.T) {
	id, err := validate.ParseID("article_id", "42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, raw := range []string{"", "abc", "1.5", "99999999999"} {
		_, err := validate.ParseID("article_id", raw)
		assert.True(t, apperr.IsBadRequest(err), raw)
	}
}
