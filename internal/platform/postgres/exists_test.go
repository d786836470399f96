// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/internal/platform/postgres"
)

// fakeRow returns a canned EXISTS result.
type fakeRow struct {
	found bool
	err   error
}

func (row fakeRow) Scan(dest ...any) error {
	if row.err != nil {
		return row.err
	}
	*(dest[0].(*bool)) = row.found
	return nil
}

// fakeDB records the last statement issued through QueryRow.
type fakeDB struct {
	row   fakeRow
	query string
	args  []any
}

func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.query = sql
	db.args = args
	return db.row
}

/*
TestChecker_Exists verifies the found / missing / failure outcomes.
*/
func TestChecker_Exists(t *testing.T) {
	tests := []struct {
		name   string
		row    fakeRow
		assert func(t *testing.T, err error)
	}{
		{"found", fakeRow{found: true}, func(t *testing.T, err error) {
			assert.NoError(t, err)
		}},
		{"missing", fakeRow{found: false}, func(t *testing.T, err error) {
			assert.True(t, apperr.IsNotFound(err))
		}},
		{"storage_failure", fakeRow{err: errors.New("connection reset")}, func(t *testing.T, err error) {
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeInternal, ae.Code)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{row: tt.row}
			checker := postgres.NewChecker(db)

			tt.assert(t, checker.Exists(context.Background(), schema.TopicSlug, "cats"))
		})
	}
}

/*
TestChecker_Exists_Parameterized verifies that the value is bound and the
identifiers come from the fixed reference.
*/
func TestChecker_Exists_Parameterized(t *testing.T) {
	db := &fakeDB{row: fakeRow{found: true}}
	checker := postgres.NewChecker(db)

	hostile := `cats'; DROP TABLE topics; --`
	require.NoError(t, checker.Exists(context.Background(), schema.TopicSlug, hostile))

	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "topics" WHERE "slug" = $1)`, db.query)
	assert.Equal(t, []any{hostile}, db.args)
	assert.NotContains(t, db.query, "DROP")
}
