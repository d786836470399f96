// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/boardapi/internal/platform/apperr"
	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/internal/platform/dberr"
)

// Checker verifies that referenced rows exist.
type Checker struct {
	db DBTX
}

// NewChecker constructs a [Checker] over the given connection.
func NewChecker(db DBTX) *Checker {
	return &Checker{db: db}
}

/*
Exists reports whether at least one row of ref's table has value in ref's column.

Description: Identifiers come from [schema.Ref] and are quoted; the value is
always bound as $1.

Returns:
  - nil when a row matches
  - apperr.NotFound when none does
  - a classified storage error otherwise
*/
func (checker *Checker) Exists(ctx context.Context, ref schema.Ref, value any) error {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		pgx.Identifier{ref.Table()}.Sanitize(),
		pgx.Identifier{ref.Column()}.Sanitize(),
	)

	var found bool
	if err := checker.db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return dberr.Wrap(err, "exists_"+ref.String())
	}

	if !found {
		return apperr.NotFound()
	}

	return nil
}
