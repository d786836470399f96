// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/internal/platform/dberr"
	"github.com/taibuivan/boardapi/internal/platform/postgres"
	"github.com/taibuivan/boardapi/pkg/pagination"
)

type PostgresRepository struct {
	db postgres.DBTX
}

func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListComments(context context.Context, articleID int, page pagination.Params) ([]*Comment, error) {
	query, args := buildListQuery(articleID, page)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, dberr.Wrap(rows.Err(), "list_comments")
}

/*
CreateComment inserts a comment with zero votes.

Description: The author and article are not pre-checked; a missing referent
is reported by PostgreSQL as a foreign key violation, which [dberr.Wrap]
turns into Not Found.
*/
func (repository *PostgresRepository) CreateComment(context context.Context, articleID int, input NewComment) (*Comment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, 0)
		RETURNING %s
	`,
		schema.BoardComment.Table,
		schema.BoardComment.Body, schema.BoardComment.Author, schema.BoardComment.ArticleID, schema.BoardComment.Votes,
		returningColumns,
	)

	c, err := scanComment(repository.db.QueryRow(context, query, input.Body, input.Username, articleID))
	if err != nil {
		return nil, dberr.Wrap(err, "create_comment")
	}
	return c, nil
}

func (repository *PostgresRepository) IncrementVotes(context context.Context, id, delta int) (*Comment, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + $1 WHERE %s = $2 RETURNING %s`,
		schema.BoardComment.Table,
		schema.BoardComment.Votes, schema.BoardComment.Votes,
		schema.BoardComment.ID,
		returningColumns,
	)

	c, err := scanComment(repository.db.QueryRow(context, query, delta, id))
	if err != nil {
		return nil, dberr.Wrap(err, "increment_comment_votes")
	}
	return c, nil
}

func (repository *PostgresRepository) DeleteComment(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BoardComment.Table, schema.BoardComment.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}

	if result.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_comment")
	}
	return nil
}

// scanComment reads one row laid out as [returningColumns].
func scanComment(row pgx.Row) (*Comment, error) {
	c := &Comment{}
	if err := row.Scan(&c.ID, &c.Body, &c.Votes, &c.Author, &c.ArticleID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}
