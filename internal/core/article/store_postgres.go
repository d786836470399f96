// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package article provides listing, lookup and mutation of board articles.

The PostgreSQL repository computes comment counts at read time with an outer
join and wraps create-then-refetch in a single transaction so a half-created
article is never visible to concurrent readers.
*/
package article

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/internal/platform/dberr"
	"github.com/taibuivan/boardapi/internal/platform/postgres"
)

// # PostgreSQL Repository

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListArticles returns one page of article summaries for a validated filter.
func (repository *PostgresRepository) ListArticles(context context.Context, filter Filter) ([]*Summary, error) {
	query, args := buildListQuery(filter)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := make([]*Summary, 0)
	for rows.Next() {
		a := &Summary{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Topic, &a.Author, &a.CreatedAt, &a.Votes, &a.CommentCount); err != nil {
			return nil, dberr.Wrap(err, "scan_article_summary")
		}
		articles = append(articles, a)
	}

	return articles, dberr.Wrap(rows.Err(), "list_articles")
}

// CountArticles returns the number of articles matching the filter, ignoring pagination.
func (repository *PostgresRepository) CountArticles(context context.Context, filter Filter) (int, error) {
	query, args := buildCountQuery(filter)

	var total int
	if err := repository.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_articles")
	}
	return total, nil
}

// GetArticle fetches one article with its comment count.
func (repository *PostgresRepository) GetArticle(context context.Context, id int) (*Detail, error) {
	return findDetail(context, repository.db, id)
}

/*
CreateArticle inserts an article with zero votes and returns it re-fetched
with its comment count.

Description: Insert and re-fetch share one transaction.
*/
func (repository *PostgresRepository) CreateArticle(context context.Context, input NewArticle) (*Detail, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING %s
	`,
		schema.BoardArticle.Table,
		schema.BoardArticle.Title, schema.BoardArticle.Topic, schema.BoardArticle.Author,
		schema.BoardArticle.Body, schema.BoardArticle.Votes,
		schema.BoardArticle.ID,
	)

	var created *Detail
	err := postgres.InTx(context, repository.db, func(transaction pgx.Tx) error {
		var id int
		if err := transaction.QueryRow(context, query, input.Title, input.Topic, input.Author, input.Body).Scan(&id); err != nil {
			return dberr.Wrap(err, "create_article")
		}

		detail, err := findDetail(context, transaction, id)
		if err != nil {
			return err
		}

		created = detail
		return nil
	})
	if err != nil {
		return nil, dberr.Wrap(err, "create_article")
	}

	return created, nil
}

// IncrementVotes atomically adds delta to an article's votes.
func (repository *PostgresRepository) IncrementVotes(context context.Context, id, delta int) (*Article, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = %s + $1
		WHERE %s = $2
		RETURNING %s, %s, %s, %s, %s, %s, %s
	`,
		schema.BoardArticle.Table,
		schema.BoardArticle.Votes, schema.BoardArticle.Votes,
		schema.BoardArticle.ID,
		schema.BoardArticle.ID, schema.BoardArticle.Title, schema.BoardArticle.Topic, schema.BoardArticle.Author,
		schema.BoardArticle.Body, schema.BoardArticle.CreatedAt, schema.BoardArticle.Votes,
	)

	a := &Article{}
	err := repository.db.QueryRow(context, query, delta, id).Scan(
		&a.ID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "increment_article_votes")
	}

	return a, nil
}

// DeleteArticle removes an article. Its comments go with it (ON DELETE CASCADE).
func (repository *PostgresRepository) DeleteArticle(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BoardArticle.Table, schema.BoardArticle.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	if result.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, "delete_article")
	}
	return nil
}

// findDetail runs the single-article lookup on either the pool or a transaction.
func findDetail(context context.Context, db postgres.DBTX, id int) (*Detail, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, COUNT(c.%s) AS comment_count
		FROM %s a
		LEFT JOIN %s c ON c.%s = a.%s
		WHERE a.%s = $1
		GROUP BY a.%s
	`,
		schema.BoardArticle.ID, schema.BoardArticle.Title, schema.BoardArticle.Topic, schema.BoardArticle.Author,
		schema.BoardArticle.Body, schema.BoardArticle.CreatedAt, schema.BoardArticle.Votes,
		schema.BoardComment.ID,
		schema.BoardArticle.Table,
		schema.BoardComment.Table, schema.BoardComment.ArticleID, schema.BoardArticle.ID,
		schema.BoardArticle.ID,
		schema.BoardArticle.ID,
	)

	d := &Detail{}
	err := db.QueryRow(context, query, id).Scan(
		&d.ID, &d.Title, &d.Topic, &d.Author, &d.Body, &d.CreatedAt, &d.Votes, &d.CommentCount,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}

	return d, nil
}
