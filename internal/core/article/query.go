// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"fmt"
	"strings"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
)

// sortColumns maps each accepted sort_by value to its column identifier.
// Only these identifiers ever reach an ORDER BY clause.
var sortColumns = map[string]string{
	SortTitle:     schema.BoardArticle.Title,
	SortTopic:     schema.BoardArticle.Topic,
	SortAuthor:    schema.BoardArticle.Author,
	SortBody:      schema.BoardArticle.Body,
	SortCreatedAt: schema.BoardArticle.CreatedAt,
	SortVotes:     schema.BoardArticle.Votes,
}

/*
buildListQuery assembles the article listing statement for a validated filter.

Description: Articles are outer-joined to comments so that articles without
comments are listed with a zero count. Values (topic, limit, offset) are bound
as positional arguments; the sort column comes from [sortColumns] and the
direction from a boolean, so no request text is interpolated. article_id in
the same direction breaks ties.

Returns:
  - string: SQL statement
  - []any: positional arguments
*/
func buildListQuery(filter Filter) (string, []any) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, COUNT(c.%s) AS comment_count
		FROM %s a
		LEFT JOIN %s c ON c.%s = a.%s`,
		schema.BoardArticle.ID, schema.BoardArticle.Title, schema.BoardArticle.Topic,
		schema.BoardArticle.Author, schema.BoardArticle.CreatedAt, schema.BoardArticle.Votes,
		schema.BoardComment.ID,
		schema.BoardArticle.Table,
		schema.BoardComment.Table, schema.BoardComment.ArticleID, schema.BoardArticle.ID,
	))

	// Topic Filtering
	if filter.Topic != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE a.%s = $%d", schema.BoardArticle.Topic, argID))
		args = append(args, filter.Topic)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" GROUP BY a.%s", schema.BoardArticle.ID))

	// Apply Sorting
	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = sortColumns[DefaultSort]
	}

	sortDir := "ASC"
	if filter.Descending {
		sortDir = "DESC"
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY a.%s %s, a.%s %s", sortColumn, sortDir, schema.BoardArticle.ID, sortDir))

	// Pagination injection
	if filter.Page.Bounded() {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
		args = append(args, filter.Page.Size(), filter.Page.Offset())
	}

	return queryBuilder.String(), args
}

// buildCountQuery counts every article matching the filter, ignoring pagination.
func buildCountQuery(filter Filter) (string, []any) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s a`, schema.BoardArticle.Table)
	if filter.Topic == "" {
		return query, nil
	}

	query += fmt.Sprintf(" WHERE a.%s = $1", schema.BoardArticle.Topic)
	return query, []any{filter.Topic}
}
