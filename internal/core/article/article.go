// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"time"

	"github.com/taibuivan/boardapi/pkg/pagination"
)

// # Domain Entities

// Article is a post filed under a topic. It is the shape returned by writes.
type Article struct {
	ID        int       `json:"article_id"`
	Title     string    `json:"title"`
	Topic     string    `json:"topic"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	Votes     int       `json:"votes"`
}

// Detail is a single article together with its live comment count.
type Detail struct {
	Article
	CommentCount int `json:"comment_count"`
}

// Summary is one row of an article listing. The body is omitted.
type Summary struct {
	ID           int       `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

// NewArticle is the input for article creation.
type NewArticle struct {
	Title  string `json:"title"`
	Topic  string `json:"topic"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

// VoteInput is the body of a vote mutation. A nil IncVotes means the field was absent.
type VoteInput struct {
	IncVotes *int `json:"inc_votes"`
}

// # Listing

// ListQuery carries the raw listing parameters exactly as the client sent them.
// Empty strings mean "not supplied".
type ListQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  string
	Page   string
}

// Filter is a validated [ListQuery]. Only the service constructs it.
type Filter struct {
	Topic      string
	SortBy     string
	Descending bool
	Page       pagination.Params
}

// Page is one slice of an article listing plus the unpaginated match count.
type Page struct {
	Articles   []*Summary
	TotalCount int
}

// Accepted `sort_by` values.
const (
	SortTitle     = "title"
	SortTopic     = "topic"
	SortAuthor    = "author"
	SortBody      = "body"
	SortCreatedAt = "created_at"
	SortVotes     = "votes"

	DefaultSort = SortCreatedAt
)

// Accepted `order` values.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"

	DefaultOrder = OrderDesc
)

// SortableFields lists every accepted `sort_by` value.
var SortableFields = []string{SortTitle, SortTopic, SortAuthor, SortBody, SortCreatedAt, SortVotes}

// Global field names for validation
const (
	FieldID       = "article_id"
	FieldTitle    = "title"
	FieldTopic    = "topic"
	FieldAuthor   = "author"
	FieldBody     = "body"
	FieldSortBy   = "sort_by"
	FieldOrder    = "order"
	FieldLimit    = "limit"
	FieldPage     = "p"
	FieldIncVotes = "inc_votes"
)
