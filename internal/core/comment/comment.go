// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import "time"

// Comment is a reply posted by a user on an article.
type Comment struct {
	ID        int       `json:"comment_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment is the body of a comment post. The author is sent as `username`.
type NewComment struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// VoteInput is the body of a vote mutation. A nil IncVotes means the field was absent.
type VoteInput struct {
	IncVotes *int `json:"inc_votes"`
}

// Global field names for validation
const (
	FieldID        = "comment_id"
	FieldArticleID = "article_id"
	FieldUsername  = "username"
	FieldBody      = "body"
	FieldLimit     = "limit"
	FieldPage      = "p"
	FieldIncVotes  = "inc_votes"
)
