package schema

// BoardCommentTable represents the 'comments' table
type BoardCommentTable struct {
	Table     string
	ID        string
	Body      string
	Votes     string
	Author    string
	ArticleID string
	CreatedAt string
}

// BoardComment is the schema definition for comments
var BoardComment = BoardCommentTable{
	Table:     "comments",
	ID:        "comment_id",
	Body:      "body",
	Votes:     "votes",
	Author:    "author",
	ArticleID: "article_id",
	CreatedAt: "created_at",
}

func (t BoardCommentTable) Columns() []string {
	return []string{t.ID, t.Body, t.Votes, t.Author, t.ArticleID, t.CreatedAt}
}
