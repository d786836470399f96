package schema

// BoardArticleTable represents the 'articles' table
type BoardArticleTable struct {
	Table     string
	ID        string
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt string
	Votes     string
}

// BoardArticle is the schema definition for articles
var BoardArticle = BoardArticleTable{
	Table:     "articles",
	ID:        "article_id",
	Title:     "title",
	Topic:     "topic",
	Author:    "author",
	Body:      "body",
	CreatedAt: "created_at",
	Votes:     "votes",
}

func (t BoardArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.Topic, t.Author, t.Body, t.CreatedAt, t.Votes}
}
