package schema

// Ref names a single column of a single table for lookups such as existence
// checks. Its fields are unexported so that only the references declared in
// this package can exist; request input can never become an identifier.
type Ref struct {
	table  string
	column string
}

// Table returns the table identifier.
func (r Ref) Table() string { return r.table }

// Column returns the column identifier.
func (r Ref) Column() string { return r.column }

// String renders the reference as "table.column" for logs.
func (r Ref) String() string { return r.table + "." + r.column }

// Fixed references used to verify foreign-key-like inputs.
var (
	TopicSlug    = Ref{table: BoardTopic.Table, column: BoardTopic.Slug}
	UserUsername = Ref{table: BoardUser.Table, column: BoardUser.Username}
	ArticleID    = Ref{table: BoardArticle.Table, column: BoardArticle.ID}
	CommentID    = Ref{table: BoardComment.Table, column: BoardComment.ID}
)
