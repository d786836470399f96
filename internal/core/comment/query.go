package comment

import (
	"fmt"
	"strings"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/pkg/pagination"
)

// returningColumns is the column list shared by every statement that yields a [Comment].
var returningColumns = strings.Join(schema.BoardComment.Columns(), ", ")

// buildListQuery selects one article's comments, newest first, with comment_id
// breaking ties between comments created at the same instant.
func buildListQuery(articleID int, page pagination.Params) (string, []any) {
	var queryBuilder strings.Builder
	args := []any{articleID}

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		returningColumns,
		schema.BoardComment.Table,
		schema.BoardComment.ArticleID,
		schema.BoardComment.CreatedAt, schema.BoardComment.ID,
	))

	if page.Bounded() {
		queryBuilder.WriteString(" LIMIT $2 OFFSET $3")
		args = append(args, page.Size(), page.Offset())
	}

	return queryBuilder.String(), args
}
