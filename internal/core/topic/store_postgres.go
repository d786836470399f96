package topic

import (
	"context"
	"fmt"

	"github.com/taibuivan/boardapi/internal/platform/database/schema"
	"github.com/taibuivan/boardapi/internal/platform/dberr"
	"github.com/taibuivan/boardapi/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.DBTX
}

func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTopics(context context.Context) ([]*Topic, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.BoardTopic.Slug, schema.BoardTopic.Description,
		schema.BoardTopic.Table, schema.BoardTopic.Slug,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	topics := make([]*Topic, 0)
	for rows.Next() {
		t := &Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		topics = append(topics, t)
	}

	return topics, dberr.Wrap(rows.Err(), "list_topics")
}

func (repository *PostgresRepository) CreateTopic(context context.Context, t *Topic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s
	`,
		schema.BoardTopic.Table, schema.BoardTopic.Slug, schema.BoardTopic.Description,
		schema.BoardTopic.Slug, schema.BoardTopic.Description,
	)

	err := repository.db.QueryRow(context, query, t.Slug, t.Description).Scan(&t.Slug, &t.Description)
	return dberr.Wrap(err, "create_topic")
}
