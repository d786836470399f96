package user

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

func (repository *PostgresRepository) ListUsers(context context.Context) ([]*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.BoardUser.Username, schema.BoardUser.Name, schema.BoardUser.AvatarURL,
		schema.BoardUser.Table, schema.BoardUser.Username,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, dberr.Wrap(rows.Err(), "list_users")
}

func (repository *PostgresRepository) GetUser(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.BoardUser.Username, schema.BoardUser.Name, schema.BoardUser.AvatarURL,
		schema.BoardUser.Table, schema.BoardUser.Username,
	)

	u := &User{}
	if err := repository.db.QueryRow(context, query, username).Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}

	return u, nil
}
