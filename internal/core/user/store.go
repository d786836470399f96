package user

import "context"

type Repository interface {
	ListUsers(context context.Context) ([]*User, error)
	GetUser(context context.Context, username string) (*User, error)
}
