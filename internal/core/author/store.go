package author

import "context"

type Repository interface {
	ListAuthors(ctx context.Context) ([]*Author, error)
	GetAuthor(ctx context.Context, id int) (*Author, error)
	CreateAuthor(ctx context.Context, a *Author) error
}
