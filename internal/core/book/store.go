package book

import "context"

type Repository interface {
	ListBooksWithAuthors(ctx context.Context) ([]Listing, error)
	CreateBook(ctx context.Context, b *Book) error
	DeleteBook(ctx context.Context, id int) error
}
