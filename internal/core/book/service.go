package book

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/nagrapoonam/Book-Alchemy/internal/core/author"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/validate"
	"github.com/nagrapoonam/Book-Alchemy/pkg/pointer"
)

// AuthorReader is the author capability the book service needs.
type AuthorReader interface {
	ListAuthors(ctx context.Context) ([]*author.Author, error)
	GetAuthor(ctx context.Context, id int) (*author.Author, error)
}

// ISBNFetcher resolves a title to an ISBN; found is false when nothing matched.
type ISBNFetcher interface {
	FetchISBN(ctx context.Context, title string) (isbn string, found bool, err error)
}

type Service struct {
	repo          Repository
	authors       AuthorReader
	isbn          ISBNFetcher
	coverTemplate string
	logger        *slog.Logger
}

// NewService wires the book service. coverTemplate receives the ISBN through
// a single %s verb.
func NewService(repo Repository, authors AuthorReader, isbn ISBNFetcher, coverTemplate string, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		authors:       authors,
		isbn:          isbn,
		coverTemplate: coverTemplate,
		logger:        logger,
	}
}

// Catalog lists books joined with their authors, filtered and sorted per q.
func (service *Service) Catalog(ctx context.Context, q Query) ([]Entry, error) {
	listings, err := service.repo.ListBooksWithAuthors(ctx)
	if err != nil {
		return nil, err
	}

	if q.Action == ActionSearch && q.Search != "" {
		listings = FilterListings(listings, q.Search)
	}
	SortListings(listings, q.Sort)

	return lo.Map(listings, func(l Listing, _ int) Entry {
		return Entry{
			ID:       l.Book.ID,
			Title:    l.Book.Title,
			Author:   l.Author.Name,
			CoverURL: service.CoverURL(l.Book.ISBN),
		}
	}), nil
}

// CoverURL renders the cover image address for isbn.
func (service *Service) CoverURL(isbn string) string {
	return fmt.Sprintf(service.coverTemplate, isbn)
}

func (service *Service) ListAuthors(ctx context.Context) ([]*author.Author, error) {
	return service.authors.ListAuthors(ctx)
}

// AddBook validates input, resolves its ISBN and persists it. A lookup that
// finds nothing leaves the ISBN empty; a failing lookup aborts the operation.
func (service *Service) AddBook(ctx context.Context, input NewBook) (*Book, error) {
	title := strings.TrimSpace(input.Title)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).
		MaxLen(FieldTitle, title, MaxTitleLen).
		Positive(FieldAuthorID, input.AuthorID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Fail before the outbound call when the author is already known to be missing.
	if _, err := service.authors.GetAuthor(ctx, input.AuthorID); err != nil {
		return nil, err
	}

	isbn, found, err := service.isbn.FetchISBN(ctx, title)
	if err != nil {
		service.logger.Error("isbn_lookup_failed", slog.String("title", title), slog.Any("error", err))
		return nil, err
	}
	if !found {
		service.logger.Info("isbn_not_found", slog.String("title", title))
	}

	b := &Book{
		ISBN:            isbn,
		Title:           title,
		PublicationYear: pointer.To(input.PublicationYear),
		AuthorID:        input.AuthorID,
	}
	if err := service.repo.CreateBook(ctx, b); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.Int("book_id", b.ID),
		slog.Int("author_id", b.AuthorID),
		slog.Int("publication_year", pointer.Val(b.PublicationYear)),
		slog.String("isbn", b.ISBN),
	)
	return b, nil
}

func (service *Service) DeleteBook(ctx context.Context, id int) error {
	if err := service.repo.DeleteBook(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

// FilterListings keeps listings whose title or author name contains search,
// compared with Unicode case folding.
func FilterListings(listings []Listing, search string) []Listing {
	caser := cases.Fold()
	needle := caser.String(search)

	return lo.Filter(listings, func(l Listing, _ int) bool {
		return strings.Contains(caser.String(l.Book.Title), needle) ||
			strings.Contains(caser.String(l.Author.Name), needle)
	})
}

// SortListings orders listings in place by key, ascending. Equal keys keep
// book id order, so the result is the same whatever order came in.
func SortListings(listings []Listing, key SortKey) {
	sortKey := func(l Listing) string { return l.Book.Title }
	if key == SortAuthor {
		sortKey = func(l Listing) string { return l.Author.Name }
	}

	slices.SortStableFunc(listings, func(a, b Listing) int {
		return cmp.Or(
			strings.Compare(sortKey(a), sortKey(b)),
			cmp.Compare(a.Book.ID, b.Book.ID),
		)
	})
}
