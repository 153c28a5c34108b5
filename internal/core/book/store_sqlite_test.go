package book_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagrapoonam/Book-Alchemy/internal/core/author"
	"github.com/nagrapoonam/Book-Alchemy/internal/core/book"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/database/schema"
	"github.com/nagrapoonam/Book-Alchemy/internal/testutil"
	"github.com/nagrapoonam/Book-Alchemy/pkg/date"
	"github.com/nagrapoonam/Book-Alchemy/pkg/pointer"
)

type fixture struct {
	db      *sql.DB
	books   *book.SQLiteRepository
	authors *author.SQLiteRepository
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	return fixture{
		db:      db,
		books:   book.NewSQLiteRepository(db),
		authors: author.NewSQLiteRepository(db),
	}
}

func (f fixture) addAuthor(t *testing.T, name string) *author.Author {
	t.Helper()

	a := &author.Author{Name: name, BirthDate: date.New(1900, time.January, 1)}
	require.NoError(t, f.authors.CreateAuthor(context.Background(), a))
	return a
}

func (f fixture) addBook(t *testing.T, title, isbn string, authorID int) *book.Book {
	t.Helper()

	b := &book.Book{ISBN: isbn, Title: title, PublicationYear: pointer.To(2000), AuthorID: authorID}
	require.NoError(t, f.books.CreateBook(context.Background(), b))
	return b
}

func TestSQLiteRepository_CreateAndList(t *testing.T) {
	f := newFixture(t)
	austen := f.addAuthor(t, "Jane Austen")

	emma := f.addBook(t, "Emma", "9780141439587", austen.ID)
	assert.NotZero(t, emma.ID)

	listings, err := f.books.ListBooksWithAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)

	got := listings[0]
	assert.Equal(t, *emma, got.Book)
	assert.Equal(t, austen.ID, got.Author.ID)
	assert.Equal(t, "Jane Austen", got.Author.Name)
	assert.Equal(t, austen.BirthDate, got.Author.BirthDate)
	assert.True(t, got.Author.DateOfDeath.IsZero())
}

func TestSQLiteRepository_ListEmpty(t *testing.T) {
	f := newFixture(t)

	listings, err := f.books.ListBooksWithAuthors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listings)
	assert.Empty(t, listings)
}

/*
TestSQLiteRepository_CreateBook_MissingAuthor leaves the store unchanged.
*/
func TestSQLiteRepository_CreateBook_MissingAuthor(t *testing.T) {
	f := newFixture(t)

	err := f.books.CreateBook(context.Background(), &book.Book{Title: "Orphan", AuthorID: 42})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Equal(t, 0, testutil.CountRows(t, f.db, schema.Book.Table))
}

func TestSQLiteRepository_CreateBook_EmptyISBNStoredAsNull(t *testing.T) {
	f := newFixture(t)
	a := f.addAuthor(t, "Anonymous")

	f.addBook(t, "First", "", a.ID)
	f.addBook(t, "Second", "", a.ID)

	var nulls int
	require.NoError(t, f.db.QueryRow("SELECT count(*) FROM book WHERE isbn IS NULL").Scan(&nulls))
	assert.Equal(t, 2, nulls)

	listings, err := f.books.ListBooksWithAuthors(context.Background())
	require.NoError(t, err)
	for _, l := range listings {
		assert.Empty(t, l.Book.ISBN)
	}
}

func TestSQLiteRepository_CreateBook_DuplicateISBN(t *testing.T) {
	f := newFixture(t)
	a := f.addAuthor(t, "Jane Austen")
	f.addBook(t, "Emma", "9780141439587", a.ID)

	err := f.books.CreateBook(context.Background(), &book.Book{ISBN: "9780141439587", Title: "Emma Again", AuthorID: a.ID})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Equal(t, 1, testutil.CountRows(t, f.db, schema.Book.Table))
}

func TestSQLiteRepository_CreateBook_NullYear(t *testing.T) {
	f := newFixture(t)
	a := f.addAuthor(t, "Homer")

	require.NoError(t, f.books.CreateBook(context.Background(), &book.Book{Title: "Odyssey", AuthorID: a.ID}))

	listings, err := f.books.ListBooksWithAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Nil(t, listings[0].Book.PublicationYear)
}

func TestSQLiteRepository_DeleteBook(t *testing.T) {
	f := newFixture(t)
	a := f.addAuthor(t, "Jane Austen")
	emma := f.addBook(t, "Emma", "", a.ID)
	persuasion := f.addBook(t, "Persuasion", "", a.ID)

	require.NoError(t, f.books.DeleteBook(context.Background(), emma.ID))

	listings, err := f.books.ListBooksWithAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, persuasion.ID, listings[0].Book.ID)

	// Authors are never removed with their books.
	assert.Equal(t, 1, testutil.CountRows(t, f.db, schema.Author.Table))
}

/*
TestSQLiteRepository_DeleteBook_Missing reports not found and changes nothing.
*/
func TestSQLiteRepository_DeleteBook_Missing(t *testing.T) {
	f := newFixture(t)
	a := f.addAuthor(t, "Jane Austen")
	f.addBook(t, "Emma", "", a.ID)

	err := f.books.DeleteBook(context.Background(), 999)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Equal(t, 1, testutil.CountRows(t, f.db, schema.Book.Table))
}
