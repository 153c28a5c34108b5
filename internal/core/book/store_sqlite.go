package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/database/schema"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/dberr"
	"github.com/nagrapoonam/Book-Alchemy/pkg/pointer"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ListBooksWithAuthors joins every book with its author, in insertion order.
func (repository *SQLiteRepository) ListBooksWithAuthors(ctx context.Context) ([]Listing, error) {
	query, args, err := sq.Select(
		schema.Book.Col(schema.Book.ID),
		schema.Book.Col(schema.Book.ISBN),
		schema.Book.Col(schema.Book.Title),
		schema.Book.Col(schema.Book.PublicationYear),
		schema.Book.Col(schema.Book.AuthorID),
		schema.Author.Col(schema.Author.ID),
		schema.Author.Col(schema.Author.Name),
		schema.Author.Col(schema.Author.BirthDate),
		schema.Author.Col(schema.Author.DateOfDeath),
	).
		From(schema.Book.Table).
		Join(fmt.Sprintf("%s ON %s = %s",
			schema.Author.Table, schema.Author.Col(schema.Author.ID), schema.Book.Col(schema.Book.AuthorID))).
		OrderBy(schema.Book.Col(schema.Book.ID) + " ASC").
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_list_books")
	}

	rows, err := repository.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		var (
			l    Listing
			isbn sql.NullString
			year sql.NullInt64
		)
		if err := rows.Scan(
			&l.Book.ID, &isbn, &l.Book.Title, &year, &l.Book.AuthorID,
			&l.Author.ID, &l.Author.Name, &l.Author.BirthDate, &l.Author.DateOfDeath,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		l.Book.ISBN = isbn.String
		if year.Valid {
			l.Book.PublicationYear = pointer.To(int(year.Int64))
		}
		listings = append(listings, l)
	}

	return listings, dberr.Wrap(rows.Err(), "list_books")
}

// CreateBook checks the owning author and inserts b in one transaction.
// An empty ISBN is stored as NULL so several books may lack one.
func (repository *SQLiteRepository) CreateBook(ctx context.Context, b *Book) error {
	tx, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return dberr.Wrap(err, "begin_create_book")
	}
	defer func() { _ = tx.Rollback() }()

	if err := authorExists(ctx, tx, b.AuthorID); err != nil {
		return err
	}

	query, args, err := sq.Insert(schema.Book.Table).
		Columns(schema.Book.ISBN, schema.Book.Title, schema.Book.PublicationYear, schema.Book.AuthorID).
		Values(pointer.NilIfZero(b.ISBN), b.Title, b.PublicationYear, b.AuthorID).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_create_book")
	}

	result, err := tx.ExecContext(ctx, query, args...)
	switch {
	case dberr.IsUniqueViolation(err):
		conflict := apperr.Conflict(fmt.Sprintf("A book with ISBN %s already exists", b.ISBN))
		conflict.Cause = err
		return conflict
	case dberr.IsForeignKeyViolation(err):
		return apperr.NotFound("Author")
	case err != nil:
		return dberr.Wrap(err, "create_book")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return dberr.Wrap(err, "create_book_id")
	}

	if err := tx.Commit(); err != nil {
		return dberr.Wrap(err, "commit_create_book")
	}

	b.ID = int(id)
	return nil
}

func (repository *SQLiteRepository) DeleteBook(ctx context.Context, id int) error {
	query, args, err := sq.Delete(schema.Book.Table).
		Where(sq.Eq{schema.Book.ID: id}).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_delete_book")
	}

	result, err := repository.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}
	if affected == 0 {
		return apperr.NotFound("Book")
	}
	return nil
}

func authorExists(ctx context.Context, tx *sql.Tx, authorID int) error {
	query, args, err := sq.Select("1").
		From(schema.Author.Table).
		Where(sq.Eq{schema.Author.ID: authorID}).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_author_exists")
	}

	var one int
	err = tx.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("Author")
	}
	return dberr.Wrap(err, "author_exists")
}
