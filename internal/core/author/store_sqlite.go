package author

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/database/schema"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/dberr"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) ListAuthors(ctx context.Context) ([]*Author, error) {
	query, args, err := sq.Select(schema.Author.Columns()...).
		From(schema.Author.Table).
		OrderBy(schema.Author.Name+" ASC", schema.Author.ID+" ASC").
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_list_authors")
	}

	rows, err := repository.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate, &a.DateOfDeath); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, dberr.Wrap(rows.Err(), "list_authors")
}

func (repository *SQLiteRepository) GetAuthor(ctx context.Context, id int) (*Author, error) {
	query, args, err := sq.Select(schema.Author.Columns()...).
		From(schema.Author.Table).
		Where(sq.Eq{schema.Author.ID: id}).
		ToSql()
	if err != nil {
		return nil, dberr.Wrap(err, "build_get_author")
	}

	a := &Author{}
	err = repository.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.Name, &a.BirthDate, &a.DateOfDeath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("Author")
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}

func (repository *SQLiteRepository) CreateAuthor(ctx context.Context, a *Author) error {
	query, args, err := sq.Insert(schema.Author.Table).
		Columns(schema.Author.Name, schema.Author.BirthDate, schema.Author.DateOfDeath).
		Values(a.Name, a.BirthDate, a.DateOfDeath).
		ToSql()
	if err != nil {
		return dberr.Wrap(err, "build_create_author")
	}

	result, err := repository.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dberr.Wrap(err, "create_author")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return dberr.Wrap(err, "create_author_id")
	}

	a.ID = int(id)
	return nil
}
