package author

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(ctx)
}

func (service *Service) GetAuthor(ctx context.Context, id int) (*Author, error) {
	return service.repo.GetAuthor(ctx, id)
}

// CreateAuthor validates and persists author, filling in its generated ID.
// No ordering between birth and death dates is enforced.
func (service *Service) CreateAuthor(ctx context.Context, author *Author) error {
	author.Name = strings.TrimSpace(author.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, MaxNameLen)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAuthor(ctx, author); err != nil {
		return err
	}

	service.logger.Info("author_created", slog.Int("author_id", author.ID), slog.String("name", author.Name))
	return nil
}
