package newsroom

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"newsdesk/internal/domain/publishing"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
)

// Service provides newsroom use cases over a publishing registry.
// It handles logging and metric recording and delegates entity
// construction and validation to the domain layer.
type Service struct {
	Registry *publishing.Registry
	Logger   *slog.Logger // optional; a LOG_LEVEL-configured JSON logger when nil
}

// NewService creates a new newsroom Service over the given registry.
// A nil logger falls back to the shared logging.NewLogger() instance.
func NewService(reg *publishing.Registry, logger *slog.Logger) *Service {
	return &Service{Registry: reg, Logger: logger}
}

// fallbackLogger is built once so LOG_LEVEL is read a single time per process.
var fallbackLogger = sync.OnceValue(logging.NewLogger)

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return fallbackLogger()
}

// recordFailure logs a rejected operation and records the validation
// failure metric when the error carries field detail.
func (s *Service) recordFailure(op string, err error) {
	var verr *publishing.ValidationError
	if errors.As(err, &verr) {
		metrics.RecordValidationFailure(verr.Field)
	}
	s.logger().Warn("operation rejected",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}

// CreateAuthor registers a new author with the given name.
// Returns a ValidationError when the name is empty.
func (s *Service) CreateAuthor(name string) (*publishing.Author, error) {
	author, err := s.Registry.NewAuthor(name)
	if err != nil {
		s.recordFailure("create_author", err)
		return nil, fmt.Errorf("create author: %w", err)
	}

	metrics.RecordAuthorRegistered()
	s.logger().Debug("author registered",
		slog.String("name", author.Name()),
		slog.Int64("seq", author.Sequence()),
	)
	return author, nil
}

// CreateMagazine registers a new magazine with the given name and category.
// Returns a ValidationError when either field is invalid.
func (s *Service) CreateMagazine(name, category string) (*publishing.Magazine, error) {
	magazine, err := s.Registry.NewMagazine(name, category)
	if err != nil {
		s.recordFailure("create_magazine", err)
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	metrics.RecordMagazineRegistered()
	s.logger().Debug("magazine registered",
		slog.String("name", magazine.Name()),
		slog.String("category", magazine.Category()),
		slog.Int64("seq", magazine.Sequence()),
	)
	return magazine, nil
}

// PublishArticle registers a new article by the given author in the given
// magazine. Returns ErrNilAuthor or ErrNilMagazine on missing references
// and a ValidationError on an invalid title or cross-registry reference.
func (s *Service) PublishArticle(author *publishing.Author, magazine *publishing.Magazine, title string) (*publishing.Article, error) {
	if author == nil {
		return nil, ErrNilAuthor
	}
	if magazine == nil {
		return nil, ErrNilMagazine
	}

	article, err := author.AddArticle(magazine, title)
	if err != nil {
		s.recordFailure("publish_article", err)
		return nil, fmt.Errorf("publish article: %w", err)
	}

	metrics.RecordArticlePublished(magazine.Category())
	s.logger().Debug("article published",
		slog.String("title", article.Title()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()),
		slog.Int64("seq", article.Sequence()),
	)
	return article, nil
}

// RenameMagazine assigns a new name to the magazine. The prior name is
// kept when validation rejects the new one.
func (s *Service) RenameMagazine(magazine *publishing.Magazine, name string) error {
	if magazine == nil {
		return ErrNilMagazine
	}

	prior := magazine.Name()
	if err := magazine.SetName(name); err != nil {
		s.recordFailure("rename_magazine", err)
		return fmt.Errorf("rename magazine: %w", err)
	}

	s.logger().Debug("magazine renamed",
		slog.String("from", prior),
		slog.String("to", name),
	)
	return nil
}

// RecategorizeMagazine assigns a new category to the magazine. The prior
// category is kept when validation rejects the new one.
func (s *Service) RecategorizeMagazine(magazine *publishing.Magazine, category string) error {
	if magazine == nil {
		return ErrNilMagazine
	}

	prior := magazine.Category()
	if err := magazine.SetCategory(category); err != nil {
		s.recordFailure("recategorize_magazine", err)
		return fmt.Errorf("recategorize magazine: %w", err)
	}

	s.logger().Debug("magazine recategorized",
		slog.String("from", prior),
		slog.String("to", category),
	)
	return nil
}

// TopPublisher returns the magazine with the most articles across the
// registry. The second return value is false when no articles exist.
func (s *Service) TopPublisher() (*publishing.Magazine, bool) {
	return s.Registry.TopPublisher()
}
