package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/artgrid/internal/domain"
	"github.com/mmcdole/artgrid/internal/paging"
)

const defaultFetchTimeout = 30 * time.Second

// CatalogService fetches pages of the artwork collection
type CatalogService struct {
	source  domain.ArtworkSource
	logger  *slog.Logger
	timeout time.Duration
}

// NewCatalogService creates a new catalog service
func NewCatalogService(source domain.ArtworkSource, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		source:  source,
		logger:  logger,
		timeout: defaultFetchTimeout,
	}
}

// Timeout is the deadline callers should apply to a single FetchPage
func (s *CatalogService) Timeout() time.Duration {
	return s.timeout
}

// FetchPage retrieves the page the cursor points at
func (s *CatalogService) FetchPage(ctx context.Context, cursor paging.Cursor) (domain.Page, error) {
	start := time.Now()
	page, err := s.source.FetchPage(ctx, cursor.Page, cursor.Size)
	if err != nil {
		s.logger.Warn("page fetch failed",
			"page", cursor.Page,
			"size", cursor.Size,
			"error", err)
		return domain.Page{}, fmt.Errorf("loading page %d: %w", cursor.Page, err)
	}

	s.logger.Debug("page fetched",
		"page", cursor.Page,
		"size", cursor.Size,
		"items", page.Len(),
		"total", page.Total,
		"duration", time.Since(start))

	return page, nil
}
