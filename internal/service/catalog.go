package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/kijanigreens/storefront/internal/models"
	"github.com/kijanigreens/storefront/internal/store"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type CatalogService struct {
	Store store.CatalogStore

	// ES is optional; when nil, search falls back to a catalog scan.
	ES      *elasticsearch.Client
	ESIndex string
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Store.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Store.GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	if strings.TrimSpace(query) == "" {
		return 0, nil, fmt.Errorf("query must not be empty: %w", ErrValidation)
	}

	if s.ES != nil {
		return searchIndex(ctx, s.ES, s.ESIndex, query, from, size)
	}
	return s.scanCatalog(ctx, query, from, size)
}

// scanCatalog is the search path without elasticsearch: a case-insensitive
// substring match over name and description.
func (s *CatalogService) scanCatalog(ctx context.Context, query string, from, size int) (int64, []models.Product, error) {
	products, err := s.Store.ListProducts(ctx)
	if err != nil {
		return 0, nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}

	total := int64(len(matched))
	if from >= len(matched) {
		return total, []models.Product{}, nil
	}
	end := from + size
	if end > len(matched) {
		end = len(matched)
	}
	return total, matched[from:end], nil
}
