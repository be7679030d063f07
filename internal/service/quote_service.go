package service

import (
	"context"
	"fmt"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/repository"
)

// Notifier publishes a message after a successful state change. A nil
// notifier is allowed and skips publishing.
type Notifier interface {
	Publish(routingKey string, payload any) error
}

type QuoteService interface {
	BuildQuote(ctx context.Context, in pricing.QuoteInput) (*pricing.Quote, error)
}

type quoteService struct {
	catalog repository.CatalogRepository
	engine  *pricing.Engine
}

func NewQuoteService(catalog repository.CatalogRepository, engine *pricing.Engine) QuoteService {
	return &quoteService{catalog: catalog, engine: engine}
}

// BuildQuote loads the live rate table and add-on catalog and hands them
// to the pure engine. Nothing is cached between calls.
func (s *quoteService) BuildQuote(ctx context.Context, in pricing.QuoteInput) (*pricing.Quote, error) {
	rates, err := s.catalog.RateTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rate table: %w", err)
	}
	addOns, err := s.catalog.AddOnCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load add-on catalog: %w", err)
	}
	return s.engine.Quote(in, rates, addOns)
}
