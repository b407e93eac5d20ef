package services

import (
	"context"

	"github.com/shopspring/decimal"

	"watch-deal-scraper/models"
	"watch-deal-scraper/utils"
)

// AttributeSource recognises watch attributes from a listing photo.
type AttributeSource interface {
	Extract(ctx context.Context, imageURL string) Result[models.WatchAttributes]
}

// ReferenceSource reads a reference number from a listing photo.
type ReferenceSource interface {
	Read(ctx context.Context, imageURL string) Result[string]
}

// PriceSource looks up the market price for a reference number.
type PriceSource interface {
	MarketPrice(ctx context.Context, reference string) Result[decimal.Decimal]
}

// Enricher runs a listing through attribute recognition, reference lookup,
// market pricing and the EK calculation, in that order.
type Enricher struct {
	attrs  AttributeSource
	refs   ReferenceSource
	prices PriceSource
	logger *utils.Logger
}

func NewEnricher(attrs AttributeSource, refs ReferenceSource, prices PriceSource, logger *utils.Logger) *Enricher {
	return &Enricher{attrs: attrs, refs: refs, prices: prices, logger: logger}
}

// Enrich never fails: a stage that could not produce data contributes its
// default and the reason is logged.
func (e *Enricher) Enrich(ctx context.Context, l *models.Listing) *models.Deal {
	// Both photo stages use the search-result thumbnail; the detail page is not visited.
	attrs := e.attrs.Extract(ctx, l.ImageURL)
	if !attrs.OK() {
		e.report("attributes", l, attrs.Err)
	}

	ref := e.refs.Read(ctx, l.ImageURL)
	if !ref.OK() {
		e.report("reference", l, ref.Err)
	}

	vk := e.prices.MarketPrice(ctx, ref.Value)
	if !vk.OK() {
		e.report("market price", l, vk.Err)
	}

	ek := TargetPrice(vk.Value)
	e.logger.Debug("[enricher] %q ref=%s VK=%s EK=%s",
		l.Title, ref.Value, vk.Value.StringFixed(2), ek.StringFixed(2))

	return &models.Deal{
		Listing:         l,
		Attributes:      attrs.Value,
		ReferenceNumber: ref.Value,
		MarketPrice:     vk.Value,
		TargetPrice:     ek,
		Verdict:         Judge(l.Price, ek),
	}
}

func (e *Enricher) report(stage string, l *models.Listing, err error) {
	e.logger.Warn("[enricher] %s fallback for %q: %v", stage, l.Title, err)
}
