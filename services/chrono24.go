package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"watch-deal-scraper/config"
	"watch-deal-scraper/models"
	"watch-deal-scraper/utils"
)

const chrono24PricesURL = "https://api.chrono24.com/prices"

type priceResponse struct {
	AvgPrice *decimal.Decimal `json:"avg_price"`
}

// PriceOracle looks up the average Chrono24 market price (VK) for a reference number.
type PriceOracle struct {
	client  *resty.Client
	baseURL string
}

// NewPriceOracle creates a PriceOracle authenticated with the Chrono24 API key.
func NewPriceOracle(cfg *config.Config, logger *utils.Logger) *PriceOracle {
	return &PriceOracle{
		client:  utils.NewRestClient("chrono24", cfg.Chrono24APIKey, cfg.HTTPTimeout, logger),
		baseURL: chrono24PricesURL,
	}
}

// MarketPrice returns the average price for reference, or FallbackMarketPrice.
// Every call goes to the service; nothing is cached between listings.
func (p *PriceOracle) MarketPrice(ctx context.Context, reference string) Result[decimal.Decimal] {
	res, err := p.client.R().
		SetContext(ctx).
		Get(p.baseURL + "/" + url.PathEscape(reference))
	if err != nil {
		return fallback(models.FallbackMarketPrice, fmt.Errorf("chrono24: prices: %w", err))
	}
	if res.IsError() {
		return fallback(models.FallbackMarketPrice, fmt.Errorf("chrono24: prices: status %s", res.Status()))
	}

	var body priceResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return fallback(models.FallbackMarketPrice, fmt.Errorf("chrono24: decode: %w", err))
	}
	if body.AvgPrice == nil {
		return success(models.FallbackMarketPrice)
	}
	if body.AvgPrice.IsNegative() {
		return fallback(models.FallbackMarketPrice,
			fmt.Errorf("chrono24: negative avg_price %s", body.AvgPrice.String()))
	}
	if math.IsInf(body.AvgPrice.InexactFloat64(), 0) {
		return fallback(models.FallbackMarketPrice,
			fmt.Errorf("chrono24: avg_price out of range %s", body.AvgPrice.String()))
	}
	return success(*body.AvgPrice)
}
