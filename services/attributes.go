package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"watch-deal-scraper/config"
	"watch-deal-scraper/models"
	"watch-deal-scraper/utils"
)

const grokAnalyzeURL = "https://api.grok.com/analyze"

// AttributeExtractor asks the Grok image analysis API what watch is shown in a photo.
type AttributeExtractor struct {
	client   *resty.Client
	endpoint string
}

// NewAttributeExtractor creates an AttributeExtractor authenticated with the Grok API key.
func NewAttributeExtractor(cfg *config.Config, logger *utils.Logger) *AttributeExtractor {
	return &AttributeExtractor{
		client:   utils.NewRestClient("grok", cfg.GrokAPIKey, cfg.HTTPTimeout, logger),
		endpoint: grokAnalyzeURL,
	}
}

// Extract sends imageURL for analysis. Fields missing from the answer are
// Unknown; if the call fails altogether every field is Unknown.
func (a *AttributeExtractor) Extract(ctx context.Context, imageURL string) Result[models.WatchAttributes] {
	res, err := a.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"image_url": imageURL}).
		Post(a.endpoint)
	if err != nil {
		return fallback(models.UnknownAttributes(), fmt.Errorf("grok: analyze: %w", err))
	}
	if res.IsError() {
		return fallback(models.UnknownAttributes(), fmt.Errorf("grok: analyze: status %s", res.Status()))
	}

	var data map[string]any
	if err := json.Unmarshal(res.Body(), &data); err != nil {
		return fallback(models.UnknownAttributes(), fmt.Errorf("grok: decode: %w", err))
	}
	if data == nil {
		return fallback(models.UnknownAttributes(), fmt.Errorf("grok: %w", ErrEmptyResponse))
	}

	return success(models.WatchAttributes{
		Brand:           stringField(data, "brand"),
		Model:           stringField(data, "model"),
		DialColor:       stringField(data, "dial_color"),
		CaseMaterial:    stringField(data, "case_material"),
		ReferenceNumber: stringField(data, "reference_number"),
	})
}

func stringField(data map[string]any, key string) string {
	s, isString := data[key].(string)
	if !isString || strings.TrimSpace(s) == "" {
		return models.Unknown
	}
	return strings.TrimSpace(s)
}
