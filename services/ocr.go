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

const visionAnnotateURL = "https://vision.googleapis.com/v1/images:annotate"

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image struct {
		Source struct {
			ImageURI string `json:"imageUri"`
		} `json:"source"`
	} `json:"image"`
	Features []feature `json:"features"`
}

type feature struct {
	Type string `json:"type"`
}

type annotateResponse struct {
	Responses []struct {
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
	} `json:"responses"`
}

// ReferenceReader reads a watch reference number off a photo using Google
// Vision text detection.
type ReferenceReader struct {
	client   *resty.Client
	endpoint string
}

// NewReferenceReader creates a ReferenceReader authenticated with the Vision API key.
func NewReferenceReader(cfg *config.Config, logger *utils.Logger) *ReferenceReader {
	return &ReferenceReader{
		client:   utils.NewRestClient("vision", cfg.VisionAPIKey, cfg.HTTPTimeout, logger),
		endpoint: visionAnnotateURL,
	}
}

// Read returns the first block of text detected in the image at imageURL,
// or Unknown.
func (r *ReferenceReader) Read(ctx context.Context, imageURL string) Result[string] {
	req := imageRequest{Features: []feature{{Type: "TEXT_DETECTION"}}}
	req.Image.Source.ImageURI = imageURL

	res, err := r.client.R().
		SetContext(ctx).
		SetBody(annotateRequest{Requests: []imageRequest{req}}).
		Post(r.endpoint)
	if err != nil {
		return fallback(models.Unknown, fmt.Errorf("vision: annotate: %w", err))
	}
	if res.IsError() {
		return fallback(models.Unknown, fmt.Errorf("vision: annotate: status %s", res.Status()))
	}

	var body annotateResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return fallback(models.Unknown, fmt.Errorf("vision: decode: %w", err))
	}
	if len(body.Responses) == 0 || len(body.Responses[0].TextAnnotations) == 0 {
		return fallback(models.Unknown, fmt.Errorf("vision: %w", ErrNoText))
	}

	text := strings.TrimSpace(body.Responses[0].TextAnnotations[0].Description)
	if text == "" {
		return fallback(models.Unknown, fmt.Errorf("vision: %w", ErrNoText))
	}
	return success(text)
}
