package main

import (
	"context"
	"os"

	"watch-deal-scraper/config"
	"watch-deal-scraper/models"
	"watch-deal-scraper/scraper/kleinanzeigen"
	"watch-deal-scraper/services"
	"watch-deal-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)

	logger.Info("=== Watch Deal Scraper starting (run %s) ===", logger.RunID())
	logger.Info("Config — url: %s | settle: %v | page timeout: %v | http timeout: %v",
		cfg.ListingsURL, cfg.PageSettle, cfg.PageTimeout, cfg.HTTPTimeout)

	ctx := context.Background()

	listings, err := kleinanzeigen.New(cfg, logger).Scrape(ctx)
	if err != nil {
		logger.Error("Kleinanzeigen scrape failed: %v", err)
		os.Exit(1)
	}

	enricher := services.NewEnricher(
		services.NewAttributeExtractor(cfg, logger),
		services.NewReferenceReader(cfg, logger),
		services.NewPriceOracle(cfg, logger),
		logger,
	)
	presenter := services.NewPresenter(os.Stdout)
	presenter.Header()

	deals := make([]*models.Deal, 0, len(listings))
	for _, l := range listings {
		d := enricher.Enrich(ctx, l)
		presenter.Render(d)
		deals = append(deals, d)
	}

	presenter.Summary(deals)
	logger.Info("Done — %d listings analysed", len(deals))
}
