package kleinanzeigen

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/chromedp/chromedp"

	"watch-deal-scraper/config"
	"watch-deal-scraper/models"
	"watch-deal-scraper/utils"
)

// Scraper reads watch ads from a Kleinanzeigen results page.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger

	// fetch returns the rendered markup of the results page. Swapped out in tests.
	fetch func(ctx context.Context) (string, error)
}

// New creates a ready-to-use Kleinanzeigen Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	s := &Scraper{cfg: cfg, logger: logger}
	s.fetch = s.renderPage
	return s
}

// Scrape loads the configured results page once and returns up to five
// listings in page order. The browser session is closed before Scrape returns.
// Ads that cannot be read are logged and skipped; only a failure to load the
// page itself is returned as an error.
func (s *Scraper) Scrape(ctx context.Context) ([]*models.Listing, error) {
	s.logger.Info("[kleinanzeigen] Starting scrape — target: %s", s.cfg.ListingsURL)

	html, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	p, err := parsePage(html, s.cfg.ListingsURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("[kleinanzeigen] Found %d listings", p.Found)
	for _, skipErr := range p.Skipped {
		s.logger.Warn("[kleinanzeigen] Error extracting data: %v", skipErr)
	}

	s.logger.Info("[kleinanzeigen] Scrape complete — %d usable listings", len(p.Listings))
	return p.Listings, nil
}

// renderPage opens a headless browser, loads the results page, waits for the
// dynamic content to settle and returns the document markup.
func (s *Scraper) renderPage(ctx context.Context) (string, error) {
	chromeBin := findChromeBinary(s.cfg.ChromeBin)
	s.logger.Info("[kleinanzeigen] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()
	defer func() {
		if err := chromedp.Cancel(browserCtx); err != nil {
			s.logger.Debug("[kleinanzeigen] Browser close: %v", err)
		}
	}()

	runCtx := browserCtx
	if s.cfg.PageTimeout > 0 {
		var cancelTimeout context.CancelFunc
		runCtx, cancelTimeout = context.WithTimeout(browserCtx, s.cfg.PageTimeout)
		defer cancelTimeout()
	}

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(s.cfg.ListingsURL),
		chromedp.Sleep(s.cfg.PageSettle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("kleinanzeigen: load %q: %w", s.cfg.ListingsURL, err)
	}
	return html, nil
}

// chromeCandidates are tried in order when no browser path is configured.
var chromeCandidates = []string{
	"google-chrome",
	"chromium",
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
}

// findChromeBinary returns the configured browser path, else the first
// candidate found. An empty result leaves the choice to chromedp.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	for _, name := range chromeCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
