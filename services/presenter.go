package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"watch-deal-scraper/models"
)

// Presenter prints enriched listings as cards on a terminal.
type Presenter struct {
	out io.Writer
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) Header() {
	sep := strings.Repeat("═", 64)
	fmt.Fprintf(p.out, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(p.out, "\033[1;35m  📌 Watch Price Automation POC\033[0m\n")
	fmt.Fprintf(p.out, "\033[1;33m  🚀 Scraping Kleinanzeigen & Analyzing Prices\033[0m\n")
	fmt.Fprintf(p.out, "\033[1;35m%s\033[0m\n\n", sep)
}

// Render prints one listing card.
func (p *Presenter) Render(d *models.Deal) {
	l := d.Listing

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("%s", truncate(l.Title, 60))
	t.AppendRows([]table.Row{
		{"🖼  Image", l.ImageURL},
		{"Title", l.Title},
		{"💰 Price on Kleinanzeigen", fmt.Sprintf("€%d", l.Price)},
		{"🕰  Brand", d.Attributes.Brand},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Verdict", verdictBanner(d.Verdict)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"🔗 Link", l.DetailURL})
	t.Render()

	fmt.Fprintln(p.out)
}

// Summary closes the report with a count of listings and good deals.
func (p *Presenter) Summary(deals []*models.Deal) {
	thin := strings.Repeat("─", 64)
	fmt.Fprintf(p.out, "  %s\n", thin)
	if len(deals) == 0 {
		fmt.Fprintf(p.out, "  No listings found\n\n")
		return
	}

	good := 0
	for _, d := range deals {
		if d.Verdict.Buy {
			good++
		}
	}
	fmt.Fprintf(p.out, "  Listings analysed : \033[1m%d\033[0m\n", len(deals))
	fmt.Fprintf(p.out, "  Good deals        : \033[1;32m%d\033[0m\n\n", good)
}

func verdictBanner(v models.Verdict) string {
	if v.Buy {
		return text.Colors{text.Bold, text.BgGreen, text.FgBlack}.Sprint(" ✅ " + v.String() + " ")
	}
	return text.Colors{text.Bold, text.BgYellow, text.FgBlack}.Sprint(" ❌ " + v.String() + " ")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
