package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unknown is the placeholder for any attribute a service could not supply.
const Unknown = "Unknown"

// FallbackMarketPrice is the VK price used when the pricing lookup fails.
var FallbackMarketPrice = decimal.NewFromInt(12000)

// Listing is one classifieds ad as scraped from the results page.
type Listing struct {
	Title     string
	ImageURL  string
	Price     int
	DetailURL string
}

// WatchAttributes are the watch properties recognised from a listing photo.
type WatchAttributes struct {
	Brand           string
	Model           string
	DialColor       string
	CaseMaterial    string
	ReferenceNumber string
}

// UnknownAttributes returns a record with every field set to Unknown.
func UnknownAttributes() WatchAttributes {
	return WatchAttributes{
		Brand:           Unknown,
		Model:           Unknown,
		DialColor:       Unknown,
		CaseMaterial:    Unknown,
		ReferenceNumber: Unknown,
	}
}

// Verdict is the buy/no-buy decision for a single listing.
type Verdict struct {
	Buy     bool
	Price   int
	Ceiling decimal.Decimal
}

func (v Verdict) String() string {
	if v.Buy {
		return fmt.Sprintf("Good Deal! Consider buying for €%d", v.Price)
	}
	return fmt.Sprintf("Too Expensive. Should be €%s or lower.", v.Ceiling.StringFixed(2))
}

// Deal is a listing with everything derived for it during enrichment.
type Deal struct {
	Listing         *Listing
	Attributes      WatchAttributes
	ReferenceNumber string
	MarketPrice     decimal.Decimal // VK
	TargetPrice     decimal.Decimal // EK
	Verdict         Verdict
}
