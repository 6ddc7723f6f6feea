package models

import "time"

// CompanyProfile is best-effort company metadata used for dynamic
// relevance keyword derivation. Every field may be empty; an all-empty
// profile is the failure sentinel, not an error.
type CompanyProfile struct {
	Name     string `json:"name"`
	CEO      string `json:"ceo"`
	Industry string `json:"industry"`
	Sector   string `json:"sector"`
	Summary  string `json:"summary"`
}

// IsZero reports whether the profile carries no usable metadata.
func (p CompanyProfile) IsZero() bool {
	return p.Name == "" && p.CEO == "" && p.Industry == "" && p.Sector == "" && p.Summary == ""
}

// PriceBar is a single day's OHLCV bar.
type PriceBar struct {
	Date     time.Time `json:"-"`
	DateStr  string    `json:"date"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	AdjClose float64   `json:"adj_close"`
	Volume   int64     `json:"volume"`
}

// Quote is a live (or delayed) quote snapshot.
type Quote struct {
	Ticker    string  `json:"ticker"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	PrevClose float64 `json:"prev_close"`
	Time      int64   `json:"time"` // epoch seconds
}

// History is a period of daily bars for one ticker.
type History struct {
	Ticker string     `json:"ticker"`
	Period string     `json:"period"`
	Bars   []PriceBar `json:"bars"`
}
