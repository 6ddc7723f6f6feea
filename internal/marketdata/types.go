package marketdata

import "github.com/ternarybob/tickerpulse/internal/models"

// Wire types for the upstream finance API. Only the fields the client
// reads are declared; everything else in the payloads is ignored.

type searchResponse struct {
	News []models.RawNewsItem `json:"news"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *upstreamError       `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	AssetProfile *assetProfile `json:"assetProfile"`
	Price        *priceBlock   `json:"price"`
}

type assetProfile struct {
	LongBusinessSummary string           `json:"longBusinessSummary"`
	Industry            string           `json:"industry"`
	Sector              string           `json:"sector"`
	CompanyOfficers     []companyOfficer `json:"companyOfficers"`
}

type companyOfficer struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type priceBlock struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

type chartResponse struct {
	Chart struct {
		Result []chartResult  `json:"result"`
		Error  *upstreamError `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta       chartMeta       `json:"meta"`
	Timestamp  []int64         `json:"timestamp"`
	Indicators chartIndicators `json:"indicators"`
}

type chartMeta struct {
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
	RegularMarketTime  int64   `json:"regularMarketTime"`
}

type chartIndicators struct {
	Quote    []quoteIndicators `json:"quote"`
	Adjclose []adjCloseBlock   `json:"adjclose"`
}

// Null elements in the upstream arrays decode to zero values; bars with
// a zero close are dropped during conversion.
type quoteIndicators struct {
	Open   []float64 `json:"open"`
	High   []float64 `json:"high"`
	Low    []float64 `json:"low"`
	Close  []float64 `json:"close"`
	Volume []int64   `json:"volume"`
}

type adjCloseBlock struct {
	Adjclose []float64 `json:"adjclose"`
}

type upstreamError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
