package sentiment

// Curated term tables. These lists are configuration data, calibrated
// against historical composite outputs: editing them changes scores for
// identical inputs. Known tradeoff: terms like "sold" also match neutral
// phrasings ("total units sold"); that imprecision is part of the
// calibrated behavior and is kept as-is.

// staticTickerKeywords maps well-known tickers to high-precision
// relevance keywords. Checked before the dynamic profile-derived set to
// skip a metadata fetch for the common cases.
var staticTickerKeywords = map[string][]string{
	"aapl":    {"apple", "iphone", "ipad", "mac", "ios", "app store"},
	"msft":    {"microsoft", "azure", "office", "windows", "xbox"},
	"nvda":    {"nvidia", "gpu", "ai", "cuda", "geforce"},
	"googl":   {"google", "alphabet", "youtube", "android", "chrome"},
	"amzn":    {"amazon", "aws", "prime", "alexa"},
	"meta":    {"facebook", "instagram", "whatsapp", "metaverse", "mark zuckerberg", "zuckerberg"},
	"tsla":    {"tesla", "elon musk", "model s", "model 3", "model x", "model y"},
	"rblx":    {"roblox", "roblox corporation"},
	"netflix": {"netflix", "streaming"},
	"uber":    {"uber", "rideshare"},
	"spotify": {"spotify", "music streaming"},
	"vsco":    {"vsco", "vsco app", "photo editing", "photo sharing", "visual supply company"},
}

// negativeFinancialTerms shift a headline's polarity bearish when they
// outnumber positive matches.
var negativeFinancialTerms = []string{
	"sold", "selling", "ditch", "dump", "crash", "plunge", "tank", "collapse",
	"decline", "fall", "drop", "bearish", "downgrade", "cut", "reduce",
	"miss", "missed", "disappoint", "disappointing", "weak", "struggle",
	"concern", "worried", "risk", "risky", "volatile", "uncertainty",
	"one way to go", "follow suit", "insider selling", "executive selling",
}

// positiveFinancialTerms shift a headline's polarity bullish when they
// outnumber negative matches.
var positiveFinancialTerms = []string{
	"buy", "buying", "bullish", "upgrade", "raise", "increase", "boost",
	"beat", "exceed", "strong", "growth", "gains", "rally", "surge",
	"outperform", "outperforming", "breakthrough", "milestone", "record",
	"insider buying", "executive buying", "confidence", "optimistic",
}

// businessVocabulary is scanned against a company's business summary
// when deriving dynamic relevance keywords.
var businessVocabulary = []string{
	"platform", "service", "software", "technology", "app", "application",
	"retail", "ecommerce", "streaming", "social", "media", "gaming",
	"cloud", "ai", "artificial intelligence", "automotive", "energy",
	"healthcare", "finance", "banking", "insurance", "real estate",
}

// corporateSuffixes are dropped when splitting a company name into
// keyword words.
var corporateSuffixes = map[string]bool{
	"inc":         true,
	"corp":        true,
	"ltd":         true,
	"llc":         true,
	"company":     true,
	"corporation": true,
}
