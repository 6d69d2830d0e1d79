package lexicon

// #region default-entities

var defaultEntities = []Entity{
	{Name: "Apple", Variants: []string{
		"apple", "aapl", "iphone", "ipad", "macbook", "tim cook", "app store", "vision pro",
	}},
	{Name: "Tesla", Variants: []string{
		"tesla", "tsla", "elon musk", "cybertruck", "model 3", "model y", "gigafactory",
	}},
	{Name: "NVIDIA", Variants: []string{
		"nvidia", "nvda", "jensen huang", "geforce", "cuda", "ai accelerator", "gpu",
	}},
	{Name: "Microsoft", Variants: []string{
		"microsoft", "msft", "azure", "satya nadella", "copilot", "windows", "xbox",
	}},
	{Name: "Federal Reserve", Variants: []string{
		"fed", "federal reserve", "fomc", "jerome powell", "interest rate", "rate cut", "rate hike",
	}},
	{Name: "Bitcoin", Variants: []string{
		"bitcoin", "btc", "crypto", "cryptocurrency",
	}},
	{Name: "Exxon Mobil", Variants: []string{
		"exxon", "xom", "exxon mobil",
	}},
	{Name: "Chevron", Variants: []string{
		"chevron", "cvx",
	}},
	{Name: "Ford", Variants: []string{
		"ford", "f-150", "mustang",
	}},
	{Name: "General Motors", Variants: []string{
		"gm", "general motors", "chevrolet",
	}},
	{Name: "Technology Sector", Variants: []string{
		"technology", "tech", "semiconductor", "semiconductors", "software", "cloud",
	}},
	{Name: "Energy Sector", Variants: []string{
		"energy", "oil", "crude", "opec", "natural gas", "refining",
	}},
	{Name: "Financials Sector", Variants: []string{
		"financials", "banks", "banking", "regional banks", "credit", "lending",
	}},
	{Name: "Automotive Sector", Variants: []string{
		"automotive", "automaker", "automakers", "ev", "electric vehicle", "electric vehicles",
	}},
	{Name: "Inflation", Variants: []string{
		"inflation", "cpi", "consumer prices", "price pressures",
	}},
	{Name: "Earnings", Variants: []string{
		"earnings", "quarterly results", "revenue", "guidance", "profit", "margins",
	}},
}

// #endregion default-entities

// #region default-off-topic

// defaultOffTopicTerms lists topics the curated corpus is known not to
// cover. Consulted only when no known entity matched the query.
var defaultOffTopicTerms = []string{
	"fashion", "luxury", "celebrity", "gossip", "recipe", "cooking",
	"travel", "vacation", "sports", "football", "basketball",
	"movie", "movies", "music", "concert", "astrology", "horoscope",
	"dating", "wedding", "fitness", "workout", "gardening", "weather",
}

// #endregion default-off-topic

// #region default-synonyms

// defaultTickerSynonyms maps common query terms onto ticker symbols so the
// retriever also matches documents tagged by ticker alone.
var defaultTickerSynonyms = map[string]string{
	"apple":     "aapl",
	"tesla":     "tsla",
	"nvidia":    "nvda",
	"microsoft": "msft",
	"bitcoin":   "btc",
	"exxon":     "xom",
	"chevron":   "cvx",
}

// defaultTwoLetterAllow lists meaningful two-character terms that survive
// the minimum-length cut (sector abbreviations, quarter labels).
var defaultTwoLetterAllow = []string{
	"ai", "ev", "fx", "gm", "us", "uk", "eu", "q1", "q2", "q3", "q4",
}

// #endregion default-synonyms

// #region default

// Default returns the compiled-in lexicon.
func Default() *Lexicon {
	return New(defaultEntities, defaultOffTopicTerms, defaultTickerSynonyms, defaultTwoLetterAllow)
}

// #endregion default
