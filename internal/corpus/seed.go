package corpus

import "time"

// #region seed

// Seed returns the built-in demo corpus used when no snapshot or corpus
// file is configured.
func Seed() []Document {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	return []Document{
		{
			ID:          "doc-aapl-ir-q4",
			Headline:    "Apple Reports Fourth Quarter Results",
			Body:        "Apple today announced financial results for its fiscal fourth quarter. Revenue reached a September-quarter record driven by iPhone and Services growth. The board declared a cash dividend and the company provided guidance for the holiday quarter.",
			Source:      "Apple Investor Relations",
			SourceType:  SourceOfficial,
			Entities:    []string{"AAPL"},
			Sector:      "technology",
			PublishedAt: day(0),
		},
		{
			ID:          "doc-reuters-aapl-services",
			Headline:    "Apple services revenue climbs as hardware demand steadies",
			Body:        "Apple posted stronger services revenue in its latest quarter, offsetting slower iPhone unit growth, Reuters reported. Analysts said the shift toward subscriptions supports margins heading into the holiday season.",
			Source:      "Reuters",
			SourceType:  SourceMajorPublication,
			Entities:    []string{"AAPL"},
			Sector:      "technology",
			PublishedAt: day(1),
		},
		{
			ID:          "doc-bbg-fed-rates",
			Headline:    "Fed officials signal patience on rate cuts as inflation cools",
			Body:        "Federal Reserve policymakers indicated they are in no hurry to lower interest rates, Bloomberg reported, citing steady progress on inflation and a resilient labor market. Bond markets pared expectations for near-term easing.",
			Source:      "Bloomberg",
			SourceType:  SourceMajorPublication,
			Entities:    []string{"FED"},
			Sector:      "macro",
			PublishedAt: day(1),
		},
		{
			ID:          "doc-analyst-tsla-margins",
			Headline:    "Tesla margin outlook hinges on energy storage ramp",
			Body:        "A sell-side note argues Tesla automotive margins have bottomed and that the energy storage segment will drive the next leg of profitability. The analyst maintains a hold rating with a revised price target.",
			Source:      "Meridian Equity Research",
			SourceType:  SourceAnalyst,
			Entities:    []string{"TSLA"},
			Sector:      "automotive",
			PublishedAt: day(2),
		},
		{
			ID:          "doc-social-tsla-rumor",
			Headline:    "Heard Tesla is about to announce something huge next week",
			Body:        "Posting this from the factory parking lot. A friend of a friend says Tesla is planning a surprise product announcement next week. No source, just vibes. Do your own research.",
			Source:      "StockTwits",
			SourceType:  SourceSocialMedia,
			Entities:    []string{"TSLA"},
			Sector:      "automotive",
			PublishedAt: day(2),
		},
		{
			ID:          "doc-nvda-ir-datacenter",
			Headline:    "NVIDIA Announces Record Data Center Revenue",
			Body:        "NVIDIA reported record data center revenue driven by demand for AI accelerators. The company raised its outlook for the coming quarter and announced expanded supply agreements with major cloud providers.",
			Source:      "NVIDIA Newsroom",
			SourceType:  SourceOfficial,
			Entities:    []string{"NVDA"},
			Sector:      "technology",
			PublishedAt: day(3),
		},
		{
			ID:          "doc-reuters-nvda-supply",
			Headline:    "NVIDIA data center revenue hits record on AI accelerator demand",
			Body:        "NVIDIA reported record data center revenue on surging demand for AI accelerators, Reuters reported. The chipmaker raised its outlook for the coming quarter and expanded supply agreements with major cloud providers.",
			Source:      "Reuters",
			SourceType:  SourceMajorPublication,
			Entities:    []string{"NVDA"},
			Sector:      "technology",
			PublishedAt: day(3),
		},
		{
			ID:          "doc-analyst-energy-oil",
			Headline:    "Crude outlook: OPEC discipline keeps oil prices range-bound",
			Body:        "An energy desk note expects oil prices to stay range-bound through year end as OPEC production discipline offsets soft demand from China. Refining margins remain the swing factor for integrated majors.",
			Source:      "Halcyon Commodities Research",
			SourceType:  SourceAnalyst,
			Entities:    []string{"XOM", "CVX"},
			Sector:      "energy",
			PublishedAt: day(4),
		},
		{
			ID:          "doc-msft-ir-cloud",
			Headline:    "Microsoft Cloud Strength Drives Quarterly Results",
			Body:        "Microsoft announced quarterly results with Azure and cloud services revenue growing ahead of expectations. The company highlighted enterprise AI adoption and raised its capital expenditure plans for data center capacity.",
			Source:      "Microsoft Investor Relations",
			SourceType:  SourceOfficial,
			Entities:    []string{"MSFT"},
			Sector:      "technology",
			PublishedAt: day(4),
		},
		{
			ID:          "doc-social-crypto-moon",
			Headline:    "Bitcoin to the moon again, banks are done",
			Body:        "Everyone I follow says bitcoin replaces the banking system by next year. Loading up on leverage. Not financial advice but also definitely financial advice.",
			Source:      "CryptoForum",
			SourceType:  SourceSocialMedia,
			Entities:    []string{"BTC"},
			Sector:      "crypto",
			PublishedAt: day(5),
		},
		{
			ID:          "doc-wsj-banks-credit",
			Headline:    "Regional banks tighten credit as commercial real estate stress builds",
			Body:        "Regional lenders are tightening credit standards amid growing stress in commercial real estate portfolios, The Wall Street Journal reported. Loan loss provisions rose across midsize banks for the third straight quarter.",
			Source:      "The Wall Street Journal",
			SourceType:  SourceMajorPublication,
			Entities:    []string{"KRE"},
			Sector:      "financials",
			PublishedAt: day(5),
		},
		{
			ID:          "doc-blog-ev-subsidies",
			Headline:    "What changing EV subsidies mean for automakers",
			Body:        "A policy shift on electric vehicle subsidies could reshape demand for EV makers and legacy automakers alike. The post walks through scenarios for Tesla, Ford, and GM under reduced incentive regimes.",
			Source:      "The Margin Call Blog",
			SourceType:  SourceUnknown,
			Entities:    []string{"TSLA", "F", "GM"},
			Sector:      "automotive",
			PublishedAt: day(6),
		},
	}
}

// #endregion seed
