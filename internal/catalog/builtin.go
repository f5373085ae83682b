package catalog

import "github.com/shopspring/decimal"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// builtin is the shipped ten-stock catalog, used before the first refresh
// and as a fallback when the price service is unreachable.
var builtin = []Instrument{
	{
		Symbol: "NFLX", Name: "Netflix Inc.",
		Price: d("487.23"), Change: d("12.45"), ChangePercent: d("2.62"),
		Logo:        "🎬",
		Description: "Leading streaming entertainment service with over 260M subscribers worldwide.",
	},
	{
		Symbol: "GOOGL", Name: "Alphabet Inc.",
		Price: d("174.82"), Change: d("-2.18"), ChangePercent: d("-1.23"),
		Logo:        "🔍",
		Description: "Technology conglomerate specializing in Internet-related services and products.",
	},
	{
		Symbol: "TSLA", Name: "Tesla Inc.",
		Price: d("248.95"), Change: d("8.73"), ChangePercent: d("3.63"),
		Logo:        "⚡",
		Description: "Electric vehicle and clean energy company revolutionizing transportation.",
	},
	{
		Symbol: "AMZN", Name: "Amazon.com Inc.",
		Price: d("186.71"), Change: d("5.12"), ChangePercent: d("2.82"),
		Logo:        "📦",
		Description: "E-commerce and cloud computing giant serving millions globally.",
	},
	{
		Symbol: "META", Name: "Meta Platforms Inc.",
		Price: d("528.14"), Change: d("-7.25"), ChangePercent: d("-1.35"),
		Logo:        "👥",
		Description: "Social technology company connecting billions through virtual reality and social platforms.",
	},
	{
		Symbol: "CRM", Name: "Salesforce Inc.",
		Price: d("312.45"), Change: d("4.67"), ChangePercent: d("1.52"),
		Logo:        "☁️",
		Description: "Leading customer relationship management platform for businesses.",
	},
	{
		Symbol: "MNST", Name: "Monster Beverage Corp.",
		Price: d("52.89"), Change: d("1.23"), ChangePercent: d("2.38"),
		Logo:        "🥤",
		Description: "Energy drink company with popular Monster Energy brand worldwide.",
	},
	{
		Symbol: "CMG", Name: "Chipotle Mexican Grill",
		Price: d("3247.12"), Change: d("45.78"), ChangePercent: d("1.43"),
		Logo:        "🌯",
		Description: "Fast-casual restaurant chain serving responsibly sourced Mexican food.",
	},
	{
		Symbol: "BIIB", Name: "Biogen Inc.",
		Price: d("155.67"), Change: d("-3.21"), ChangePercent: d("-2.02"),
		Logo:        "🧬",
		Description: "Biotechnology company focused on neurological and neurodegenerative diseases.",
	},
	{
		Symbol: "BRK.B", Name: "Berkshire Hathaway Inc.",
		Price: d("459.23"), Change: d("2.45"), ChangePercent: d("0.54"),
		Logo:        "💎",
		Description: "Warren Buffett's conglomerate with diverse portfolio of businesses and investments.",
	},
}

// Builtin returns a catalog seeded with the shipped instrument set.
func Builtin() *Catalog {
	return New(builtin)
}
