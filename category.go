package finstate

// Display attributes per spending category. Unknown categories fall back to
// a neutral default instead of failing: seed data and imports may carry
// categories this table has never heard of.

const (
	defaultCategoryColor = "#9E9E9E"
	defaultCategoryEmoji = "🧾"
)

var categoryColors = map[string]string{
	"groceries":     "#4CAF50",
	"dining":        "#FF7043",
	"transport":     "#42A5F5",
	"shopping":      "#AB47BC",
	"entertainment": "#EC407A",
	"utilities":     "#26A69A",
	"rent":          "#8D6E63",
	"health":        "#EF5350",
	"travel":        "#29B6F6",
	"salary":        "#66BB6A",
	"savings":       "#FFCA28",
	"adjustment":    "#78909C",
}

var categoryEmojis = map[string]string{
	"groceries":     "🛒",
	"dining":        "🍜",
	"transport":     "🚌",
	"shopping":      "🛍️",
	"entertainment": "🎬",
	"utilities":     "💡",
	"rent":          "🏠",
	"health":        "🩺",
	"travel":        "✈️",
	"salary":        "💼",
	"savings":       "🐖",
	"adjustment":    "⚖️",
}

// CategoryColor returns the display color for a category, or a neutral grey
// for categories that have no mapping.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return defaultCategoryColor
}

// CategoryEmoji returns the emoji for a category, or a receipt for
// categories that have no mapping.
func CategoryEmoji(category string) string {
	if emoji, ok := categoryEmojis[category]; ok {
		return emoji
	}
	return defaultCategoryEmoji
}
