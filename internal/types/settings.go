package types

// QuoteStyle selects the character wrapped around each copied path.
type QuoteStyle string

const (
	// QuoteSingle wraps paths in single quotes. This is the default.
	QuoteSingle QuoteStyle = "single"
	// QuoteDouble wraps paths in double quotes.
	QuoteDouble QuoteStyle = "double"
)

// Char returns the quote character for the style. Unknown or stale
// values fall back to the single-quote default.
func (q QuoteStyle) Char() string {
	if q == QuoteDouble {
		return `"`
	}
	return "'"
}

// Valid reports whether q is one of the recognized styles.
func (q QuoteStyle) Valid() bool {
	return q == QuoteSingle || q == QuoteDouble
}

// Settings is the persisted configuration blob for the tool.
type Settings struct {
	ShowNotice bool       `json:"showNotice"`
	QuoteStyle QuoteStyle `json:"quoteStyle"`
}

// DefaultSettings returns the settings used when nothing has been
// persisted yet: notices on, single quotes.
func DefaultSettings() Settings {
	return Settings{
		ShowNotice: true,
		QuoteStyle: QuoteSingle,
	}
}
