package passgen

// Character pools are fixed at compile time and shared read-only by every
// generation call. The symbol pool deliberately avoids quotes and backticks,
// which tend to break copy-paste into shells and config files.
const (
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{}<?>~"

	// Alphanumeric and Full back the simple (single-pool) generation path.
	Alphanumeric = Letters + Digits
	Full         = Letters + Digits + Symbols
)

// Password length constraints.
const (
	MinPasswordLength = 4
	MaxPasswordLength = 1024
	MaxCategoryLength = 1024

	// DefaultBatchLength is used when batch mode is invoked without a
	// usable length argument.
	DefaultBatchLength = 16
)

// BuildCharset composes a pool from the selected categories, in the fixed
// letters/digits/symbols order.
func BuildCharset(letters, digits, symbols bool) string {
	var s string
	if letters {
		s += Letters
	}
	if digits {
		s += Digits
	}
	if symbols {
		s += Symbols
	}
	return s
}
