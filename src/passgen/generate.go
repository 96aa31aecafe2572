// Package passgen implements secure password generation: biased-but-
// negligible byte-to-character mapping for initial selection, an exactly
// uniform Fisher-Yates shuffle, and the assembly policy that combines
// per-category segments before shuffling.
package passgen

// Category configures one character class of a generation request. Count
// is remembered even while the category is disabled; a disabled category
// contributes nothing to the password regardless of its stored Count.
type Category struct {
	Enabled bool
	Count   int
}

// Request configures category-based generation. Segments are always
// assembled in letters, digits, symbols order; the shuffle removes that
// ordering from the final password.
type Request struct {
	Letters Category
	Digits  Category
	Symbols Category
}

// DefaultRequest mirrors the CLI and interactive-mode defaults.
func DefaultRequest() Request {
	return Request{
		Letters: Category{Enabled: true, Count: 8},
		Digits:  Category{Enabled: true, Count: 4},
		Symbols: Category{Enabled: true, Count: 4},
	}
}

// TotalLength is the sum of the enabled categories' counts.
func (r Request) TotalLength() int {
	total := 0
	for _, c := range []Category{r.Letters, r.Digits, r.Symbols} {
		if c.Enabled {
			total += c.Count
		}
	}
	return total
}

// Result carries a generated password plus the per-category breakdown the
// output side displays. Disabled categories report zero.
type Result struct {
	Password string
	Length   int
	Letters  int
	Digits   int
	Symbols  int
}

func (r Request) validate() error {
	if !r.Letters.Enabled && !r.Digits.Enabled && !r.Symbols.Enabled {
		return &ValidationError{Reason: NoCategoryEnabled}
	}

	for _, c := range []struct {
		name string
		cat  Category
	}{
		{"letter", r.Letters},
		{"digit", r.Digits},
		{"symbol", r.Symbols},
	} {
		if c.cat.Count < 0 || c.cat.Count >= MaxCategoryLength {
			return &ValidationError{Reason: OutOfRange, Category: c.name, Max: MaxCategoryLength}
		}
	}

	if r.TotalLength() < MinPasswordLength {
		return &ValidationError{Reason: TooShort, Required: MinPasswordLength}
	}
	return nil
}

// Generate produces one password from the request using src.
//
// The entropy for initial character selection is drawn in a single Fill of
// totalLength bytes, then sliced per category at fixed offsets (letters,
// digits, symbols; disabled categories consume no bytes). Each segment is
// mapped through its own pool, the segments are concatenated, and the full
// buffer is shuffled with fresh draws from the same source so the category
// boundaries leave no positional trace.
func Generate(src *Source, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}

	total := req.TotalLength()
	if total > MaxPasswordLength {
		return Result{}, ErrBufferTooLarge
	}

	random := make([]byte, total)
	if err := src.Fill(random); err != nil {
		return Result{}, err
	}

	password := make([]byte, 0, total)
	offset := 0
	for _, seg := range []struct {
		cat  Category
		pool string
	}{
		{req.Letters, Letters},
		{req.Digits, Digits},
		{req.Symbols, Symbols},
	} {
		if !seg.cat.Enabled || seg.cat.Count == 0 {
			continue
		}
		password = append(password, MapBytes(random[offset:offset+seg.cat.Count], seg.pool)...)
		offset += seg.cat.Count
	}

	if err := Shuffle(src, password); err != nil {
		return Result{}, err
	}

	res := Result{Password: string(password), Length: total}
	if req.Letters.Enabled {
		res.Letters = req.Letters.Count
	}
	if req.Digits.Enabled {
		res.Digits = req.Digits.Count
	}
	if req.Symbols.Enabled {
		res.Symbols = req.Symbols.Count
	}
	return res, nil
}

// GenerateSimple is the single-pool path: every position is drawn from the
// Full pool, or the Alphanumeric pool when symbols are excluded. With only
// one category there is no positional ordering to hide, so no shuffle runs.
func GenerateSimple(src *Source, length int, includeSymbols bool) (string, error) {
	if length < MinPasswordLength {
		return "", &ValidationError{Reason: TooShort, Required: MinPasswordLength}
	}
	if length > MaxPasswordLength {
		return "", ErrBufferTooLarge
	}

	pool := Alphanumeric
	if includeSymbols {
		pool = Full
	}

	random := make([]byte, length)
	if err := src.Fill(random); err != nil {
		return "", err
	}
	return string(MapBytes(random, pool)), nil
}

// Generator acquires a fresh Source per call and guarantees its release on
// every exit path. The zero value is not usable; use NewGenerator.
type Generator struct {
	open func() (*Source, error)
}

// NewGenerator returns a Generator backed by the platform CSPRNG.
func NewGenerator() *Generator {
	return &Generator{open: Acquire}
}

// NewGeneratorWithOpener returns a Generator that acquires sources from
// open, e.g. a hardware TRNG or a deterministic test stream.
func NewGeneratorWithOpener(open func() (*Source, error)) *Generator {
	return &Generator{open: open}
}

// Generate runs category-based generation with a freshly acquired source.
func (g *Generator) Generate(req Request) (Result, error) {
	src, err := g.open()
	if err != nil {
		return Result{}, err
	}
	defer src.Release()

	return Generate(src, req)
}

// Simple runs single-pool generation with a freshly acquired source.
func (g *Generator) Simple(length int, includeSymbols bool) (string, error) {
	src, err := g.open()
	if err != nil {
		return "", err
	}
	defer src.Release()

	return GenerateSimple(src, length, includeSymbols)
}
