package slug

import (
	"crypto/rand"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	customReplace map[string]string
	suffixLength  int
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength sets the maximum length of the generated slug in runes.
// Longer slugs are cut and any trailing separator is dropped.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether words are lower-cased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// CustomReplace sets string replacements applied before splitting into words.
// For example: {"&": "and", "@": "at"}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length.
// Example: "hello-world-x7g3k2" (with length=6)
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

var validRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Valid reports whether s is a canonical slug: lowercase ASCII letters and
// digits in groups joined by single hyphens, with no leading or trailing hyphen.
func Valid(s string) bool {
	return validRegex.MatchString(s)
}

// Make converts s to kebab-case.
//
// Diacritics are stripped, the text is split into words on punctuation,
// whitespace, lower-to-upper case changes ("fooBar"), acronym ends
// ("XMLHttp") and letter/digit transitions ("v2"), apostrophes are dropped,
// and the words are joined with the separator.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	parts := Words(s)
	if cfg.lowercase {
		for i, w := range parts {
			parts[i] = strings.ToLower(w)
		}
	}
	result := strings.Join(parts, cfg.separator)

	if cfg.maxLength > 0 {
		result = truncate(result, cfg.maxLength, cfg.separator)
	}

	if cfg.suffixLength > 0 {
		result = appendSuffix(result, cfg)
	}

	return result
}

// Words splits s into the words Make joins, after stripping diacritics.
func Words(s string) []string {
	rs := []rune(deburr(s))

	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	for i, r := range rs {
		if r == '\'' || r == '’' {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			var next rune
			if i+1 < len(rs) {
				next = rs[i+1]
			}
			if isBoundary(cur[len(cur)-1], r, next) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}

func isBoundary(prev, r, next rune) bool {
	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(r):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r) && unicode.IsLower(next):
		return true
	}
	return false
}

// ligatures covers letters that carry no combining mark and so survive NFD.
var ligatures = map[rune]string{
	'æ': "ae", 'Æ': "Ae",
	'œ': "oe", 'Œ': "Oe",
	'ø': "o", 'Ø': "O",
	'ß': "ss",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "Th",
	'ı': "i",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func deburr(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}

	if !strings.ContainsFunc(out, func(r rune) bool { _, ok := ligatures[r]; return ok }) {
		return out
	}

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if repl, ok := ligatures[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func truncate(s string, max int, sep string) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	out := string(rs[:max])
	if sep != "" {
		for strings.HasSuffix(out, sep) {
			out = strings.TrimSuffix(out, sep)
		}
	}
	return out
}

func appendSuffix(result string, cfg *config) string {
	suffixLen := cfg.suffixLength
	if cfg.maxLength > 0 && suffixLen > cfg.maxLength {
		suffixLen = cfg.maxLength
	}
	suffix := generateSuffix(suffixLen, cfg.lowercase)

	if cfg.maxLength > 0 {
		room := cfg.maxLength - len([]rune(cfg.separator)) - suffixLen
		if room <= 0 {
			return suffix
		}
		result = truncate(result, room, cfg.separator)
	}

	if result == "" {
		return suffix
	}
	return result + cfg.separator + suffix
}

// generateSuffix creates a random alphanumeric suffix of the specified length.
func generateSuffix(length int, lowercase bool) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const charsUpper = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := chars
	if !lowercase {
		charset = charsUpper
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		for i := range b {
			b[i] = charset[i%len(charset)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}

	return string(b)
}
