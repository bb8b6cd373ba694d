package content

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
)

const (
	pageIDSlugMaxLen  = 20
	pageIDRandomLen   = 6
	pageIDFallback    = "page"
	pageIDRandomChars = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// IDGenerator produces page identifiers of the form
// <slug>-<random>-<timestamp>, where the slug derives from the headline. ID
// generation happens before validation, so an empty headline is tolerated
// here (it falls back to "page") even though it later fails validation.
type IDGenerator struct {
	now    func() time.Time
	random func() string
}

// IDOption configures an IDGenerator.
type IDOption func(*IDGenerator)

// WithIDClock overrides the clock used for the timestamp component.
func WithIDClock(clock func() time.Time) IDOption {
	return func(g *IDGenerator) {
		if clock != nil {
			g.now = clock
		}
	}
}

// WithIDRandom overrides the random-string source. Useful for deterministic tests.
func WithIDRandom(random func() string) IDOption {
	return func(g *IDGenerator) {
		if random != nil {
			g.random = random
		}
	}
}

// NewIDGenerator constructs a generator with the default clock and randomness.
func NewIDGenerator(opts ...IDOption) *IDGenerator {
	g := &IDGenerator{
		now:    time.Now,
		random: randomString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PageID derives a unique page identifier from the headline.
func (g *IDGenerator) PageID(headline string) string {
	return fmt.Sprintf("%s-%s-%d", HeadlineSlug(headline), g.random(), g.now().UnixMilli())
}

// NewPageID derives a page identifier using the default generator.
func NewPageID(headline string) string {
	return NewIDGenerator().PageID(headline)
}

// HeadlineSlug normalizes a headline into the slug component of a page ID:
// lowercased, non-alphanumeric runs collapsed to single hyphens, truncated to
// 20 characters, defaulting to "page" when nothing survives normalization.
func HeadlineSlug(headline string) string {
	normalized, err := slug.Normalize(headline)
	if err != nil || normalized == "" {
		normalized = fallbackSlug(headline)
	}
	if len(normalized) > pageIDSlugMaxLen {
		normalized = normalized[:pageIDSlugMaxLen]
	}
	normalized = strings.Trim(normalized, "-")
	if normalized == "" {
		return pageIDFallback
	}
	return normalized
}

// fallbackSlug mirrors the normalization rules without go-slug for inputs the
// normalizer rejects outright.
func fallbackSlug(value string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(value) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func randomString() string {
	b := make([]byte, pageIDRandomLen)
	for i := range b {
		b[i] = pageIDRandomChars[rand.IntN(len(pageIDRandomChars))]
	}
	return string(b)
}
