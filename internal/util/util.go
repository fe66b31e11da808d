package util

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	nonSlugChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	dashRuns       = regexp.MustCompile(`-+`)
)

// ErrInvalidChapterSlug is returned when a chapter slug carries no chapter number.
var ErrInvalidChapterSlug = errors.New("invalid chapter slug")

// NovelSlug derives a URL slug from a novel title (e.g., "The Iron Path!" -> "the-iron-path").
func NovelSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonSlugChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = dashRuns.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}

// ChapterSlug builds "c<number>" or "c<number>-<title-slug>".
func ChapterSlug(number int, title string) string {
	base := "c" + strconv.Itoa(number)
	titleSlug := NovelSlug(title)
	if titleSlug == "" {
		return base
	}

	return base + "-" + titleSlug
}

// ParseChapterSlug extracts the chapter number from "c12", "c12-some-title" or "12".
func ParseChapterSlug(slug string) (int, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(slug)), "c")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errors.Wrapf(ErrInvalidChapterSlug, "slug %q", slug)
	}

	number, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidChapterSlug, "slug %q: %v", slug, err)
	}

	return number, nil
}

// FormatDate renders a date the way chapter listings display it (e.g., "March 1, 2026").
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// RandomSuffix returns n random lowercase alphanumeric characters.
func RandomSuffix(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)

	limit := big.NewInt(int64(len(suffixAlphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		b.WriteByte(suffixAlphabet[idx.Int64()])
	}

	return b.String(), nil
}
