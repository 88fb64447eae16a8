// Package respname derives deterministic filenames for query response
// artifacts. A response filename combines an identity token with the
// generation timestamp: response_<token>_<YYYYMMDD>_<HHMM>.json.
package respname

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
)

// identCleaner collapses runs of characters outside [A-Za-z0-9_] into "_".
var identCleaner = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Token returns a stable 16-hex-digit identity token for s. Equal inputs
// always produce equal tokens, so the same query file yields the same
// filename stem across runs.
func Token(s string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(s))
}

// Sanitize makes ident filesystem-safe: runs of non-[A-Za-z0-9_] characters
// become single underscores, and leading/trailing underscores are trimmed.
// When nothing survives, it falls back to hashing the original string.
func Sanitize(ident string) string {
	clean := strings.Trim(identCleaner.ReplaceAllString(ident, "_"), "_")
	if clean == "" {
		return Token(ident)
	}
	return clean
}

// IdentToken chooses the identity token for a run: an explicit operator
// override is used verbatim (sanitized); otherwise the token is hashed from
// the query file's base name.
func IdentToken(explicit, queryPath string) string {
	if explicit != "" {
		return Sanitize(explicit)
	}
	return Token(filepath.Base(queryPath))
}

// Build renders the response filename for the given token at time now.
func Build(token string, now time.Time) string {
	return fmt.Sprintf("response_%s_%s.json", token, now.Format("20060102_1504"))
}
