package ingest

import (
	"io"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizer rewrites source bytes before line scanning: drop any UTF-8 BOM
// (exporters routinely prepend one) and recompose to NFC so that field values
// compare bytewise regardless of how the producer encoded accents.
var normalizer = transform.Chain(
	runes.Remove(runes.Predicate(func(r rune) bool { return r == '\uFEFF' })),
	norm.NFC,
)

// normalizeReader wraps r with the streaming normalization chain. The
// transform never buffers the whole input.
func normalizeReader(r io.Reader) io.Reader {
	return transform.NewReader(r, normalizer)
}
