// Package attributedbody recovers plain text from the rich-body blobs the
// Messages store keeps in its attributedBody column.
//
// Decoding has two stages. The blob is first parsed as a property list;
// a top-level NSString or NS.string value is returned directly, otherwise
// every string longer than two characters is collected depth-first. When
// that yields nothing, printable ASCII runs are scraped from the raw bytes.
package attributedbody

import (
	"slices"
	"strings"
	"unicode/utf8"

	"howett.net/plist"

	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.BodyDecoder = (*Decoder)(nil)

// stringKeys are checked in order on a top-level dictionary.
var stringKeys = []string{"NSString", "NS.string"}

const (
	minStructuredRunes = 3
	minRawRun          = 3
	minRawResult       = 6
)

// Decoder extracts best-effort text from rich-body blobs.
// It is stateless and safe for concurrent use.
type Decoder struct{}

// New creates a new rich-body decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode returns the recovered text, or false when nothing usable was found.
func (d *Decoder) Decode(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	if text, ok := DecodeStructured(body); ok {
		return text, true
	}
	return DecodeRaw(body)
}

// DecodeStructured parses body as a property list. A parse failure or
// panic is reported as false.
func DecodeStructured(body []byte) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	var root any
	if _, err := plist.Unmarshal(body, &root); err != nil {
		return "", false
	}

	if dict, isDict := root.(map[string]any); isDict {
		for _, key := range stringKeys {
			if s, isString := dict[key].(string); isString && s != "" {
				return s, true
			}
		}
	}

	parts := collectStrings(root, nil)
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// collectStrings walks v depth-first. Dictionary values are visited in
// sorted key order so output is deterministic.
func collectStrings(v any, out []string) []string {
	switch node := v.(type) {
	case string:
		if utf8.RuneCountInString(node) >= minStructuredRunes {
			out = append(out, node)
		}
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			out = collectStrings(node[k], out)
		}
	case []any:
		for _, item := range node {
			out = collectStrings(item, out)
		}
	}
	return out
}

// DecodeRaw joins runs of at least three printable ASCII bytes with
// single spaces. Results of five characters or fewer are discarded.
func DecodeRaw(body []byte) (string, bool) {
	var tokens []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end-start >= minRawRun {
			tokens = append(tokens, string(body[start:end]))
		}
		start = -1
	}

	for i, b := range body {
		if b >= 32 && b <= 126 {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(body))

	joined := strings.Join(tokens, " ")
	if len(joined) < minRawResult {
		return "", false
	}
	return joined, true
}
