package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// The model sometimes wraps JSON in markdown fences, sometimes returns a
// bulleted or numbered list instead of the requested schema. Decoding is
// therefore tiered: StripFences always, then DecodeStrict, then
// ExtractLines; whoever exhausts all tiers falls back to the local
// generator.

// StripFences removes leading/trailing markdown code-fence markers from a
// model response.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimPrefix(s, "JSON")
	}
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// DecodeStrict attempts tier-one decoding: fence stripping plus strict
// JSON unmarshalling into T.
func DecodeStrict[T any](raw string) (T, bool) {
	var t T
	if err := json.Unmarshal([]byte(StripFences(raw)), &t); err != nil {
		return t, false
	}
	return t, true
}

var linePrefix = regexp.MustCompile(`^\s*[-•*\d.)\]]+\s*`)

// ExtractLines is tier-two decoding: treat the cleaned text as one item
// per line, stripping bullet and numbering prefixes. Empty lines are
// dropped.
func ExtractLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(StripFences(raw), "\n") {
		line = strings.TrimSpace(linePrefix.ReplaceAllString(line, ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
