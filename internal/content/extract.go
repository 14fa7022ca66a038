package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON document out of free text. The generation
// capability is asked for bare JSON but routinely wraps it in
// commentary or code fences. Repair passes, in order: prefer the
// contents of a fenced code block; otherwise slice from the first
// bracket to the matching last bracket; strip control characters; then
// parse. If nothing parses after all passes, the error is returned with
// no partial result.
func ExtractJSON(raw string) (json.RawMessage, error) {
	candidate := raw

	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	} else if sliced, ok := sliceBrackets(raw); ok {
		candidate = sliced
	}

	candidate = stripControlChars(strings.TrimSpace(candidate))

	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, fmt.Errorf("no parseable JSON in response: %w", err)
	}
	return json.RawMessage(candidate), nil
}

// sliceBrackets returns the substring from the first '[' or '{' to the
// last matching ']' or '}'. Whichever opener appears first wins.
func sliceBrackets(s string) (string, bool) {
	openArr := strings.IndexByte(s, '[')
	openObj := strings.IndexByte(s, '{')

	var open int
	var closer byte
	switch {
	case openArr == -1 && openObj == -1:
		return "", false
	case openObj == -1 || (openArr != -1 && openArr < openObj):
		open, closer = openArr, ']'
	default:
		open, closer = openObj, '}'
	}

	end := strings.LastIndexByte(s, closer)
	if end <= open {
		return "", false
	}
	return s[open : end+1], true
}

// stripControlChars removes control characters that break JSON parsing,
// keeping the whitespace JSON itself allows.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
