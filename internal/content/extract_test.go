package content

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare array",
			input: `[{"type":"text","body":"hi"}]`,
			want:  `[{"type":"text","body":"hi"}]`,
		},
		{
			name:  "fenced block",
			input: "Here is the lesson:\n```json\n[1, 2, 3]\n```\nHope that helps!",
			want:  `[1, 2, 3]`,
		},
		{
			name:  "fence without language tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "commentary around brackets",
			input: `Sure! The content is: [{"type":"text","body":"x"}] — let me know if you need more.`,
			want:  `[{"type":"text","body":"x"}]`,
		},
		{
			name:  "object before array",
			input: `note {"a": "b"} trailing`,
			want:  `{"a": "b"}`,
		},
		{
			name:  "control characters stripped",
			input: "[\"a\x00b\"]",
			want:  `["ab"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if err != nil {
				t.Fatalf("ExtractJSON: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExtractJSON_NoParseableJSON(t *testing.T) {
	inputs := []string{
		"I could not produce the lesson, sorry.",
		"almost json: [unclosed",
		"",
	}
	for _, in := range inputs {
		if _, err := ExtractJSON(in); err == nil {
			t.Errorf("ExtractJSON(%q): expected error", in)
		}
	}
}

func TestNormalizeMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "inline heading gets newline",
			input: "intro text## Heading\nbody",
			want:  "intro text\n## Heading\nbody",
		},
		{
			name:  "blank runs collapse",
			input: "a\n\n\n\nb",
			want:  "a\nb",
		},
		{
			name:  "clean text untouched",
			input: "# Title\nbody",
			want:  "# Title\nbody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMarkdown(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSliceBrackets_PrefersEarlierOpener(t *testing.T) {
	got, ok := sliceBrackets(`x [1, {"a": 2}] y`)
	if !ok {
		t.Fatal("expected a slice")
	}
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]") {
		t.Errorf("got %q, want array slice", got)
	}
}
