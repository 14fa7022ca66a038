package content

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeSections_LegacyString(t *testing.T) {
	sections, err := DecodeSections(json.RawMessage(`"Plain old lesson text.\n\n\nWith extra blank lines."`))
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Kind != KindText {
		t.Errorf("Kind = %s, want text", sections[0].Kind)
	}
	if sections[0].Body != "Plain old lesson text.\nWith extra blank lines." {
		t.Errorf("Body = %q, want normalized text", sections[0].Body)
	}
}

func TestDecodeSections_StructuredArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"type": "text", "title": "Intro", "body": "Variables hold values."},
		{"type": "quiz", "title": "Check", "questions": [
			{"prompt": "Pick one", "options": ["a", "b"], "correct_answer": "a"}
		]}
	]`)
	sections, err := DecodeSections(raw)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[1].Kind != KindQuiz || len(sections[1].Questions) != 1 {
		t.Errorf("quiz section not decoded: %+v", sections[1])
	}
	if sections[1].Questions[0].CorrectAnswer != "a" {
		t.Errorf("CorrectAnswer = %q, want a", sections[1].Questions[0].CorrectAnswer)
	}
}

func TestDecodeSections_AnswerTrimMatchesOption(t *testing.T) {
	raw := json.RawMessage(`[
		{"type": "quiz", "questions": [
			{"prompt": "Capital of France?", "options": ["Paris", "Lyon"], "correct_answer": "Paris "}
		]}
	]`)
	sections, err := DecodeSections(raw)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}
	if got := sections[0].Questions[0].CorrectAnswer; got != "Paris" {
		t.Errorf("CorrectAnswer = %q, want the matched option %q", got, "Paris")
	}
}

func TestDecodeSections_AnswerValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "object answer",
			raw:  `[{"type":"quiz","questions":[{"prompt":"q","options":["a","b"],"correct_answer":{"value":"a"}}]}]`,
		},
		{
			name: "answer matches no option",
			raw:  `[{"type":"quiz","questions":[{"prompt":"q","options":["Paris","Lyon"],"correct_answer":"paris"}]}]`,
		},
		{
			name: "answer matches two options",
			raw:  `[{"type":"quiz","questions":[{"prompt":"q","options":["a","a "],"correct_answer":"a"}]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSections(json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var qErr *QuestionError
			if !errors.As(err, &qErr) {
				t.Fatalf("error type = %T, want *QuestionError", err)
			}
		})
	}
}

func TestDecodeSections_UnknownShape(t *testing.T) {
	for _, raw := range []string{`42`, `{"not": "an array"}`, `[]`, `[{"type":"video"}]`} {
		if _, err := DecodeSections(json.RawMessage(raw)); err == nil {
			t.Errorf("DecodeSections(%s): expected error", raw)
		}
	}
}

func TestEncodeDecodeSections_RoundTrip(t *testing.T) {
	original := []Section{
		{Kind: KindText, Title: "Intro", Body: "Body text."},
		{Kind: KindQuiz, Title: "Check", Questions: []Question{
			{Prompt: "q", Options: []string{"a", "b"}, CorrectAnswer: "b", Explanation: "because"},
		}},
	}
	encoded, err := EncodeSections(original)
	if err != nil {
		t.Fatalf("EncodeSections: %v", err)
	}
	decoded, err := DecodeSections(encoded)
	if err != nil {
		t.Fatalf("DecodeSections: %v", err)
	}
	if len(decoded) != 2 || decoded[1].Questions[0].CorrectAnswer != "b" {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}
