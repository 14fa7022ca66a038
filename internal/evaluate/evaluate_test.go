package evaluate

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/llm"
)

func mcqExercise() catalog.Exercise {
	return catalog.Exercise{
		ID:            "e1",
		Type:          catalog.TypeMultipleChoice,
		Question:      "What is the capital of France?",
		Options:       []string{"Paris", "Lyon", "Marseille"},
		CorrectAnswer: "Paris",
		PassingScore:  70,
	}
}

func shortAnswerExercise() catalog.Exercise {
	return catalog.Exercise{
		ID:           "e2",
		Type:         catalog.TypeShortAnswer,
		Question:     "Explain what a pointer is.",
		Rubric:       "Mentions memory address; mentions indirection.",
		PassingScore: 70,
	}
}

func TestEvaluate_ClosedForm(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		verdict   Verdict
		score     int
		unlock    bool
	}{
		{"exact match", "Paris", VerdictCorrect, 100, true},
		{"trailing space still correct", "Paris ", VerdictCorrect, 100, true},
		{"case matters", "paris", VerdictIncorrect, 0, false},
		{"wrong option", "Lyon", VerdictIncorrect, 0, false},
	}

	e := NewEvaluator(nil, DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := e.Evaluate(context.Background(), mcqExercise(), tt.submitted)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if fb.Verdict != tt.verdict || fb.Score != tt.score || fb.UnlockNext != tt.unlock {
				t.Errorf("got verdict=%s score=%d unlock=%v, want %s/%d/%v",
					fb.Verdict, fb.Score, fb.UnlockNext, tt.verdict, tt.score, tt.unlock)
			}
			if fb.AIGraded {
				t.Error("closed-form grading must not be marked AI-graded")
			}
		})
	}
}

func TestEvaluate_OpenFormGraded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"verdict": "partial", "score": 75, "message": "Good start.", "suggestion": "Mention indirection."}`),
	})
	e := NewEvaluator(mock, DefaultConfig())

	fb, err := e.Evaluate(context.Background(), shortAnswerExercise(), "A pointer holds a memory address.")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !fb.AIGraded {
		t.Error("expected AI-graded feedback")
	}
	if fb.Verdict != VerdictPartial || fb.Score != 75 {
		t.Errorf("got verdict=%s score=%d", fb.Verdict, fb.Score)
	}
	if !fb.UnlockNext {
		t.Error("score 75 >= passing score 70 should unlock")
	}
}

func TestEvaluate_OpenFormWrappedResponse(t *testing.T) {
	wrapped := "Here is my grading:\n```json\n{\"verdict\": \"correct\", \"score\": 95, \"message\": \"Well explained.\"}\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(wrapped)})
	e := NewEvaluator(mock, DefaultConfig())

	fb, err := e.Evaluate(context.Background(), shortAnswerExercise(), "answer")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if fb.Verdict != VerdictCorrect || fb.Score != 95 {
		t.Errorf("got verdict=%s score=%d, want correct/95", fb.Verdict, fb.Score)
	}
}

func TestEvaluate_OpenFormDegradesOnFailure(t *testing.T) {
	cases := []llm.MockResponse{
		{Err: &llm.ErrProviderUnavailable{}},
		{Content: json.RawMessage("I refuse to answer in JSON.")},
		{Content: json.RawMessage(`{"verdict": "maybe", "score": 10, "message": "x"}`)},
	}
	for _, c := range cases {
		mock := llm.NewMockProvider(c)
		e := NewEvaluator(mock, DefaultConfig())

		fb, err := e.Evaluate(context.Background(), shortAnswerExercise(), "answer")
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if fb.Verdict != VerdictPartial || fb.Score != 50 {
			t.Errorf("got verdict=%s score=%d, want degraded partial/50", fb.Verdict, fb.Score)
		}
		if fb.UnlockNext {
			t.Error("degraded feedback must not unlock")
		}
		if fb.Suggestion == "" {
			t.Error("degraded feedback should advise retrying")
		}
	}
}

func TestEvaluate_UnknownType(t *testing.T) {
	e := NewEvaluator(nil, DefaultConfig())
	ex := catalog.Exercise{ID: "e3", Type: "essay"}
	if _, err := e.Evaluate(context.Background(), ex, "x"); err == nil {
		t.Fatal("expected error for unknown exercise type")
	}
}

func TestEvaluate_OpenFormWithoutProvider(t *testing.T) {
	e := NewEvaluator(nil, DefaultConfig())
	if _, err := e.Evaluate(context.Background(), shortAnswerExercise(), "x"); err == nil {
		t.Fatal("expected error when no provider is configured")
	}
}
