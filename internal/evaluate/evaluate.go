package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/llm"
)

// Verdict classifies a graded submission.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictIncorrect Verdict = "incorrect"
	VerdictPartial   Verdict = "partial"
)

// Feedback is the result of grading one submission. Submissions always
// produce feedback; an inconclusive AI grading degrades to a partial
// verdict instead of an error.
type Feedback struct {
	Verdict    Verdict
	Score      int
	Message    string
	Suggestion string
	AIGraded   bool
	UnlockNext bool
}

// Config holds evaluator settings for the AI-graded path.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns sensible defaults for evaluation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.2,
		Timeout:     30 * time.Second,
	}
}

// Evaluator grades exercise submissions. Closed-form exercise types are
// graded deterministically; open-form types go through the provider.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates an evaluator. The provider may be nil when only
// closed-form exercises are in play.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

// Evaluate grades a submission and always returns feedback. The error
// return is reserved for programming mistakes (unknown exercise type,
// missing provider), never for a bad or ungradable answer.
func (e *Evaluator) Evaluate(ctx context.Context, ex catalog.Exercise, submitted string) (*Feedback, error) {
	if ex.Type.ClosedForm() {
		return e.evaluateClosed(ex, submitted), nil
	}

	switch ex.Type {
	case catalog.TypeShortAnswer, catalog.TypeCode:
		if e.provider == nil {
			return nil, fmt.Errorf("exercise %s: type %s needs an AI grader", ex.ID, ex.Type)
		}
		return e.evaluateOpen(ctx, ex, submitted), nil
	default:
		return nil, fmt.Errorf("exercise %s: unknown type %q", ex.ID, ex.Type)
	}
}

// evaluateClosed compares the submission to the stored answer. The
// match trims surrounding whitespace but is case-sensitive: option
// labels are shown to the learner verbatim, so casing is theirs to
// copy.
func (e *Evaluator) evaluateClosed(ex catalog.Exercise, submitted string) *Feedback {
	if strings.TrimSpace(submitted) == strings.TrimSpace(ex.CorrectAnswer) {
		return &Feedback{
			Verdict:    VerdictCorrect,
			Score:      100,
			Message:    "Correct!",
			UnlockNext: true,
		}
	}
	return &Feedback{
		Verdict:    VerdictIncorrect,
		Score:      0,
		Message:    "Not quite. Review the lesson and try again.",
		UnlockNext: false,
	}
}

// evaluateOpen grades via the provider. Any failure along the way
// degrades to a partial verdict so the learner still gets feedback.
func (e *Evaluator) evaluateOpen(ctx context.Context, ex catalog.Exercise, submitted string) *Feedback {
	ctx = llm.WithPurpose(ctx, "grade")
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingUserMessage(ex, submitted)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	raw := ""
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if !errors.As(err, &invalid) || len(invalid.Content) == 0 {
			return degradedFeedback()
		}
		raw = string(invalid.Content)
	} else {
		raw = string(resp.Content)
	}

	extracted, err := content.ExtractJSON(raw)
	if err != nil {
		return degradedFeedback()
	}
	if err := llm.ValidateSchema(FeedbackSchema, extracted); err != nil {
		return degradedFeedback()
	}

	var out feedbackOutput
	if err := json.Unmarshal(extracted, &out); err != nil {
		return degradedFeedback()
	}

	fb := &Feedback{
		Verdict:    Verdict(out.Verdict),
		Score:      clampScore(out.Score),
		Message:    out.Message,
		Suggestion: out.Suggestion,
		AIGraded:   true,
	}
	fb.UnlockNext = fb.Verdict == VerdictCorrect || fb.Score >= ex.PassingScore
	return fb
}

type feedbackOutput struct {
	Verdict    string `json:"verdict"`
	Score      int    `json:"score"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// degradedFeedback is the inconclusive-grading path: never a spurious
// pass or fail, always an invitation to retry.
func degradedFeedback() *Feedback {
	return &Feedback{
		Verdict:    VerdictPartial,
		Score:      50,
		Message:    "We couldn't fully grade this answer right now.",
		Suggestion: "Your answer was recorded. Try submitting again in a moment for a full review.",
		AIGraded:   false,
		UnlockNext: false,
	}
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
