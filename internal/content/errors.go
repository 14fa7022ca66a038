package content

import "fmt"

// GenerationError means the generation capability returned text that
// could not be extracted, parsed, or validated into lesson sections.
// RawText carries the original response for diagnostics. Distinct from
// "no content exists yet" — callers may retry generation.
type GenerationError struct {
	LessonID string
	RawText  string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("lesson %s: content generation failed: %v", e.LessonID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// QuestionError pins a validation failure to a specific question inside
// a quiz section.
type QuestionError struct {
	Section  int
	Question int
	Reason   string
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("section %d question %d: %s", e.Section, e.Question, e.Reason)
}
