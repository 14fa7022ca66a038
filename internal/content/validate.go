package content

import (
	"encoding/json"
	"strings"
)

// decodeQuestion validates a question's correct_answer against its own
// options. The answer must be a JSON string — models occasionally emit
// an object or index here — and must trim-match exactly one option.
// Either failure is an error, not a warning.
func decodeQuestion(secIdx, qIdx int, d questionDoc) (Question, error) {
	if d.Prompt == "" {
		return Question{}, &QuestionError{Section: secIdx, Question: qIdx, Reason: "empty prompt"}
	}
	if len(d.Options) < 2 {
		return Question{}, &QuestionError{Section: secIdx, Question: qIdx, Reason: "fewer than two options"}
	}

	var answer string
	if err := json.Unmarshal(d.CorrectAnswer, &answer); err != nil {
		return Question{}, &QuestionError{
			Section:  secIdx,
			Question: qIdx,
			Reason:   "correct_answer is not a string",
		}
	}

	matched := ""
	matches := 0
	trimmed := strings.TrimSpace(answer)
	for _, opt := range d.Options {
		if strings.TrimSpace(opt) == trimmed {
			matched = opt
			matches++
		}
	}
	if matches != 1 {
		return Question{}, &QuestionError{
			Section:  secIdx,
			Question: qIdx,
			Reason:   "correct_answer does not match exactly one option",
		}
	}

	return Question{
		Prompt:        d.Prompt,
		Options:       d.Options,
		CorrectAnswer: matched,
		Explanation:   d.Explanation,
	}, nil
}
