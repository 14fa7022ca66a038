package evaluate

import (
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/catalog"
)

const gradingSystemPrompt = `You are a fair, encouraging grader on a self-paced learning platform. Grade the learner's answer against the question and rubric. Be strict about correctness but constructive in tone.`

func buildGradingUserMessage(ex catalog.Exercise, submitted string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question:\n%s\n", ex.Question))
	if ex.Rubric != "" {
		b.WriteString(fmt.Sprintf("\nRubric:\n%s\n", ex.Rubric))
	}
	b.WriteString(fmt.Sprintf("\nLearner's answer:\n%s\n", submitted))

	b.WriteString(`
Instructions:
1. Grade the answer on a 0-100 scale against the question and rubric.
2. Verdict: "correct" for a fully right answer, "incorrect" for a wrong one, "partial" when the answer shows real understanding but has gaps.
3. Write a short message explaining the grade in plain language addressed to the learner.
4. Add one concrete suggestion for improvement when the answer is not fully correct.`)

	return b.String()
}
