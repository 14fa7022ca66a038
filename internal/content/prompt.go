package content

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are an expert instructional designer writing lesson content for a self-paced learning platform. Lessons alternate short explanatory text with quick comprehension quizzes.`

func buildLessonUserMessage(lessonTitle, skillName, difficulty string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson: %s\n", lessonTitle))
	if skillName != "" {
		b.WriteString(fmt.Sprintf("Skill: %s\n", skillName))
	}
	if difficulty != "" {
		b.WriteString(fmt.Sprintf("Difficulty: %s\n", difficulty))
	}

	b.WriteString(`
Instructions:
Produce the lesson as a JSON array of 3-6 sections. Each section is either:
- {"type": "text", "title": ..., "body": ...} — a focused explanation of one idea, 2-5 short paragraphs of markdown.
- {"type": "quiz", "title": ..., "questions": [...]} — 2-4 multiple-choice questions checking the preceding text.

Each question has "prompt", "options" (2-5 strings), "correct_answer" (repeating one option verbatim), and an optional "explanation".

Rules:
1. Start with a text section; end with a quiz section.
2. Every correct_answer must be copied exactly from that question's options.
3. Output ONLY the JSON array. No commentary, no code fences.`)

	return b.String()
}
