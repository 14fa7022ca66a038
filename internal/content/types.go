package content

import (
	"encoding/json"
	"fmt"
)

// SectionKind discriminates the two section shapes a lesson document
// may contain.
type SectionKind string

const (
	KindText SectionKind = "text"
	KindQuiz SectionKind = "quiz"
)

// Section is one ordered unit of lesson content. Exactly one of Body
// (text sections) or Questions (quiz sections) is populated.
type Section struct {
	Kind      SectionKind
	Title     string
	Body      string
	Questions []Question
}

// Question is a single quiz question with one correct option.
type Question struct {
	Prompt        string
	Options       []string
	CorrectAnswer string
	Explanation   string
}

// sectionDoc is the wire shape of a section as produced by the
// generation capability.
type sectionDoc struct {
	Type      string        `json:"type"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	Questions []questionDoc `json:"questions"`
}

type questionDoc struct {
	Prompt        string          `json:"prompt"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
}

// DecodeSections turns extracted lesson JSON into sections. It accepts
// the two shapes seen in the wild: a plain JSON string (legacy content,
// normalized to a single text section) and an array of typed section
// objects. Anything else is an error. Callers get sections only — the
// shape branch never escapes this boundary.
func DecodeSections(raw json.RawMessage) ([]Section, error) {
	var legacy string
	if err := json.Unmarshal(raw, &legacy); err == nil {
		if legacy == "" {
			return nil, fmt.Errorf("empty legacy content")
		}
		return []Section{{
			Kind: KindText,
			Body: NormalizeMarkdown(legacy),
		}}, nil
	}

	var docs []sectionDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("content is neither a string nor a section array: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("content has no sections")
	}

	sections := make([]Section, 0, len(docs))
	for i, d := range docs {
		sec, err := decodeSection(i, d)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

func decodeSection(idx int, d sectionDoc) (Section, error) {
	switch SectionKind(d.Type) {
	case KindText:
		if d.Body == "" {
			return Section{}, fmt.Errorf("section %d: text section has empty body", idx)
		}
		return Section{
			Kind:  KindText,
			Title: d.Title,
			Body:  NormalizeMarkdown(d.Body),
		}, nil

	case KindQuiz:
		if len(d.Questions) == 0 {
			return Section{}, fmt.Errorf("section %d: quiz section has no questions", idx)
		}
		questions := make([]Question, 0, len(d.Questions))
		for qi, qd := range d.Questions {
			q, err := decodeQuestion(idx, qi, qd)
			if err != nil {
				return Section{}, err
			}
			questions = append(questions, q)
		}
		return Section{
			Kind:      KindQuiz,
			Title:     d.Title,
			Questions: questions,
		}, nil

	default:
		return Section{}, fmt.Errorf("section %d: unknown type %q", idx, d.Type)
	}
}

// EncodeSections is the inverse of DecodeSections, used for
// write-through persistence. Always emits the structured array shape.
func EncodeSections(sections []Section) (json.RawMessage, error) {
	docs := make([]sectionDoc, 0, len(sections))
	for _, s := range sections {
		d := sectionDoc{
			Type:  string(s.Kind),
			Title: s.Title,
			Body:  s.Body,
		}
		for _, q := range s.Questions {
			answer, err := json.Marshal(q.CorrectAnswer)
			if err != nil {
				return nil, fmt.Errorf("marshal answer: %w", err)
			}
			d.Questions = append(d.Questions, questionDoc{
				Prompt:        q.Prompt,
				Options:       q.Options,
				CorrectAnswer: answer,
				Explanation:   q.Explanation,
			})
		}
		docs = append(docs, d)
	}
	return json.Marshal(docs)
}
