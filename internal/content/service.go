package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/llm"
)

// Store is the slice of the persistence layer the content service
// needs: lesson and skill lookup plus the write-through content save.
type Store interface {
	Lesson(ctx context.Context, id string) (*catalog.Lesson, error)
	Skill(ctx context.Context, id string) (*catalog.Skill, error)
	SaveLessonContent(ctx context.Context, lessonID string, content json.RawMessage) error
}

// Service ensures lessons have validated structured content, generating
// it on demand when absent or malformed.
type Service struct {
	provider llm.Provider
	store    Store
	cfg      Config
}

// NewService creates a content ingestion service.
func NewService(provider llm.Provider, store Store, cfg Config) *Service {
	return &Service{provider: provider, store: store, cfg: cfg}
}

// EnsureLessonContent returns the lesson's sections, calling the
// generation capability only when no valid content is persisted.
// Successful generations are written back onto the lesson, so under
// normal operation each lesson is generated at most once. Generation
// failures come back as *GenerationError with nothing persisted.
func (s *Service) EnsureLessonContent(ctx context.Context, lessonID string) ([]Section, error) {
	lesson, err := s.store.Lesson(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson %s: %w", lessonID, err)
	}

	if len(lesson.Content) > 0 {
		if sections, err := DecodeSections(lesson.Content); err == nil {
			return sections, nil
		}
		// Stored content is malformed; fall through and regenerate.
	}

	sections, raw, err := s.generate(ctx, lesson)
	if err != nil {
		return nil, &GenerationError{LessonID: lessonID, RawText: raw, Err: err}
	}

	encoded, err := EncodeSections(sections)
	if err != nil {
		return nil, &GenerationError{LessonID: lessonID, RawText: raw, Err: err}
	}
	if err := s.store.SaveLessonContent(ctx, lessonID, encoded); err != nil {
		return nil, fmt.Errorf("persist lesson content: %w", err)
	}
	return sections, nil
}

// generate calls the provider and runs the full repair and validation
// pipeline. Returns the raw response text alongside any error so the
// caller can attach it for diagnostics.
func (s *Service) generate(ctx context.Context, lesson *catalog.Lesson) ([]Section, string, error) {
	ctx = llm.WithPurpose(ctx, "lesson-content")

	var skillName, difficulty string
	if skill, err := s.store.Skill(ctx, lesson.SkillID); err == nil {
		skillName = skill.Name
		difficulty = string(skill.Difficulty)
	}

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(lesson.Title, skillName, difficulty)},
		},
		Schema:      LessonContentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	raw := ""
	if err != nil {
		// A provider-side schema rejection still carries the model's
		// text; the repair passes below get one shot at it.
		var invalid *llm.ErrInvalidResponse
		if !errors.As(err, &invalid) || len(invalid.Content) == 0 {
			return nil, "", fmt.Errorf("generate: %w", err)
		}
		raw = string(invalid.Content)
	} else {
		raw = string(resp.Content)
	}

	extracted, err := ExtractJSON(raw)
	if err != nil {
		return nil, raw, err
	}
	if err := llm.ValidateSchema(LessonContentSchema, extracted); err != nil {
		// Legacy plain-string content fails the array schema but is
		// still accepted by the decoder below.
		if sections, decErr := DecodeSections(extracted); decErr == nil {
			return sections, raw, nil
		}
		return nil, raw, err
	}

	sections, err := DecodeSections(extracted)
	if err != nil {
		return nil, raw, err
	}
	return sections, raw, nil
}
