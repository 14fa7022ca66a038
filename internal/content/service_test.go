package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/llm"
)

type fakeStore struct {
	lesson *catalog.Lesson
	skill  *catalog.Skill
	saved  json.RawMessage
	saves  int
}

func (f *fakeStore) Lesson(_ context.Context, id string) (*catalog.Lesson, error) {
	if f.lesson == nil || f.lesson.ID != id {
		return nil, errors.New("lesson not found")
	}
	return f.lesson, nil
}

func (f *fakeStore) Skill(_ context.Context, id string) (*catalog.Skill, error) {
	if f.skill == nil || f.skill.ID != id {
		return nil, errors.New("skill not found")
	}
	return f.skill, nil
}

func (f *fakeStore) SaveLessonContent(_ context.Context, _ string, content json.RawMessage) error {
	f.saved = content
	f.saves++
	return nil
}

func testStore() *fakeStore {
	return &fakeStore{
		lesson: &catalog.Lesson{ID: "l1", SkillID: "s1", Title: "Variables"},
		skill:  &catalog.Skill{ID: "s1", Name: "Go Basics", Difficulty: catalog.DifficultyBeginner},
	}
}

const validSectionsJSON = `[
	{"type": "text", "title": "Intro", "body": "Variables hold values."},
	{"type": "quiz", "title": "Check", "questions": [
		{"prompt": "Pick one", "options": ["a", "b"], "correct_answer": "a"}
	]}
]`

func TestEnsureLessonContent_GeneratesAndPersists(t *testing.T) {
	store := testStore()
	wrapped := "Here you go!\n```json\n" + validSectionsJSON + "\n```\nEnjoy."
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(wrapped)})
	svc := NewService(mock, store, DefaultConfig())

	sections, err := svc.EnsureLessonContent(context.Background(), "l1")
	if err != nil {
		t.Fatalf("EnsureLessonContent: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Body != "Variables hold values." {
		t.Errorf("Body = %q", sections[0].Body)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want write-through persist", store.saves)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestEnsureLessonContent_CachedContentSkipsProvider(t *testing.T) {
	store := testStore()
	store.lesson.Content = json.RawMessage(validSectionsJSON)
	mock := llm.NewMockProvider()
	svc := NewService(mock, store, DefaultConfig())

	sections, err := svc.EnsureLessonContent(context.Background(), "l1")
	if err != nil {
		t.Fatalf("EnsureLessonContent: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for cached content", mock.CallCount())
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, cached content should not be rewritten", store.saves)
	}
}

func TestEnsureLessonContent_MalformedStoredContentRegenerates(t *testing.T) {
	store := testStore()
	store.lesson.Content = json.RawMessage(`[{"type": "video"}]`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validSectionsJSON)})
	svc := NewService(mock, store, DefaultConfig())

	sections, err := svc.EnsureLessonContent(context.Background(), "l1")
	if err != nil {
		t.Fatalf("EnsureLessonContent: %v", err)
	}
	if len(sections) != 2 || mock.CallCount() != 1 || store.saves != 1 {
		t.Errorf("expected regeneration: sections=%d calls=%d saves=%d",
			len(sections), mock.CallCount(), store.saves)
	}
}

func TestEnsureLessonContent_UnparseableResponse(t *testing.T) {
	store := testStore()
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Sorry, I cannot produce that lesson."),
	})
	svc := NewService(mock, store, DefaultConfig())

	_, err := svc.EnsureLessonContent(context.Background(), "l1")
	if err == nil {
		t.Fatal("expected error for unparseable response")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error type = %T, want *GenerationError", err)
	}
	if genErr.RawText == "" {
		t.Error("RawText should carry the raw response")
	}
	if store.saves != 0 {
		t.Errorf("saves = %d, nothing may persist on failure", store.saves)
	}
}

func TestEnsureLessonContent_InvalidAnswerNotPersisted(t *testing.T) {
	store := testStore()
	bad := `[{"type":"quiz","questions":[{"prompt":"q","options":["a","b"],"correct_answer":"c"}]}]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	svc := NewService(mock, store, DefaultConfig())

	_, err := svc.EnsureLessonContent(context.Background(), "l1")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
	if store.saves != 0 {
		t.Error("invalid content must not be persisted")
	}
}

func TestEnsureLessonContent_RepairsProviderRejectedContent(t *testing.T) {
	store := testStore()
	fenced := "```json\n" + validSectionsJSON + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(fenced),
			Err:     errors.New("schema validation failed"),
		},
	})
	svc := NewService(mock, store, DefaultConfig())

	sections, err := svc.EnsureLessonContent(context.Background(), "l1")
	if err != nil {
		t.Fatalf("EnsureLessonContent: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want repaired content", len(sections))
	}
}
