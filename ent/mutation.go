// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/exercise"
	"github.com/abhisek/skillforge/ent/exerciseattempt"
	"github.com/abhisek/skillforge/ent/lesson"
	"github.com/abhisek/skillforge/ent/lessoncompletion"
	"github.com/abhisek/skillforge/ent/llmrequestlog"
	"github.com/abhisek/skillforge/ent/predicate"
	"github.com/abhisek/skillforge/ent/reviewschedule"
	"github.com/abhisek/skillforge/ent/skill"
	"github.com/abhisek/skillforge/ent/skillcategory"
	"github.com/abhisek/skillforge/ent/userskillprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExercise          = "Exercise"
	TypeExerciseAttempt   = "ExerciseAttempt"
	TypeLLMRequestLog     = "LLMRequestLog"
	TypeLesson            = "Lesson"
	TypeLessonCompletion  = "LessonCompletion"
	TypeReviewSchedule    = "ReviewSchedule"
	TypeSkill             = "Skill"
	TypeSkillCategory     = "SkillCategory"
	TypeUserSkillProgress = "UserSkillProgress"
)

// ExerciseMutation represents an operation that mutates the Exercise nodes in the graph.
type ExerciseMutation struct {
	config
	op               Op
	typ              string
	id               *string
	skill_id         *string
	_type            *exercise.Type
	question         *string
	options          *[]string
	appendoptions    []string
	correct_answer   *string
	rubric           *string
	passing_score    *int
	addpassing_score *int
	max_attempts     *int
	addmax_attempts  *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Exercise, error)
	predicates       []predicate.Exercise
}

var _ ent.Mutation = (*ExerciseMutation)(nil)

// exerciseOption allows management of the mutation configuration using functional options.
type exerciseOption func(*ExerciseMutation)

// newExerciseMutation creates new mutation for the Exercise entity.
func newExerciseMutation(c config, op Op, opts ...exerciseOption) *ExerciseMutation {
	m := &ExerciseMutation{
		config:        c,
		op:            op,
		typ:           TypeExercise,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExerciseID sets the ID field of the mutation.
func withExerciseID(id string) exerciseOption {
	return func(m *ExerciseMutation) {
		var (
			err   error
			once  sync.Once
			value *Exercise
		)
		m.oldValue = func(ctx context.Context) (*Exercise, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Exercise.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExercise sets the old Exercise of the mutation.
func withExercise(node *Exercise) exerciseOption {
	return func(m *ExerciseMutation) {
		m.oldValue = func(context.Context) (*Exercise, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExerciseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExerciseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Exercise entities.
func (m *ExerciseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExerciseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExerciseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Exercise.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *ExerciseMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *ExerciseMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *ExerciseMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetType sets the "type" field.
func (m *ExerciseMutation) SetType(e exercise.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *ExerciseMutation) GetType() (r exercise.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldType(ctx context.Context) (v exercise.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ExerciseMutation) ResetType() {
	m._type = nil
}

// SetQuestion sets the "question" field.
func (m *ExerciseMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *ExerciseMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *ExerciseMutation) ResetQuestion() {
	m.question = nil
}

// SetOptions sets the "options" field.
func (m *ExerciseMutation) SetOptions(s []string) {
	m.options = &s
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *ExerciseMutation) Options() (r []string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds s to the "options" field.
func (m *ExerciseMutation) AppendOptions(s []string) {
	m.appendoptions = append(m.appendoptions, s...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *ExerciseMutation) AppendedOptions() ([]string, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *ExerciseMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[exercise.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *ExerciseMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[exercise.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *ExerciseMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, exercise.FieldOptions)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *ExerciseMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *ExerciseMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (m *ExerciseMutation) ClearCorrectAnswer() {
	m.correct_answer = nil
	m.clearedFields[exercise.FieldCorrectAnswer] = struct{}{}
}

// CorrectAnswerCleared returns if the "correct_answer" field was cleared in this mutation.
func (m *ExerciseMutation) CorrectAnswerCleared() bool {
	_, ok := m.clearedFields[exercise.FieldCorrectAnswer]
	return ok
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *ExerciseMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
	delete(m.clearedFields, exercise.FieldCorrectAnswer)
}

// SetRubric sets the "rubric" field.
func (m *ExerciseMutation) SetRubric(s string) {
	m.rubric = &s
}

// Rubric returns the value of the "rubric" field in the mutation.
func (m *ExerciseMutation) Rubric() (r string, exists bool) {
	v := m.rubric
	if v == nil {
		return
	}
	return *v, true
}

// OldRubric returns the old "rubric" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldRubric(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRubric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRubric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRubric: %w", err)
	}
	return oldValue.Rubric, nil
}

// ClearRubric clears the value of the "rubric" field.
func (m *ExerciseMutation) ClearRubric() {
	m.rubric = nil
	m.clearedFields[exercise.FieldRubric] = struct{}{}
}

// RubricCleared returns if the "rubric" field was cleared in this mutation.
func (m *ExerciseMutation) RubricCleared() bool {
	_, ok := m.clearedFields[exercise.FieldRubric]
	return ok
}

// ResetRubric resets all changes to the "rubric" field.
func (m *ExerciseMutation) ResetRubric() {
	m.rubric = nil
	delete(m.clearedFields, exercise.FieldRubric)
}

// SetPassingScore sets the "passing_score" field.
func (m *ExerciseMutation) SetPassingScore(i int) {
	m.passing_score = &i
	m.addpassing_score = nil
}

// PassingScore returns the value of the "passing_score" field in the mutation.
func (m *ExerciseMutation) PassingScore() (r int, exists bool) {
	v := m.passing_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPassingScore returns the old "passing_score" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldPassingScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassingScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassingScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassingScore: %w", err)
	}
	return oldValue.PassingScore, nil
}

// AddPassingScore adds i to the "passing_score" field.
func (m *ExerciseMutation) AddPassingScore(i int) {
	if m.addpassing_score != nil {
		*m.addpassing_score += i
	} else {
		m.addpassing_score = &i
	}
}

// AddedPassingScore returns the value that was added to the "passing_score" field in this mutation.
func (m *ExerciseMutation) AddedPassingScore() (r int, exists bool) {
	v := m.addpassing_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPassingScore resets all changes to the "passing_score" field.
func (m *ExerciseMutation) ResetPassingScore() {
	m.passing_score = nil
	m.addpassing_score = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *ExerciseMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *ExerciseMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Exercise entity.
// If the Exercise object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *ExerciseMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *ExerciseMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *ExerciseMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// Where appends a list predicates to the ExerciseMutation builder.
func (m *ExerciseMutation) Where(ps ...predicate.Exercise) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExerciseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExerciseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Exercise, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExerciseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExerciseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Exercise).
func (m *ExerciseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExerciseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.skill_id != nil {
		fields = append(fields, exercise.FieldSkillID)
	}
	if m._type != nil {
		fields = append(fields, exercise.FieldType)
	}
	if m.question != nil {
		fields = append(fields, exercise.FieldQuestion)
	}
	if m.options != nil {
		fields = append(fields, exercise.FieldOptions)
	}
	if m.correct_answer != nil {
		fields = append(fields, exercise.FieldCorrectAnswer)
	}
	if m.rubric != nil {
		fields = append(fields, exercise.FieldRubric)
	}
	if m.passing_score != nil {
		fields = append(fields, exercise.FieldPassingScore)
	}
	if m.max_attempts != nil {
		fields = append(fields, exercise.FieldMaxAttempts)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExerciseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exercise.FieldSkillID:
		return m.SkillID()
	case exercise.FieldType:
		return m.GetType()
	case exercise.FieldQuestion:
		return m.Question()
	case exercise.FieldOptions:
		return m.Options()
	case exercise.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case exercise.FieldRubric:
		return m.Rubric()
	case exercise.FieldPassingScore:
		return m.PassingScore()
	case exercise.FieldMaxAttempts:
		return m.MaxAttempts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExerciseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exercise.FieldSkillID:
		return m.OldSkillID(ctx)
	case exercise.FieldType:
		return m.OldType(ctx)
	case exercise.FieldQuestion:
		return m.OldQuestion(ctx)
	case exercise.FieldOptions:
		return m.OldOptions(ctx)
	case exercise.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case exercise.FieldRubric:
		return m.OldRubric(ctx)
	case exercise.FieldPassingScore:
		return m.OldPassingScore(ctx)
	case exercise.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	}
	return nil, fmt.Errorf("unknown Exercise field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exercise.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case exercise.FieldType:
		v, ok := value.(exercise.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case exercise.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case exercise.FieldOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case exercise.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case exercise.FieldRubric:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRubric(v)
		return nil
	case exercise.FieldPassingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassingScore(v)
		return nil
	case exercise.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Exercise field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExerciseMutation) AddedFields() []string {
	var fields []string
	if m.addpassing_score != nil {
		fields = append(fields, exercise.FieldPassingScore)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, exercise.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExerciseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exercise.FieldPassingScore:
		return m.AddedPassingScore()
	case exercise.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exercise.FieldPassingScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPassingScore(v)
		return nil
	case exercise.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Exercise numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExerciseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exercise.FieldOptions) {
		fields = append(fields, exercise.FieldOptions)
	}
	if m.FieldCleared(exercise.FieldCorrectAnswer) {
		fields = append(fields, exercise.FieldCorrectAnswer)
	}
	if m.FieldCleared(exercise.FieldRubric) {
		fields = append(fields, exercise.FieldRubric)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExerciseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExerciseMutation) ClearField(name string) error {
	switch name {
	case exercise.FieldOptions:
		m.ClearOptions()
		return nil
	case exercise.FieldCorrectAnswer:
		m.ClearCorrectAnswer()
		return nil
	case exercise.FieldRubric:
		m.ClearRubric()
		return nil
	}
	return fmt.Errorf("unknown Exercise nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExerciseMutation) ResetField(name string) error {
	switch name {
	case exercise.FieldSkillID:
		m.ResetSkillID()
		return nil
	case exercise.FieldType:
		m.ResetType()
		return nil
	case exercise.FieldQuestion:
		m.ResetQuestion()
		return nil
	case exercise.FieldOptions:
		m.ResetOptions()
		return nil
	case exercise.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case exercise.FieldRubric:
		m.ResetRubric()
		return nil
	case exercise.FieldPassingScore:
		m.ResetPassingScore()
		return nil
	case exercise.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	}
	return fmt.Errorf("unknown Exercise field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExerciseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExerciseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExerciseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExerciseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExerciseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExerciseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExerciseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Exercise unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExerciseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Exercise edge %s", name)
}

// ExerciseAttemptMutation represents an operation that mutates the ExerciseAttempt nodes in the graph.
type ExerciseAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	user_id            *string
	exercise_id        *string
	attempt_number     *int
	addattempt_number  *int
	answer             *string
	score              *int
	addscore           *int
	correct            *bool
	feedback           *json.RawMessage
	appendfeedback     json.RawMessage
	time_spent_secs    *int
	addtime_spent_secs *int
	submitted_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ExerciseAttempt, error)
	predicates         []predicate.ExerciseAttempt
}

var _ ent.Mutation = (*ExerciseAttemptMutation)(nil)

// exerciseattemptOption allows management of the mutation configuration using functional options.
type exerciseattemptOption func(*ExerciseAttemptMutation)

// newExerciseAttemptMutation creates new mutation for the ExerciseAttempt entity.
func newExerciseAttemptMutation(c config, op Op, opts ...exerciseattemptOption) *ExerciseAttemptMutation {
	m := &ExerciseAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeExerciseAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExerciseAttemptID sets the ID field of the mutation.
func withExerciseAttemptID(id string) exerciseattemptOption {
	return func(m *ExerciseAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *ExerciseAttempt
		)
		m.oldValue = func(ctx context.Context) (*ExerciseAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExerciseAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExerciseAttempt sets the old ExerciseAttempt of the mutation.
func withExerciseAttempt(node *ExerciseAttempt) exerciseattemptOption {
	return func(m *ExerciseAttemptMutation) {
		m.oldValue = func(context.Context) (*ExerciseAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExerciseAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExerciseAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExerciseAttempt entities.
func (m *ExerciseAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExerciseAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExerciseAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExerciseAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ExerciseAttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExerciseAttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExerciseAttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetExerciseID sets the "exercise_id" field.
func (m *ExerciseAttemptMutation) SetExerciseID(s string) {
	m.exercise_id = &s
}

// ExerciseID returns the value of the "exercise_id" field in the mutation.
func (m *ExerciseAttemptMutation) ExerciseID() (r string, exists bool) {
	v := m.exercise_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExerciseID returns the old "exercise_id" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldExerciseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExerciseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExerciseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExerciseID: %w", err)
	}
	return oldValue.ExerciseID, nil
}

// ResetExerciseID resets all changes to the "exercise_id" field.
func (m *ExerciseAttemptMutation) ResetExerciseID() {
	m.exercise_id = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *ExerciseAttemptMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *ExerciseAttemptMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *ExerciseAttemptMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *ExerciseAttemptMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *ExerciseAttemptMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetAnswer sets the "answer" field.
func (m *ExerciseAttemptMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *ExerciseAttemptMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *ExerciseAttemptMutation) ResetAnswer() {
	m.answer = nil
}

// SetScore sets the "score" field.
func (m *ExerciseAttemptMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ExerciseAttemptMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ExerciseAttemptMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ExerciseAttemptMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ExerciseAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCorrect sets the "correct" field.
func (m *ExerciseAttemptMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ExerciseAttemptMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ExerciseAttemptMutation) ResetCorrect() {
	m.correct = nil
}

// SetFeedback sets the "feedback" field.
func (m *ExerciseAttemptMutation) SetFeedback(jm json.RawMessage) {
	m.feedback = &jm
	m.appendfeedback = nil
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *ExerciseAttemptMutation) Feedback() (r json.RawMessage, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldFeedback(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// AppendFeedback adds jm to the "feedback" field.
func (m *ExerciseAttemptMutation) AppendFeedback(jm json.RawMessage) {
	m.appendfeedback = append(m.appendfeedback, jm...)
}

// AppendedFeedback returns the list of values that were appended to the "feedback" field in this mutation.
func (m *ExerciseAttemptMutation) AppendedFeedback() (json.RawMessage, bool) {
	if len(m.appendfeedback) == 0 {
		return nil, false
	}
	return m.appendfeedback, true
}

// ClearFeedback clears the value of the "feedback" field.
func (m *ExerciseAttemptMutation) ClearFeedback() {
	m.feedback = nil
	m.appendfeedback = nil
	m.clearedFields[exerciseattempt.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *ExerciseAttemptMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[exerciseattempt.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *ExerciseAttemptMutation) ResetFeedback() {
	m.feedback = nil
	m.appendfeedback = nil
	delete(m.clearedFields, exerciseattempt.FieldFeedback)
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *ExerciseAttemptMutation) SetTimeSpentSecs(i int) {
	m.time_spent_secs = &i
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *ExerciseAttemptMutation) TimeSpentSecs() (r int, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldTimeSpentSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (m *ExerciseAttemptMutation) AddTimeSpentSecs(i int) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += i
	} else {
		m.addtime_spent_secs = &i
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *ExerciseAttemptMutation) AddedTimeSpentSecs() (r int, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *ExerciseAttemptMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *ExerciseAttemptMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *ExerciseAttemptMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the ExerciseAttempt entity.
// If the ExerciseAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExerciseAttemptMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *ExerciseAttemptMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// Where appends a list predicates to the ExerciseAttemptMutation builder.
func (m *ExerciseAttemptMutation) Where(ps ...predicate.ExerciseAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExerciseAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExerciseAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExerciseAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExerciseAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExerciseAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExerciseAttempt).
func (m *ExerciseAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExerciseAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, exerciseattempt.FieldUserID)
	}
	if m.exercise_id != nil {
		fields = append(fields, exerciseattempt.FieldExerciseID)
	}
	if m.attempt_number != nil {
		fields = append(fields, exerciseattempt.FieldAttemptNumber)
	}
	if m.answer != nil {
		fields = append(fields, exerciseattempt.FieldAnswer)
	}
	if m.score != nil {
		fields = append(fields, exerciseattempt.FieldScore)
	}
	if m.correct != nil {
		fields = append(fields, exerciseattempt.FieldCorrect)
	}
	if m.feedback != nil {
		fields = append(fields, exerciseattempt.FieldFeedback)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, exerciseattempt.FieldTimeSpentSecs)
	}
	if m.submitted_at != nil {
		fields = append(fields, exerciseattempt.FieldSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExerciseAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case exerciseattempt.FieldUserID:
		return m.UserID()
	case exerciseattempt.FieldExerciseID:
		return m.ExerciseID()
	case exerciseattempt.FieldAttemptNumber:
		return m.AttemptNumber()
	case exerciseattempt.FieldAnswer:
		return m.Answer()
	case exerciseattempt.FieldScore:
		return m.Score()
	case exerciseattempt.FieldCorrect:
		return m.Correct()
	case exerciseattempt.FieldFeedback:
		return m.Feedback()
	case exerciseattempt.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	case exerciseattempt.FieldSubmittedAt:
		return m.SubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExerciseAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case exerciseattempt.FieldUserID:
		return m.OldUserID(ctx)
	case exerciseattempt.FieldExerciseID:
		return m.OldExerciseID(ctx)
	case exerciseattempt.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case exerciseattempt.FieldAnswer:
		return m.OldAnswer(ctx)
	case exerciseattempt.FieldScore:
		return m.OldScore(ctx)
	case exerciseattempt.FieldCorrect:
		return m.OldCorrect(ctx)
	case exerciseattempt.FieldFeedback:
		return m.OldFeedback(ctx)
	case exerciseattempt.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	case exerciseattempt.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExerciseAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case exerciseattempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case exerciseattempt.FieldExerciseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExerciseID(v)
		return nil
	case exerciseattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case exerciseattempt.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case exerciseattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case exerciseattempt.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case exerciseattempt.FieldFeedback:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case exerciseattempt.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	case exerciseattempt.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExerciseAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, exerciseattempt.FieldAttemptNumber)
	}
	if m.addscore != nil {
		fields = append(fields, exerciseattempt.FieldScore)
	}
	if m.addtime_spent_secs != nil {
		fields = append(fields, exerciseattempt.FieldTimeSpentSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExerciseAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case exerciseattempt.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case exerciseattempt.FieldScore:
		return m.AddedScore()
	case exerciseattempt.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExerciseAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case exerciseattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case exerciseattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case exerciseattempt.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	}
	return fmt.Errorf("unknown ExerciseAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExerciseAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(exerciseattempt.FieldFeedback) {
		fields = append(fields, exerciseattempt.FieldFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExerciseAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExerciseAttemptMutation) ClearField(name string) error {
	switch name {
	case exerciseattempt.FieldFeedback:
		m.ClearFeedback()
		return nil
	}
	return fmt.Errorf("unknown ExerciseAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExerciseAttemptMutation) ResetField(name string) error {
	switch name {
	case exerciseattempt.FieldUserID:
		m.ResetUserID()
		return nil
	case exerciseattempt.FieldExerciseID:
		m.ResetExerciseID()
		return nil
	case exerciseattempt.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case exerciseattempt.FieldAnswer:
		m.ResetAnswer()
		return nil
	case exerciseattempt.FieldScore:
		m.ResetScore()
		return nil
	case exerciseattempt.FieldCorrect:
		m.ResetCorrect()
		return nil
	case exerciseattempt.FieldFeedback:
		m.ResetFeedback()
		return nil
	case exerciseattempt.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	case exerciseattempt.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown ExerciseAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExerciseAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExerciseAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExerciseAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExerciseAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExerciseAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExerciseAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExerciseAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExerciseAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExerciseAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExerciseAttempt edge %s", name)
}

// LLMRequestLogMutation represents an operation that mutates the LLMRequestLog nodes in the graph.
type LLMRequestLogMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestLog, error)
	predicates       []predicate.LLMRequestLog
}

var _ ent.Mutation = (*LLMRequestLogMutation)(nil)

// llmrequestlogOption allows management of the mutation configuration using functional options.
type llmrequestlogOption func(*LLMRequestLogMutation)

// newLLMRequestLogMutation creates new mutation for the LLMRequestLog entity.
func newLLMRequestLogMutation(c config, op Op, opts ...llmrequestlogOption) *LLMRequestLogMutation {
	m := &LLMRequestLogMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestLogID sets the ID field of the mutation.
func withLLMRequestLogID(id int) llmrequestlogOption {
	return func(m *LLMRequestLogMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestLog
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestLog sets the old LLMRequestLog of the mutation.
func withLLMRequestLog(node *LLMRequestLog) llmrequestlogOption {
	return func(m *LLMRequestLogMutation) {
		m.oldValue = func(context.Context) (*LLMRequestLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestLogMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestLogMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestLogMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestLogMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestLogMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestLogMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestLogMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestLogMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestLogMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestLogMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestLogMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestLogMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestLogMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestLogMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestLogMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestLogMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestLogMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestLogMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestLogMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestLogMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestLogMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestLogMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestLogMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestLogMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestLogMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestLogMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestLogMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequestlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequestlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequestlog.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequestLog entity.
// If the LLMRequestLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMRequestLogMutation builder.
func (m *LLMRequestLogMutation) Where(ps ...predicate.LLMRequestLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestLog).
func (m *LLMRequestLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestlog.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestlog.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestlog.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestlog.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestlog.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestlog.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestlog.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestlog.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, llmrequestlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestlog.FieldProvider:
		return m.Provider()
	case llmrequestlog.FieldModel:
		return m.Model()
	case llmrequestlog.FieldPurpose:
		return m.Purpose()
	case llmrequestlog.FieldInputTokens:
		return m.InputTokens()
	case llmrequestlog.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestlog.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestlog.FieldSuccess:
		return m.Success()
	case llmrequestlog.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestlog.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestlog.FieldModel:
		return m.OldModel(ctx)
	case llmrequestlog.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestlog.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestlog.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestlog.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestlog.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestlog.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestlog.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestlog.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestlog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestlog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestlog.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestlog.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestLogMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestlog.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestlog.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestlog.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestlog.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestlog.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestlog.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestlog.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestlog.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestlog.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequestlog.FieldErrorMessage) {
		fields = append(fields, llmrequestlog.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestLogMutation) ClearField(name string) error {
	switch name {
	case llmrequestlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestLogMutation) ResetField(name string) error {
	switch name {
	case llmrequestlog.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestlog.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestlog.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestlog.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestlog.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestlog.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestlog.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestLog edge %s", name)
}

// LessonMutation represents an operation that mutates the Lesson nodes in the graph.
type LessonMutation struct {
	config
	op            Op
	typ           string
	id            *string
	skill_id      *string
	title         *string
	position      *int
	addposition   *int
	content       *json.RawMessage
	appendcontent json.RawMessage
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Lesson, error)
	predicates    []predicate.Lesson
}

var _ ent.Mutation = (*LessonMutation)(nil)

// lessonOption allows management of the mutation configuration using functional options.
type lessonOption func(*LessonMutation)

// newLessonMutation creates new mutation for the Lesson entity.
func newLessonMutation(c config, op Op, opts ...lessonOption) *LessonMutation {
	m := &LessonMutation{
		config:        c,
		op:            op,
		typ:           TypeLesson,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonID sets the ID field of the mutation.
func withLessonID(id string) lessonOption {
	return func(m *LessonMutation) {
		var (
			err   error
			once  sync.Once
			value *Lesson
		)
		m.oldValue = func(ctx context.Context) (*Lesson, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lesson.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLesson sets the old Lesson of the mutation.
func withLesson(node *Lesson) lessonOption {
	return func(m *LessonMutation) {
		m.oldValue = func(context.Context) (*Lesson, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lesson entities.
func (m *LessonMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lesson.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSkillID sets the "skill_id" field.
func (m *LessonMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *LessonMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *LessonMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetTitle sets the "title" field.
func (m *LessonMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *LessonMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *LessonMutation) ResetTitle() {
	m.title = nil
}

// SetPosition sets the "position" field.
func (m *LessonMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *LessonMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *LessonMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *LessonMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *LessonMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetContent sets the "content" field.
func (m *LessonMutation) SetContent(jm json.RawMessage) {
	m.content = &jm
	m.appendcontent = nil
}

// Content returns the value of the "content" field in the mutation.
func (m *LessonMutation) Content() (r json.RawMessage, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Lesson entity.
// If the Lesson object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonMutation) OldContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// AppendContent adds jm to the "content" field.
func (m *LessonMutation) AppendContent(jm json.RawMessage) {
	m.appendcontent = append(m.appendcontent, jm...)
}

// AppendedContent returns the list of values that were appended to the "content" field in this mutation.
func (m *LessonMutation) AppendedContent() (json.RawMessage, bool) {
	if len(m.appendcontent) == 0 {
		return nil, false
	}
	return m.appendcontent, true
}

// ClearContent clears the value of the "content" field.
func (m *LessonMutation) ClearContent() {
	m.content = nil
	m.appendcontent = nil
	m.clearedFields[lesson.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *LessonMutation) ContentCleared() bool {
	_, ok := m.clearedFields[lesson.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *LessonMutation) ResetContent() {
	m.content = nil
	m.appendcontent = nil
	delete(m.clearedFields, lesson.FieldContent)
}

// Where appends a list predicates to the LessonMutation builder.
func (m *LessonMutation) Where(ps ...predicate.Lesson) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lesson, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lesson).
func (m *LessonMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.skill_id != nil {
		fields = append(fields, lesson.FieldSkillID)
	}
	if m.title != nil {
		fields = append(fields, lesson.FieldTitle)
	}
	if m.position != nil {
		fields = append(fields, lesson.FieldPosition)
	}
	if m.content != nil {
		fields = append(fields, lesson.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldSkillID:
		return m.SkillID()
	case lesson.FieldTitle:
		return m.Title()
	case lesson.FieldPosition:
		return m.Position()
	case lesson.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lesson.FieldSkillID:
		return m.OldSkillID(ctx)
	case lesson.FieldTitle:
		return m.OldTitle(ctx)
	case lesson.FieldPosition:
		return m.OldPosition(ctx)
	case lesson.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown Lesson field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case lesson.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case lesson.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case lesson.FieldContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, lesson.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lesson.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lesson.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Lesson numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lesson.FieldContent) {
		fields = append(fields, lesson.FieldContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonMutation) ClearField(name string) error {
	switch name {
	case lesson.FieldContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown Lesson nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonMutation) ResetField(name string) error {
	switch name {
	case lesson.FieldSkillID:
		m.ResetSkillID()
		return nil
	case lesson.FieldTitle:
		m.ResetTitle()
		return nil
	case lesson.FieldPosition:
		m.ResetPosition()
		return nil
	case lesson.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown Lesson field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Lesson unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Lesson edge %s", name)
}

// LessonCompletionMutation represents an operation that mutates the LessonCompletion nodes in the graph.
type LessonCompletionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	lesson_id              *string
	time_spent_secs        *int
	addtime_spent_secs     *int
	comprehension_score    *int
	addcomprehension_score *int
	completed_at           *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*LessonCompletion, error)
	predicates             []predicate.LessonCompletion
}

var _ ent.Mutation = (*LessonCompletionMutation)(nil)

// lessoncompletionOption allows management of the mutation configuration using functional options.
type lessoncompletionOption func(*LessonCompletionMutation)

// newLessonCompletionMutation creates new mutation for the LessonCompletion entity.
func newLessonCompletionMutation(c config, op Op, opts ...lessoncompletionOption) *LessonCompletionMutation {
	m := &LessonCompletionMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonCompletion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonCompletionID sets the ID field of the mutation.
func withLessonCompletionID(id string) lessoncompletionOption {
	return func(m *LessonCompletionMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonCompletion
		)
		m.oldValue = func(ctx context.Context) (*LessonCompletion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonCompletion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonCompletion sets the old LessonCompletion of the mutation.
func withLessonCompletion(node *LessonCompletion) lessoncompletionOption {
	return func(m *LessonCompletionMutation) {
		m.oldValue = func(context.Context) (*LessonCompletion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonCompletionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonCompletionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LessonCompletion entities.
func (m *LessonCompletionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonCompletionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonCompletionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonCompletion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LessonCompletionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LessonCompletionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LessonCompletion entity.
// If the LessonCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LessonCompletionMutation) ResetUserID() {
	m.user_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonCompletionMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonCompletionMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonCompletion entity.
// If the LessonCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonCompletionMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (m *LessonCompletionMutation) SetTimeSpentSecs(i int) {
	m.time_spent_secs = &i
	m.addtime_spent_secs = nil
}

// TimeSpentSecs returns the value of the "time_spent_secs" field in the mutation.
func (m *LessonCompletionMutation) TimeSpentSecs() (r int, exists bool) {
	v := m.time_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSecs returns the old "time_spent_secs" field's value of the LessonCompletion entity.
// If the LessonCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionMutation) OldTimeSpentSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSecs: %w", err)
	}
	return oldValue.TimeSpentSecs, nil
}

// AddTimeSpentSecs adds i to the "time_spent_secs" field.
func (m *LessonCompletionMutation) AddTimeSpentSecs(i int) {
	if m.addtime_spent_secs != nil {
		*m.addtime_spent_secs += i
	} else {
		m.addtime_spent_secs = &i
	}
}

// AddedTimeSpentSecs returns the value that was added to the "time_spent_secs" field in this mutation.
func (m *LessonCompletionMutation) AddedTimeSpentSecs() (r int, exists bool) {
	v := m.addtime_spent_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSecs resets all changes to the "time_spent_secs" field.
func (m *LessonCompletionMutation) ResetTimeSpentSecs() {
	m.time_spent_secs = nil
	m.addtime_spent_secs = nil
}

// SetComprehensionScore sets the "comprehension_score" field.
func (m *LessonCompletionMutation) SetComprehensionScore(i int) {
	m.comprehension_score = &i
	m.addcomprehension_score = nil
}

// ComprehensionScore returns the value of the "comprehension_score" field in the mutation.
func (m *LessonCompletionMutation) ComprehensionScore() (r int, exists bool) {
	v := m.comprehension_score
	if v == nil {
		return
	}
	return *v, true
}

// OldComprehensionScore returns the old "comprehension_score" field's value of the LessonCompletion entity.
// If the LessonCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionMutation) OldComprehensionScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComprehensionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComprehensionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComprehensionScore: %w", err)
	}
	return oldValue.ComprehensionScore, nil
}

// AddComprehensionScore adds i to the "comprehension_score" field.
func (m *LessonCompletionMutation) AddComprehensionScore(i int) {
	if m.addcomprehension_score != nil {
		*m.addcomprehension_score += i
	} else {
		m.addcomprehension_score = &i
	}
}

// AddedComprehensionScore returns the value that was added to the "comprehension_score" field in this mutation.
func (m *LessonCompletionMutation) AddedComprehensionScore() (r int, exists bool) {
	v := m.addcomprehension_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetComprehensionScore resets all changes to the "comprehension_score" field.
func (m *LessonCompletionMutation) ResetComprehensionScore() {
	m.comprehension_score = nil
	m.addcomprehension_score = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LessonCompletionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LessonCompletionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LessonCompletion entity.
// If the LessonCompletion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonCompletionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LessonCompletionMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// Where appends a list predicates to the LessonCompletionMutation builder.
func (m *LessonCompletionMutation) Where(ps ...predicate.LessonCompletion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonCompletionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonCompletionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonCompletion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonCompletionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonCompletionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonCompletion).
func (m *LessonCompletionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonCompletionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, lessoncompletion.FieldUserID)
	}
	if m.lesson_id != nil {
		fields = append(fields, lessoncompletion.FieldLessonID)
	}
	if m.time_spent_secs != nil {
		fields = append(fields, lessoncompletion.FieldTimeSpentSecs)
	}
	if m.comprehension_score != nil {
		fields = append(fields, lessoncompletion.FieldComprehensionScore)
	}
	if m.completed_at != nil {
		fields = append(fields, lessoncompletion.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonCompletionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessoncompletion.FieldUserID:
		return m.UserID()
	case lessoncompletion.FieldLessonID:
		return m.LessonID()
	case lessoncompletion.FieldTimeSpentSecs:
		return m.TimeSpentSecs()
	case lessoncompletion.FieldComprehensionScore:
		return m.ComprehensionScore()
	case lessoncompletion.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonCompletionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessoncompletion.FieldUserID:
		return m.OldUserID(ctx)
	case lessoncompletion.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessoncompletion.FieldTimeSpentSecs:
		return m.OldTimeSpentSecs(ctx)
	case lessoncompletion.FieldComprehensionScore:
		return m.OldComprehensionScore(ctx)
	case lessoncompletion.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonCompletion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonCompletionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessoncompletion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case lessoncompletion.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessoncompletion.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSecs(v)
		return nil
	case lessoncompletion.FieldComprehensionScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComprehensionScore(v)
		return nil
	case lessoncompletion.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonCompletion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonCompletionMutation) AddedFields() []string {
	var fields []string
	if m.addtime_spent_secs != nil {
		fields = append(fields, lessoncompletion.FieldTimeSpentSecs)
	}
	if m.addcomprehension_score != nil {
		fields = append(fields, lessoncompletion.FieldComprehensionScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonCompletionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessoncompletion.FieldTimeSpentSecs:
		return m.AddedTimeSpentSecs()
	case lessoncompletion.FieldComprehensionScore:
		return m.AddedComprehensionScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonCompletionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessoncompletion.FieldTimeSpentSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSecs(v)
		return nil
	case lessoncompletion.FieldComprehensionScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComprehensionScore(v)
		return nil
	}
	return fmt.Errorf("unknown LessonCompletion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonCompletionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonCompletionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonCompletionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LessonCompletion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonCompletionMutation) ResetField(name string) error {
	switch name {
	case lessoncompletion.FieldUserID:
		m.ResetUserID()
		return nil
	case lessoncompletion.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessoncompletion.FieldTimeSpentSecs:
		m.ResetTimeSpentSecs()
		return nil
	case lessoncompletion.FieldComprehensionScore:
		m.ResetComprehensionScore()
		return nil
	case lessoncompletion.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonCompletion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonCompletionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonCompletionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonCompletionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonCompletionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonCompletionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonCompletionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonCompletionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonCompletion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonCompletionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonCompletion edge %s", name)
}

// ReviewScheduleMutation represents an operation that mutates the ReviewSchedule nodes in the graph.
type ReviewScheduleMutation struct {
	config
	op               Op
	typ              string
	id               *string
	user_id          *string
	item_id          *string
	item_type        *reviewschedule.ItemType
	review_at        *time.Time
	ease_factor      *float64
	addease_factor   *float64
	interval_days    *int
	addinterval_days *int
	repetitions      *int
	addrepetitions   *int
	last_reviewed_at *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewSchedule, error)
	predicates       []predicate.ReviewSchedule
}

var _ ent.Mutation = (*ReviewScheduleMutation)(nil)

// reviewscheduleOption allows management of the mutation configuration using functional options.
type reviewscheduleOption func(*ReviewScheduleMutation)

// newReviewScheduleMutation creates new mutation for the ReviewSchedule entity.
func newReviewScheduleMutation(c config, op Op, opts ...reviewscheduleOption) *ReviewScheduleMutation {
	m := &ReviewScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewScheduleID sets the ID field of the mutation.
func withReviewScheduleID(id string) reviewscheduleOption {
	return func(m *ReviewScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewSchedule
		)
		m.oldValue = func(ctx context.Context) (*ReviewSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewSchedule sets the old ReviewSchedule of the mutation.
func withReviewSchedule(node *ReviewSchedule) reviewscheduleOption {
	return func(m *ReviewScheduleMutation) {
		m.oldValue = func(context.Context) (*ReviewSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReviewSchedule entities.
func (m *ReviewScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewScheduleMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewScheduleMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewScheduleMutation) ResetUserID() {
	m.user_id = nil
}

// SetItemID sets the "item_id" field.
func (m *ReviewScheduleMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ReviewScheduleMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ReviewScheduleMutation) ResetItemID() {
	m.item_id = nil
}

// SetItemType sets the "item_type" field.
func (m *ReviewScheduleMutation) SetItemType(rt reviewschedule.ItemType) {
	m.item_type = &rt
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *ReviewScheduleMutation) ItemType() (r reviewschedule.ItemType, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldItemType(ctx context.Context) (v reviewschedule.ItemType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *ReviewScheduleMutation) ResetItemType() {
	m.item_type = nil
}

// SetReviewAt sets the "review_at" field.
func (m *ReviewScheduleMutation) SetReviewAt(t time.Time) {
	m.review_at = &t
}

// ReviewAt returns the value of the "review_at" field in the mutation.
func (m *ReviewScheduleMutation) ReviewAt() (r time.Time, exists bool) {
	v := m.review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewAt returns the old "review_at" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewAt: %w", err)
	}
	return oldValue.ReviewAt, nil
}

// ResetReviewAt resets all changes to the "review_at" field.
func (m *ReviewScheduleMutation) ResetReviewAt() {
	m.review_at = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ReviewScheduleMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ReviewScheduleMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ReviewScheduleMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ReviewScheduleMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ReviewScheduleMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewScheduleMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewScheduleMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewScheduleMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewScheduleMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewScheduleMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *ReviewScheduleMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *ReviewScheduleMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *ReviewScheduleMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *ReviewScheduleMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *ReviewScheduleMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *ReviewScheduleMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *ReviewScheduleMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the ReviewSchedule entity.
// If the ReviewSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewScheduleMutation) OldLastReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (m *ReviewScheduleMutation) ClearLastReviewedAt() {
	m.last_reviewed_at = nil
	m.clearedFields[reviewschedule.FieldLastReviewedAt] = struct{}{}
}

// LastReviewedAtCleared returns if the "last_reviewed_at" field was cleared in this mutation.
func (m *ReviewScheduleMutation) LastReviewedAtCleared() bool {
	_, ok := m.clearedFields[reviewschedule.FieldLastReviewedAt]
	return ok
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *ReviewScheduleMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
	delete(m.clearedFields, reviewschedule.FieldLastReviewedAt)
}

// Where appends a list predicates to the ReviewScheduleMutation builder.
func (m *ReviewScheduleMutation) Where(ps ...predicate.ReviewSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewSchedule).
func (m *ReviewScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewScheduleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, reviewschedule.FieldUserID)
	}
	if m.item_id != nil {
		fields = append(fields, reviewschedule.FieldItemID)
	}
	if m.item_type != nil {
		fields = append(fields, reviewschedule.FieldItemType)
	}
	if m.review_at != nil {
		fields = append(fields, reviewschedule.FieldReviewAt)
	}
	if m.ease_factor != nil {
		fields = append(fields, reviewschedule.FieldEaseFactor)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewschedule.FieldIntervalDays)
	}
	if m.repetitions != nil {
		fields = append(fields, reviewschedule.FieldRepetitions)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, reviewschedule.FieldLastReviewedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewschedule.FieldUserID:
		return m.UserID()
	case reviewschedule.FieldItemID:
		return m.ItemID()
	case reviewschedule.FieldItemType:
		return m.ItemType()
	case reviewschedule.FieldReviewAt:
		return m.ReviewAt()
	case reviewschedule.FieldEaseFactor:
		return m.EaseFactor()
	case reviewschedule.FieldIntervalDays:
		return m.IntervalDays()
	case reviewschedule.FieldRepetitions:
		return m.Repetitions()
	case reviewschedule.FieldLastReviewedAt:
		return m.LastReviewedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewschedule.FieldUserID:
		return m.OldUserID(ctx)
	case reviewschedule.FieldItemID:
		return m.OldItemID(ctx)
	case reviewschedule.FieldItemType:
		return m.OldItemType(ctx)
	case reviewschedule.FieldReviewAt:
		return m.OldReviewAt(ctx)
	case reviewschedule.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case reviewschedule.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewschedule.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case reviewschedule.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewschedule.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewschedule.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case reviewschedule.FieldItemType:
		v, ok := value.(reviewschedule.ItemType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case reviewschedule.FieldReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewAt(v)
		return nil
	case reviewschedule.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case reviewschedule.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewschedule.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case reviewschedule.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addease_factor != nil {
		fields = append(fields, reviewschedule.FieldEaseFactor)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewschedule.FieldIntervalDays)
	}
	if m.addrepetitions != nil {
		fields = append(fields, reviewschedule.FieldRepetitions)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewschedule.FieldEaseFactor:
		return m.AddedEaseFactor()
	case reviewschedule.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewschedule.FieldRepetitions:
		return m.AddedRepetitions()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewschedule.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case reviewschedule.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewschedule.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewschedule.FieldLastReviewedAt) {
		fields = append(fields, reviewschedule.FieldLastReviewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewScheduleMutation) ClearField(name string) error {
	switch name {
	case reviewschedule.FieldLastReviewedAt:
		m.ClearLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewScheduleMutation) ResetField(name string) error {
	switch name {
	case reviewschedule.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewschedule.FieldItemID:
		m.ResetItemID()
		return nil
	case reviewschedule.FieldItemType:
		m.ResetItemType()
		return nil
	case reviewschedule.FieldReviewAt:
		m.ResetReviewAt()
		return nil
	case reviewschedule.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case reviewschedule.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewschedule.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case reviewschedule.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewSchedule edge %s", name)
}

// SkillMutation represents an operation that mutates the Skill nodes in the graph.
type SkillMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	category_id          *string
	name                 *string
	difficulty           *skill.Difficulty
	xp_reward            *int
	addxp_reward         *int
	mastery_threshold    *int
	addmastery_threshold *int
	active               *bool
	prerequisites        *[]string
	appendprerequisites  []string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Skill, error)
	predicates           []predicate.Skill
}

var _ ent.Mutation = (*SkillMutation)(nil)

// skillOption allows management of the mutation configuration using functional options.
type skillOption func(*SkillMutation)

// newSkillMutation creates new mutation for the Skill entity.
func newSkillMutation(c config, op Op, opts ...skillOption) *SkillMutation {
	m := &SkillMutation{
		config:        c,
		op:            op,
		typ:           TypeSkill,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillID sets the ID field of the mutation.
func withSkillID(id string) skillOption {
	return func(m *SkillMutation) {
		var (
			err   error
			once  sync.Once
			value *Skill
		)
		m.oldValue = func(ctx context.Context) (*Skill, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Skill.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkill sets the old Skill of the mutation.
func withSkill(node *Skill) skillOption {
	return func(m *SkillMutation) {
		m.oldValue = func(context.Context) (*Skill, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Skill entities.
func (m *SkillMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Skill.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryID sets the "category_id" field.
func (m *SkillMutation) SetCategoryID(s string) {
	m.category_id = &s
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *SkillMutation) CategoryID() (r string, exists bool) {
	v := m.category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldCategoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *SkillMutation) ResetCategoryID() {
	m.category_id = nil
}

// SetName sets the "name" field.
func (m *SkillMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SkillMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SkillMutation) ResetName() {
	m.name = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *SkillMutation) SetDifficulty(s skill.Difficulty) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *SkillMutation) Difficulty() (r skill.Difficulty, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldDifficulty(ctx context.Context) (v skill.Difficulty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *SkillMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetXpReward sets the "xp_reward" field.
func (m *SkillMutation) SetXpReward(i int) {
	m.xp_reward = &i
	m.addxp_reward = nil
}

// XpReward returns the value of the "xp_reward" field in the mutation.
func (m *SkillMutation) XpReward() (r int, exists bool) {
	v := m.xp_reward
	if v == nil {
		return
	}
	return *v, true
}

// OldXpReward returns the old "xp_reward" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldXpReward(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpReward is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpReward requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpReward: %w", err)
	}
	return oldValue.XpReward, nil
}

// AddXpReward adds i to the "xp_reward" field.
func (m *SkillMutation) AddXpReward(i int) {
	if m.addxp_reward != nil {
		*m.addxp_reward += i
	} else {
		m.addxp_reward = &i
	}
}

// AddedXpReward returns the value that was added to the "xp_reward" field in this mutation.
func (m *SkillMutation) AddedXpReward() (r int, exists bool) {
	v := m.addxp_reward
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpReward resets all changes to the "xp_reward" field.
func (m *SkillMutation) ResetXpReward() {
	m.xp_reward = nil
	m.addxp_reward = nil
}

// SetMasteryThreshold sets the "mastery_threshold" field.
func (m *SkillMutation) SetMasteryThreshold(i int) {
	m.mastery_threshold = &i
	m.addmastery_threshold = nil
}

// MasteryThreshold returns the value of the "mastery_threshold" field in the mutation.
func (m *SkillMutation) MasteryThreshold() (r int, exists bool) {
	v := m.mastery_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryThreshold returns the old "mastery_threshold" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldMasteryThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryThreshold: %w", err)
	}
	return oldValue.MasteryThreshold, nil
}

// AddMasteryThreshold adds i to the "mastery_threshold" field.
func (m *SkillMutation) AddMasteryThreshold(i int) {
	if m.addmastery_threshold != nil {
		*m.addmastery_threshold += i
	} else {
		m.addmastery_threshold = &i
	}
}

// AddedMasteryThreshold returns the value that was added to the "mastery_threshold" field in this mutation.
func (m *SkillMutation) AddedMasteryThreshold() (r int, exists bool) {
	v := m.addmastery_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryThreshold resets all changes to the "mastery_threshold" field.
func (m *SkillMutation) ResetMasteryThreshold() {
	m.mastery_threshold = nil
	m.addmastery_threshold = nil
}

// SetActive sets the "active" field.
func (m *SkillMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SkillMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SkillMutation) ResetActive() {
	m.active = nil
}

// SetPrerequisites sets the "prerequisites" field.
func (m *SkillMutation) SetPrerequisites(s []string) {
	m.prerequisites = &s
	m.appendprerequisites = nil
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *SkillMutation) Prerequisites() (r []string, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the Skill entity.
// If the Skill object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillMutation) OldPrerequisites(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// AppendPrerequisites adds s to the "prerequisites" field.
func (m *SkillMutation) AppendPrerequisites(s []string) {
	m.appendprerequisites = append(m.appendprerequisites, s...)
}

// AppendedPrerequisites returns the list of values that were appended to the "prerequisites" field in this mutation.
func (m *SkillMutation) AppendedPrerequisites() ([]string, bool) {
	if len(m.appendprerequisites) == 0 {
		return nil, false
	}
	return m.appendprerequisites, true
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (m *SkillMutation) ClearPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	m.clearedFields[skill.FieldPrerequisites] = struct{}{}
}

// PrerequisitesCleared returns if the "prerequisites" field was cleared in this mutation.
func (m *SkillMutation) PrerequisitesCleared() bool {
	_, ok := m.clearedFields[skill.FieldPrerequisites]
	return ok
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *SkillMutation) ResetPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	delete(m.clearedFields, skill.FieldPrerequisites)
}

// Where appends a list predicates to the SkillMutation builder.
func (m *SkillMutation) Where(ps ...predicate.Skill) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Skill, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Skill).
func (m *SkillMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.category_id != nil {
		fields = append(fields, skill.FieldCategoryID)
	}
	if m.name != nil {
		fields = append(fields, skill.FieldName)
	}
	if m.difficulty != nil {
		fields = append(fields, skill.FieldDifficulty)
	}
	if m.xp_reward != nil {
		fields = append(fields, skill.FieldXpReward)
	}
	if m.mastery_threshold != nil {
		fields = append(fields, skill.FieldMasteryThreshold)
	}
	if m.active != nil {
		fields = append(fields, skill.FieldActive)
	}
	if m.prerequisites != nil {
		fields = append(fields, skill.FieldPrerequisites)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldCategoryID:
		return m.CategoryID()
	case skill.FieldName:
		return m.Name()
	case skill.FieldDifficulty:
		return m.Difficulty()
	case skill.FieldXpReward:
		return m.XpReward()
	case skill.FieldMasteryThreshold:
		return m.MasteryThreshold()
	case skill.FieldActive:
		return m.Active()
	case skill.FieldPrerequisites:
		return m.Prerequisites()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skill.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case skill.FieldName:
		return m.OldName(ctx)
	case skill.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case skill.FieldXpReward:
		return m.OldXpReward(ctx)
	case skill.FieldMasteryThreshold:
		return m.OldMasteryThreshold(ctx)
	case skill.FieldActive:
		return m.OldActive(ctx)
	case skill.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	}
	return nil, fmt.Errorf("unknown Skill field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skill.FieldCategoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case skill.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case skill.FieldDifficulty:
		v, ok := value.(skill.Difficulty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case skill.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpReward(v)
		return nil
	case skill.FieldMasteryThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryThreshold(v)
		return nil
	case skill.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case skill.FieldPrerequisites:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillMutation) AddedFields() []string {
	var fields []string
	if m.addxp_reward != nil {
		fields = append(fields, skill.FieldXpReward)
	}
	if m.addmastery_threshold != nil {
		fields = append(fields, skill.FieldMasteryThreshold)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skill.FieldXpReward:
		return m.AddedXpReward()
	case skill.FieldMasteryThreshold:
		return m.AddedMasteryThreshold()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skill.FieldXpReward:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpReward(v)
		return nil
	case skill.FieldMasteryThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryThreshold(v)
		return nil
	}
	return fmt.Errorf("unknown Skill numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(skill.FieldPrerequisites) {
		fields = append(fields, skill.FieldPrerequisites)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillMutation) ClearField(name string) error {
	switch name {
	case skill.FieldPrerequisites:
		m.ClearPrerequisites()
		return nil
	}
	return fmt.Errorf("unknown Skill nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillMutation) ResetField(name string) error {
	switch name {
	case skill.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case skill.FieldName:
		m.ResetName()
		return nil
	case skill.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case skill.FieldXpReward:
		m.ResetXpReward()
		return nil
	case skill.FieldMasteryThreshold:
		m.ResetMasteryThreshold()
		return nil
	case skill.FieldActive:
		m.ResetActive()
		return nil
	case skill.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	}
	return fmt.Errorf("unknown Skill field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Skill unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Skill edge %s", name)
}

// SkillCategoryMutation represents an operation that mutates the SkillCategory nodes in the graph.
type SkillCategoryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	name             *string
	display_order    *int
	adddisplay_order *int
	active           *bool
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SkillCategory, error)
	predicates       []predicate.SkillCategory
}

var _ ent.Mutation = (*SkillCategoryMutation)(nil)

// skillcategoryOption allows management of the mutation configuration using functional options.
type skillcategoryOption func(*SkillCategoryMutation)

// newSkillCategoryMutation creates new mutation for the SkillCategory entity.
func newSkillCategoryMutation(c config, op Op, opts ...skillcategoryOption) *SkillCategoryMutation {
	m := &SkillCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSkillCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSkillCategoryID sets the ID field of the mutation.
func withSkillCategoryID(id string) skillcategoryOption {
	return func(m *SkillCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SkillCategory
		)
		m.oldValue = func(ctx context.Context) (*SkillCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SkillCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSkillCategory sets the old SkillCategory of the mutation.
func withSkillCategory(node *SkillCategory) skillcategoryOption {
	return func(m *SkillCategoryMutation) {
		m.oldValue = func(context.Context) (*SkillCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SkillCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SkillCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SkillCategory entities.
func (m *SkillCategoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SkillCategoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SkillCategoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SkillCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SkillCategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SkillCategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SkillCategory entity.
// If the SkillCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillCategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SkillCategoryMutation) ResetName() {
	m.name = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *SkillCategoryMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *SkillCategoryMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the SkillCategory entity.
// If the SkillCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillCategoryMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *SkillCategoryMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *SkillCategoryMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *SkillCategoryMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetActive sets the "active" field.
func (m *SkillCategoryMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *SkillCategoryMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the SkillCategory entity.
// If the SkillCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SkillCategoryMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *SkillCategoryMutation) ResetActive() {
	m.active = nil
}

// Where appends a list predicates to the SkillCategoryMutation builder.
func (m *SkillCategoryMutation) Where(ps ...predicate.SkillCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SkillCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SkillCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SkillCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SkillCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SkillCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SkillCategory).
func (m *SkillCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SkillCategoryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, skillcategory.FieldName)
	}
	if m.display_order != nil {
		fields = append(fields, skillcategory.FieldDisplayOrder)
	}
	if m.active != nil {
		fields = append(fields, skillcategory.FieldActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SkillCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case skillcategory.FieldName:
		return m.Name()
	case skillcategory.FieldDisplayOrder:
		return m.DisplayOrder()
	case skillcategory.FieldActive:
		return m.Active()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SkillCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case skillcategory.FieldName:
		return m.OldName(ctx)
	case skillcategory.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case skillcategory.FieldActive:
		return m.OldActive(ctx)
	}
	return nil, fmt.Errorf("unknown SkillCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case skillcategory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case skillcategory.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case skillcategory.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	}
	return fmt.Errorf("unknown SkillCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SkillCategoryMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, skillcategory.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SkillCategoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case skillcategory.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SkillCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case skillcategory.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown SkillCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SkillCategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SkillCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SkillCategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SkillCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SkillCategoryMutation) ResetField(name string) error {
	switch name {
	case skillcategory.FieldName:
		m.ResetName()
		return nil
	case skillcategory.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case skillcategory.FieldActive:
		m.ResetActive()
		return nil
	}
	return fmt.Errorf("unknown SkillCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SkillCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SkillCategoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SkillCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SkillCategoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SkillCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SkillCategoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SkillCategoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SkillCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SkillCategoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SkillCategory edge %s", name)
}

// UserSkillProgressMutation represents an operation that mutates the UserSkillProgress nodes in the graph.
type UserSkillProgressMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	user_id                *string
	skill_id               *string
	mastery_level          *int
	addmastery_level       *int
	is_unlocked            *bool
	is_mastered            *bool
	total_xp_earned        *int
	addtotal_xp_earned     *int
	lessons_completed      *int
	addlessons_completed   *int
	exercises_completed    *int
	addexercises_completed *int
	first_unlocked_at      *time.Time
	mastered_at            *time.Time
	last_practiced_at      *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*UserSkillProgress, error)
	predicates             []predicate.UserSkillProgress
}

var _ ent.Mutation = (*UserSkillProgressMutation)(nil)

// userskillprogressOption allows management of the mutation configuration using functional options.
type userskillprogressOption func(*UserSkillProgressMutation)

// newUserSkillProgressMutation creates new mutation for the UserSkillProgress entity.
func newUserSkillProgressMutation(c config, op Op, opts ...userskillprogressOption) *UserSkillProgressMutation {
	m := &UserSkillProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSkillProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSkillProgressID sets the ID field of the mutation.
func withUserSkillProgressID(id string) userskillprogressOption {
	return func(m *UserSkillProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSkillProgress
		)
		m.oldValue = func(ctx context.Context) (*UserSkillProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSkillProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSkillProgress sets the old UserSkillProgress of the mutation.
func withUserSkillProgress(node *UserSkillProgress) userskillprogressOption {
	return func(m *UserSkillProgressMutation) {
		m.oldValue = func(context.Context) (*UserSkillProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSkillProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSkillProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSkillProgress entities.
func (m *UserSkillProgressMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSkillProgressMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSkillProgressMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSkillProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserSkillProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSkillProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSkillProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetSkillID sets the "skill_id" field.
func (m *UserSkillProgressMutation) SetSkillID(s string) {
	m.skill_id = &s
}

// SkillID returns the value of the "skill_id" field in the mutation.
func (m *UserSkillProgressMutation) SkillID() (r string, exists bool) {
	v := m.skill_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillID returns the old "skill_id" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldSkillID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillID: %w", err)
	}
	return oldValue.SkillID, nil
}

// ResetSkillID resets all changes to the "skill_id" field.
func (m *UserSkillProgressMutation) ResetSkillID() {
	m.skill_id = nil
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *UserSkillProgressMutation) SetMasteryLevel(i int) {
	m.mastery_level = &i
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *UserSkillProgressMutation) MasteryLevel() (r int, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldMasteryLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds i to the "mastery_level" field.
func (m *UserSkillProgressMutation) AddMasteryLevel(i int) {
	if m.addmastery_level != nil {
		*m.addmastery_level += i
	} else {
		m.addmastery_level = &i
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *UserSkillProgressMutation) AddedMasteryLevel() (r int, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *UserSkillProgressMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// SetIsUnlocked sets the "is_unlocked" field.
func (m *UserSkillProgressMutation) SetIsUnlocked(b bool) {
	m.is_unlocked = &b
}

// IsUnlocked returns the value of the "is_unlocked" field in the mutation.
func (m *UserSkillProgressMutation) IsUnlocked() (r bool, exists bool) {
	v := m.is_unlocked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsUnlocked returns the old "is_unlocked" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldIsUnlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsUnlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsUnlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsUnlocked: %w", err)
	}
	return oldValue.IsUnlocked, nil
}

// ResetIsUnlocked resets all changes to the "is_unlocked" field.
func (m *UserSkillProgressMutation) ResetIsUnlocked() {
	m.is_unlocked = nil
}

// SetIsMastered sets the "is_mastered" field.
func (m *UserSkillProgressMutation) SetIsMastered(b bool) {
	m.is_mastered = &b
}

// IsMastered returns the value of the "is_mastered" field in the mutation.
func (m *UserSkillProgressMutation) IsMastered() (r bool, exists bool) {
	v := m.is_mastered
	if v == nil {
		return
	}
	return *v, true
}

// OldIsMastered returns the old "is_mastered" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldIsMastered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsMastered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsMastered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsMastered: %w", err)
	}
	return oldValue.IsMastered, nil
}

// ResetIsMastered resets all changes to the "is_mastered" field.
func (m *UserSkillProgressMutation) ResetIsMastered() {
	m.is_mastered = nil
}

// SetTotalXpEarned sets the "total_xp_earned" field.
func (m *UserSkillProgressMutation) SetTotalXpEarned(i int) {
	m.total_xp_earned = &i
	m.addtotal_xp_earned = nil
}

// TotalXpEarned returns the value of the "total_xp_earned" field in the mutation.
func (m *UserSkillProgressMutation) TotalXpEarned() (r int, exists bool) {
	v := m.total_xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalXpEarned returns the old "total_xp_earned" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldTotalXpEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalXpEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalXpEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalXpEarned: %w", err)
	}
	return oldValue.TotalXpEarned, nil
}

// AddTotalXpEarned adds i to the "total_xp_earned" field.
func (m *UserSkillProgressMutation) AddTotalXpEarned(i int) {
	if m.addtotal_xp_earned != nil {
		*m.addtotal_xp_earned += i
	} else {
		m.addtotal_xp_earned = &i
	}
}

// AddedTotalXpEarned returns the value that was added to the "total_xp_earned" field in this mutation.
func (m *UserSkillProgressMutation) AddedTotalXpEarned() (r int, exists bool) {
	v := m.addtotal_xp_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalXpEarned resets all changes to the "total_xp_earned" field.
func (m *UserSkillProgressMutation) ResetTotalXpEarned() {
	m.total_xp_earned = nil
	m.addtotal_xp_earned = nil
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (m *UserSkillProgressMutation) SetLessonsCompleted(i int) {
	m.lessons_completed = &i
	m.addlessons_completed = nil
}

// LessonsCompleted returns the value of the "lessons_completed" field in the mutation.
func (m *UserSkillProgressMutation) LessonsCompleted() (r int, exists bool) {
	v := m.lessons_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonsCompleted returns the old "lessons_completed" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldLessonsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonsCompleted: %w", err)
	}
	return oldValue.LessonsCompleted, nil
}

// AddLessonsCompleted adds i to the "lessons_completed" field.
func (m *UserSkillProgressMutation) AddLessonsCompleted(i int) {
	if m.addlessons_completed != nil {
		*m.addlessons_completed += i
	} else {
		m.addlessons_completed = &i
	}
}

// AddedLessonsCompleted returns the value that was added to the "lessons_completed" field in this mutation.
func (m *UserSkillProgressMutation) AddedLessonsCompleted() (r int, exists bool) {
	v := m.addlessons_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetLessonsCompleted resets all changes to the "lessons_completed" field.
func (m *UserSkillProgressMutation) ResetLessonsCompleted() {
	m.lessons_completed = nil
	m.addlessons_completed = nil
}

// SetExercisesCompleted sets the "exercises_completed" field.
func (m *UserSkillProgressMutation) SetExercisesCompleted(i int) {
	m.exercises_completed = &i
	m.addexercises_completed = nil
}

// ExercisesCompleted returns the value of the "exercises_completed" field in the mutation.
func (m *UserSkillProgressMutation) ExercisesCompleted() (r int, exists bool) {
	v := m.exercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldExercisesCompleted returns the old "exercises_completed" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldExercisesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercisesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercisesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercisesCompleted: %w", err)
	}
	return oldValue.ExercisesCompleted, nil
}

// AddExercisesCompleted adds i to the "exercises_completed" field.
func (m *UserSkillProgressMutation) AddExercisesCompleted(i int) {
	if m.addexercises_completed != nil {
		*m.addexercises_completed += i
	} else {
		m.addexercises_completed = &i
	}
}

// AddedExercisesCompleted returns the value that was added to the "exercises_completed" field in this mutation.
func (m *UserSkillProgressMutation) AddedExercisesCompleted() (r int, exists bool) {
	v := m.addexercises_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetExercisesCompleted resets all changes to the "exercises_completed" field.
func (m *UserSkillProgressMutation) ResetExercisesCompleted() {
	m.exercises_completed = nil
	m.addexercises_completed = nil
}

// SetFirstUnlockedAt sets the "first_unlocked_at" field.
func (m *UserSkillProgressMutation) SetFirstUnlockedAt(t time.Time) {
	m.first_unlocked_at = &t
}

// FirstUnlockedAt returns the value of the "first_unlocked_at" field in the mutation.
func (m *UserSkillProgressMutation) FirstUnlockedAt() (r time.Time, exists bool) {
	v := m.first_unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstUnlockedAt returns the old "first_unlocked_at" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldFirstUnlockedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstUnlockedAt: %w", err)
	}
	return oldValue.FirstUnlockedAt, nil
}

// ClearFirstUnlockedAt clears the value of the "first_unlocked_at" field.
func (m *UserSkillProgressMutation) ClearFirstUnlockedAt() {
	m.first_unlocked_at = nil
	m.clearedFields[userskillprogress.FieldFirstUnlockedAt] = struct{}{}
}

// FirstUnlockedAtCleared returns if the "first_unlocked_at" field was cleared in this mutation.
func (m *UserSkillProgressMutation) FirstUnlockedAtCleared() bool {
	_, ok := m.clearedFields[userskillprogress.FieldFirstUnlockedAt]
	return ok
}

// ResetFirstUnlockedAt resets all changes to the "first_unlocked_at" field.
func (m *UserSkillProgressMutation) ResetFirstUnlockedAt() {
	m.first_unlocked_at = nil
	delete(m.clearedFields, userskillprogress.FieldFirstUnlockedAt)
}

// SetMasteredAt sets the "mastered_at" field.
func (m *UserSkillProgressMutation) SetMasteredAt(t time.Time) {
	m.mastered_at = &t
}

// MasteredAt returns the value of the "mastered_at" field in the mutation.
func (m *UserSkillProgressMutation) MasteredAt() (r time.Time, exists bool) {
	v := m.mastered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteredAt returns the old "mastered_at" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldMasteredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteredAt: %w", err)
	}
	return oldValue.MasteredAt, nil
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (m *UserSkillProgressMutation) ClearMasteredAt() {
	m.mastered_at = nil
	m.clearedFields[userskillprogress.FieldMasteredAt] = struct{}{}
}

// MasteredAtCleared returns if the "mastered_at" field was cleared in this mutation.
func (m *UserSkillProgressMutation) MasteredAtCleared() bool {
	_, ok := m.clearedFields[userskillprogress.FieldMasteredAt]
	return ok
}

// ResetMasteredAt resets all changes to the "mastered_at" field.
func (m *UserSkillProgressMutation) ResetMasteredAt() {
	m.mastered_at = nil
	delete(m.clearedFields, userskillprogress.FieldMasteredAt)
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (m *UserSkillProgressMutation) SetLastPracticedAt(t time.Time) {
	m.last_practiced_at = &t
}

// LastPracticedAt returns the value of the "last_practiced_at" field in the mutation.
func (m *UserSkillProgressMutation) LastPracticedAt() (r time.Time, exists bool) {
	v := m.last_practiced_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticedAt returns the old "last_practiced_at" field's value of the UserSkillProgress entity.
// If the UserSkillProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSkillProgressMutation) OldLastPracticedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticedAt: %w", err)
	}
	return oldValue.LastPracticedAt, nil
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (m *UserSkillProgressMutation) ClearLastPracticedAt() {
	m.last_practiced_at = nil
	m.clearedFields[userskillprogress.FieldLastPracticedAt] = struct{}{}
}

// LastPracticedAtCleared returns if the "last_practiced_at" field was cleared in this mutation.
func (m *UserSkillProgressMutation) LastPracticedAtCleared() bool {
	_, ok := m.clearedFields[userskillprogress.FieldLastPracticedAt]
	return ok
}

// ResetLastPracticedAt resets all changes to the "last_practiced_at" field.
func (m *UserSkillProgressMutation) ResetLastPracticedAt() {
	m.last_practiced_at = nil
	delete(m.clearedFields, userskillprogress.FieldLastPracticedAt)
}

// Where appends a list predicates to the UserSkillProgressMutation builder.
func (m *UserSkillProgressMutation) Where(ps ...predicate.UserSkillProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSkillProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSkillProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSkillProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSkillProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSkillProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSkillProgress).
func (m *UserSkillProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSkillProgressMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.user_id != nil {
		fields = append(fields, userskillprogress.FieldUserID)
	}
	if m.skill_id != nil {
		fields = append(fields, userskillprogress.FieldSkillID)
	}
	if m.mastery_level != nil {
		fields = append(fields, userskillprogress.FieldMasteryLevel)
	}
	if m.is_unlocked != nil {
		fields = append(fields, userskillprogress.FieldIsUnlocked)
	}
	if m.is_mastered != nil {
		fields = append(fields, userskillprogress.FieldIsMastered)
	}
	if m.total_xp_earned != nil {
		fields = append(fields, userskillprogress.FieldTotalXpEarned)
	}
	if m.lessons_completed != nil {
		fields = append(fields, userskillprogress.FieldLessonsCompleted)
	}
	if m.exercises_completed != nil {
		fields = append(fields, userskillprogress.FieldExercisesCompleted)
	}
	if m.first_unlocked_at != nil {
		fields = append(fields, userskillprogress.FieldFirstUnlockedAt)
	}
	if m.mastered_at != nil {
		fields = append(fields, userskillprogress.FieldMasteredAt)
	}
	if m.last_practiced_at != nil {
		fields = append(fields, userskillprogress.FieldLastPracticedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSkillProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userskillprogress.FieldUserID:
		return m.UserID()
	case userskillprogress.FieldSkillID:
		return m.SkillID()
	case userskillprogress.FieldMasteryLevel:
		return m.MasteryLevel()
	case userskillprogress.FieldIsUnlocked:
		return m.IsUnlocked()
	case userskillprogress.FieldIsMastered:
		return m.IsMastered()
	case userskillprogress.FieldTotalXpEarned:
		return m.TotalXpEarned()
	case userskillprogress.FieldLessonsCompleted:
		return m.LessonsCompleted()
	case userskillprogress.FieldExercisesCompleted:
		return m.ExercisesCompleted()
	case userskillprogress.FieldFirstUnlockedAt:
		return m.FirstUnlockedAt()
	case userskillprogress.FieldMasteredAt:
		return m.MasteredAt()
	case userskillprogress.FieldLastPracticedAt:
		return m.LastPracticedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSkillProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userskillprogress.FieldUserID:
		return m.OldUserID(ctx)
	case userskillprogress.FieldSkillID:
		return m.OldSkillID(ctx)
	case userskillprogress.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case userskillprogress.FieldIsUnlocked:
		return m.OldIsUnlocked(ctx)
	case userskillprogress.FieldIsMastered:
		return m.OldIsMastered(ctx)
	case userskillprogress.FieldTotalXpEarned:
		return m.OldTotalXpEarned(ctx)
	case userskillprogress.FieldLessonsCompleted:
		return m.OldLessonsCompleted(ctx)
	case userskillprogress.FieldExercisesCompleted:
		return m.OldExercisesCompleted(ctx)
	case userskillprogress.FieldFirstUnlockedAt:
		return m.OldFirstUnlockedAt(ctx)
	case userskillprogress.FieldMasteredAt:
		return m.OldMasteredAt(ctx)
	case userskillprogress.FieldLastPracticedAt:
		return m.OldLastPracticedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSkillProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSkillProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userskillprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userskillprogress.FieldSkillID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillID(v)
		return nil
	case userskillprogress.FieldMasteryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case userskillprogress.FieldIsUnlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsUnlocked(v)
		return nil
	case userskillprogress.FieldIsMastered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsMastered(v)
		return nil
	case userskillprogress.FieldTotalXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalXpEarned(v)
		return nil
	case userskillprogress.FieldLessonsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonsCompleted(v)
		return nil
	case userskillprogress.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercisesCompleted(v)
		return nil
	case userskillprogress.FieldFirstUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstUnlockedAt(v)
		return nil
	case userskillprogress.FieldMasteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteredAt(v)
		return nil
	case userskillprogress.FieldLastPracticedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSkillProgressMutation) AddedFields() []string {
	var fields []string
	if m.addmastery_level != nil {
		fields = append(fields, userskillprogress.FieldMasteryLevel)
	}
	if m.addtotal_xp_earned != nil {
		fields = append(fields, userskillprogress.FieldTotalXpEarned)
	}
	if m.addlessons_completed != nil {
		fields = append(fields, userskillprogress.FieldLessonsCompleted)
	}
	if m.addexercises_completed != nil {
		fields = append(fields, userskillprogress.FieldExercisesCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSkillProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userskillprogress.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	case userskillprogress.FieldTotalXpEarned:
		return m.AddedTotalXpEarned()
	case userskillprogress.FieldLessonsCompleted:
		return m.AddedLessonsCompleted()
	case userskillprogress.FieldExercisesCompleted:
		return m.AddedExercisesCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSkillProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userskillprogress.FieldMasteryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	case userskillprogress.FieldTotalXpEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalXpEarned(v)
		return nil
	case userskillprogress.FieldLessonsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLessonsCompleted(v)
		return nil
	case userskillprogress.FieldExercisesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExercisesCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSkillProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userskillprogress.FieldFirstUnlockedAt) {
		fields = append(fields, userskillprogress.FieldFirstUnlockedAt)
	}
	if m.FieldCleared(userskillprogress.FieldMasteredAt) {
		fields = append(fields, userskillprogress.FieldMasteredAt)
	}
	if m.FieldCleared(userskillprogress.FieldLastPracticedAt) {
		fields = append(fields, userskillprogress.FieldLastPracticedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSkillProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSkillProgressMutation) ClearField(name string) error {
	switch name {
	case userskillprogress.FieldFirstUnlockedAt:
		m.ClearFirstUnlockedAt()
		return nil
	case userskillprogress.FieldMasteredAt:
		m.ClearMasteredAt()
		return nil
	case userskillprogress.FieldLastPracticedAt:
		m.ClearLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSkillProgressMutation) ResetField(name string) error {
	switch name {
	case userskillprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case userskillprogress.FieldSkillID:
		m.ResetSkillID()
		return nil
	case userskillprogress.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case userskillprogress.FieldIsUnlocked:
		m.ResetIsUnlocked()
		return nil
	case userskillprogress.FieldIsMastered:
		m.ResetIsMastered()
		return nil
	case userskillprogress.FieldTotalXpEarned:
		m.ResetTotalXpEarned()
		return nil
	case userskillprogress.FieldLessonsCompleted:
		m.ResetLessonsCompleted()
		return nil
	case userskillprogress.FieldExercisesCompleted:
		m.ResetExercisesCompleted()
		return nil
	case userskillprogress.FieldFirstUnlockedAt:
		m.ResetFirstUnlockedAt()
		return nil
	case userskillprogress.FieldMasteredAt:
		m.ResetMasteredAt()
		return nil
	case userskillprogress.FieldLastPracticedAt:
		m.ResetLastPracticedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSkillProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSkillProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSkillProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSkillProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSkillProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSkillProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSkillProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSkillProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserSkillProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSkillProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserSkillProgress edge %s", name)
}
