// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/skillforge/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/exercise"
	"github.com/abhisek/skillforge/ent/exerciseattempt"
	"github.com/abhisek/skillforge/ent/lesson"
	"github.com/abhisek/skillforge/ent/lessoncompletion"
	"github.com/abhisek/skillforge/ent/llmrequestlog"
	"github.com/abhisek/skillforge/ent/reviewschedule"
	"github.com/abhisek/skillforge/ent/skill"
	"github.com/abhisek/skillforge/ent/skillcategory"
	"github.com/abhisek/skillforge/ent/userskillprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Exercise is the client for interacting with the Exercise builders.
	Exercise *ExerciseClient
	// ExerciseAttempt is the client for interacting with the ExerciseAttempt builders.
	ExerciseAttempt *ExerciseAttemptClient
	// LLMRequestLog is the client for interacting with the LLMRequestLog builders.
	LLMRequestLog *LLMRequestLogClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// LessonCompletion is the client for interacting with the LessonCompletion builders.
	LessonCompletion *LessonCompletionClient
	// ReviewSchedule is the client for interacting with the ReviewSchedule builders.
	ReviewSchedule *ReviewScheduleClient
	// Skill is the client for interacting with the Skill builders.
	Skill *SkillClient
	// SkillCategory is the client for interacting with the SkillCategory builders.
	SkillCategory *SkillCategoryClient
	// UserSkillProgress is the client for interacting with the UserSkillProgress builders.
	UserSkillProgress *UserSkillProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Exercise = NewExerciseClient(c.config)
	c.ExerciseAttempt = NewExerciseAttemptClient(c.config)
	c.LLMRequestLog = NewLLMRequestLogClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.LessonCompletion = NewLessonCompletionClient(c.config)
	c.ReviewSchedule = NewReviewScheduleClient(c.config)
	c.Skill = NewSkillClient(c.config)
	c.SkillCategory = NewSkillCategoryClient(c.config)
	c.UserSkillProgress = NewUserSkillProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Exercise:          NewExerciseClient(cfg),
		ExerciseAttempt:   NewExerciseAttemptClient(cfg),
		LLMRequestLog:     NewLLMRequestLogClient(cfg),
		Lesson:            NewLessonClient(cfg),
		LessonCompletion:  NewLessonCompletionClient(cfg),
		ReviewSchedule:    NewReviewScheduleClient(cfg),
		Skill:             NewSkillClient(cfg),
		SkillCategory:     NewSkillCategoryClient(cfg),
		UserSkillProgress: NewUserSkillProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Exercise:          NewExerciseClient(cfg),
		ExerciseAttempt:   NewExerciseAttemptClient(cfg),
		LLMRequestLog:     NewLLMRequestLogClient(cfg),
		Lesson:            NewLessonClient(cfg),
		LessonCompletion:  NewLessonCompletionClient(cfg),
		ReviewSchedule:    NewReviewScheduleClient(cfg),
		Skill:             NewSkillClient(cfg),
		SkillCategory:     NewSkillCategoryClient(cfg),
		UserSkillProgress: NewUserSkillProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Exercise.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Exercise, c.ExerciseAttempt, c.LLMRequestLog, c.Lesson, c.LessonCompletion,
		c.ReviewSchedule, c.Skill, c.SkillCategory, c.UserSkillProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Exercise, c.ExerciseAttempt, c.LLMRequestLog, c.Lesson, c.LessonCompletion,
		c.ReviewSchedule, c.Skill, c.SkillCategory, c.UserSkillProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExerciseMutation:
		return c.Exercise.mutate(ctx, m)
	case *ExerciseAttemptMutation:
		return c.ExerciseAttempt.mutate(ctx, m)
	case *LLMRequestLogMutation:
		return c.LLMRequestLog.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *LessonCompletionMutation:
		return c.LessonCompletion.mutate(ctx, m)
	case *ReviewScheduleMutation:
		return c.ReviewSchedule.mutate(ctx, m)
	case *SkillMutation:
		return c.Skill.mutate(ctx, m)
	case *SkillCategoryMutation:
		return c.SkillCategory.mutate(ctx, m)
	case *UserSkillProgressMutation:
		return c.UserSkillProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExerciseClient is a client for the Exercise schema.
type ExerciseClient struct {
	config
}

// NewExerciseClient returns a client for the Exercise from the given config.
func NewExerciseClient(c config) *ExerciseClient {
	return &ExerciseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exercise.Hooks(f(g(h())))`.
func (c *ExerciseClient) Use(hooks ...Hook) {
	c.hooks.Exercise = append(c.hooks.Exercise, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exercise.Intercept(f(g(h())))`.
func (c *ExerciseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Exercise = append(c.inters.Exercise, interceptors...)
}

// Create returns a builder for creating a Exercise entity.
func (c *ExerciseClient) Create() *ExerciseCreate {
	mutation := newExerciseMutation(c.config, OpCreate)
	return &ExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Exercise entities.
func (c *ExerciseClient) CreateBulk(builders ...*ExerciseCreate) *ExerciseCreateBulk {
	return &ExerciseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseClient) MapCreateBulk(slice any, setFunc func(*ExerciseCreate, int)) *ExerciseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseCreateBulk{err: fmt.Errorf("calling to ExerciseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Exercise.
func (c *ExerciseClient) Update() *ExerciseUpdate {
	mutation := newExerciseMutation(c.config, OpUpdate)
	return &ExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseClient) UpdateOne(_m *Exercise) *ExerciseUpdateOne {
	mutation := newExerciseMutation(c.config, OpUpdateOne, withExercise(_m))
	return &ExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseClient) UpdateOneID(id string) *ExerciseUpdateOne {
	mutation := newExerciseMutation(c.config, OpUpdateOne, withExerciseID(id))
	return &ExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Exercise.
func (c *ExerciseClient) Delete() *ExerciseDelete {
	mutation := newExerciseMutation(c.config, OpDelete)
	return &ExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseClient) DeleteOne(_m *Exercise) *ExerciseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseClient) DeleteOneID(id string) *ExerciseDeleteOne {
	builder := c.Delete().Where(exercise.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseDeleteOne{builder}
}

// Query returns a query builder for Exercise.
func (c *ExerciseClient) Query() *ExerciseQuery {
	return &ExerciseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExercise},
		inters: c.Interceptors(),
	}
}

// Get returns a Exercise entity by its id.
func (c *ExerciseClient) Get(ctx context.Context, id string) (*Exercise, error) {
	return c.Query().Where(exercise.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseClient) GetX(ctx context.Context, id string) *Exercise {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExerciseClient) Hooks() []Hook {
	return c.hooks.Exercise
}

// Interceptors returns the client interceptors.
func (c *ExerciseClient) Interceptors() []Interceptor {
	return c.inters.Exercise
}

func (c *ExerciseClient) mutate(ctx context.Context, m *ExerciseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Exercise mutation op: %q", m.Op())
	}
}

// ExerciseAttemptClient is a client for the ExerciseAttempt schema.
type ExerciseAttemptClient struct {
	config
}

// NewExerciseAttemptClient returns a client for the ExerciseAttempt from the given config.
func NewExerciseAttemptClient(c config) *ExerciseAttemptClient {
	return &ExerciseAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exerciseattempt.Hooks(f(g(h())))`.
func (c *ExerciseAttemptClient) Use(hooks ...Hook) {
	c.hooks.ExerciseAttempt = append(c.hooks.ExerciseAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exerciseattempt.Intercept(f(g(h())))`.
func (c *ExerciseAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExerciseAttempt = append(c.inters.ExerciseAttempt, interceptors...)
}

// Create returns a builder for creating a ExerciseAttempt entity.
func (c *ExerciseAttemptClient) Create() *ExerciseAttemptCreate {
	mutation := newExerciseAttemptMutation(c.config, OpCreate)
	return &ExerciseAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExerciseAttempt entities.
func (c *ExerciseAttemptClient) CreateBulk(builders ...*ExerciseAttemptCreate) *ExerciseAttemptCreateBulk {
	return &ExerciseAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExerciseAttemptClient) MapCreateBulk(slice any, setFunc func(*ExerciseAttemptCreate, int)) *ExerciseAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExerciseAttemptCreateBulk{err: fmt.Errorf("calling to ExerciseAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExerciseAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExerciseAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExerciseAttempt.
func (c *ExerciseAttemptClient) Update() *ExerciseAttemptUpdate {
	mutation := newExerciseAttemptMutation(c.config, OpUpdate)
	return &ExerciseAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExerciseAttemptClient) UpdateOne(_m *ExerciseAttempt) *ExerciseAttemptUpdateOne {
	mutation := newExerciseAttemptMutation(c.config, OpUpdateOne, withExerciseAttempt(_m))
	return &ExerciseAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExerciseAttemptClient) UpdateOneID(id string) *ExerciseAttemptUpdateOne {
	mutation := newExerciseAttemptMutation(c.config, OpUpdateOne, withExerciseAttemptID(id))
	return &ExerciseAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExerciseAttempt.
func (c *ExerciseAttemptClient) Delete() *ExerciseAttemptDelete {
	mutation := newExerciseAttemptMutation(c.config, OpDelete)
	return &ExerciseAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExerciseAttemptClient) DeleteOne(_m *ExerciseAttempt) *ExerciseAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExerciseAttemptClient) DeleteOneID(id string) *ExerciseAttemptDeleteOne {
	builder := c.Delete().Where(exerciseattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExerciseAttemptDeleteOne{builder}
}

// Query returns a query builder for ExerciseAttempt.
func (c *ExerciseAttemptClient) Query() *ExerciseAttemptQuery {
	return &ExerciseAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExerciseAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a ExerciseAttempt entity by its id.
func (c *ExerciseAttemptClient) Get(ctx context.Context, id string) (*ExerciseAttempt, error) {
	return c.Query().Where(exerciseattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExerciseAttemptClient) GetX(ctx context.Context, id string) *ExerciseAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExerciseAttemptClient) Hooks() []Hook {
	return c.hooks.ExerciseAttempt
}

// Interceptors returns the client interceptors.
func (c *ExerciseAttemptClient) Interceptors() []Interceptor {
	return c.inters.ExerciseAttempt
}

func (c *ExerciseAttemptClient) mutate(ctx context.Context, m *ExerciseAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExerciseAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExerciseAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExerciseAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExerciseAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExerciseAttempt mutation op: %q", m.Op())
	}
}

// LLMRequestLogClient is a client for the LLMRequestLog schema.
type LLMRequestLogClient struct {
	config
}

// NewLLMRequestLogClient returns a client for the LLMRequestLog from the given config.
func NewLLMRequestLogClient(c config) *LLMRequestLogClient {
	return &LLMRequestLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestlog.Hooks(f(g(h())))`.
func (c *LLMRequestLogClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestLog = append(c.hooks.LLMRequestLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestlog.Intercept(f(g(h())))`.
func (c *LLMRequestLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestLog = append(c.inters.LLMRequestLog, interceptors...)
}

// Create returns a builder for creating a LLMRequestLog entity.
func (c *LLMRequestLogClient) Create() *LLMRequestLogCreate {
	mutation := newLLMRequestLogMutation(c.config, OpCreate)
	return &LLMRequestLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestLog entities.
func (c *LLMRequestLogClient) CreateBulk(builders ...*LLMRequestLogCreate) *LLMRequestLogCreateBulk {
	return &LLMRequestLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestLogClient) MapCreateBulk(slice any, setFunc func(*LLMRequestLogCreate, int)) *LLMRequestLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestLogCreateBulk{err: fmt.Errorf("calling to LLMRequestLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestLog.
func (c *LLMRequestLogClient) Update() *LLMRequestLogUpdate {
	mutation := newLLMRequestLogMutation(c.config, OpUpdate)
	return &LLMRequestLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestLogClient) UpdateOne(_m *LLMRequestLog) *LLMRequestLogUpdateOne {
	mutation := newLLMRequestLogMutation(c.config, OpUpdateOne, withLLMRequestLog(_m))
	return &LLMRequestLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestLogClient) UpdateOneID(id int) *LLMRequestLogUpdateOne {
	mutation := newLLMRequestLogMutation(c.config, OpUpdateOne, withLLMRequestLogID(id))
	return &LLMRequestLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestLog.
func (c *LLMRequestLogClient) Delete() *LLMRequestLogDelete {
	mutation := newLLMRequestLogMutation(c.config, OpDelete)
	return &LLMRequestLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestLogClient) DeleteOne(_m *LLMRequestLog) *LLMRequestLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestLogClient) DeleteOneID(id int) *LLMRequestLogDeleteOne {
	builder := c.Delete().Where(llmrequestlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestLogDeleteOne{builder}
}

// Query returns a query builder for LLMRequestLog.
func (c *LLMRequestLogClient) Query() *LLMRequestLogQuery {
	return &LLMRequestLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestLog},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestLog entity by its id.
func (c *LLMRequestLogClient) Get(ctx context.Context, id int) (*LLMRequestLog, error) {
	return c.Query().Where(llmrequestlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestLogClient) GetX(ctx context.Context, id int) *LLMRequestLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestLogClient) Hooks() []Hook {
	return c.hooks.LLMRequestLog
}

// Interceptors returns the client interceptors.
func (c *LLMRequestLogClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestLog
}

func (c *LLMRequestLogClient) mutate(ctx context.Context, m *LLMRequestLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestLog mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id string) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id string) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id string) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id string) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// LessonCompletionClient is a client for the LessonCompletion schema.
type LessonCompletionClient struct {
	config
}

// NewLessonCompletionClient returns a client for the LessonCompletion from the given config.
func NewLessonCompletionClient(c config) *LessonCompletionClient {
	return &LessonCompletionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessoncompletion.Hooks(f(g(h())))`.
func (c *LessonCompletionClient) Use(hooks ...Hook) {
	c.hooks.LessonCompletion = append(c.hooks.LessonCompletion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessoncompletion.Intercept(f(g(h())))`.
func (c *LessonCompletionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonCompletion = append(c.inters.LessonCompletion, interceptors...)
}

// Create returns a builder for creating a LessonCompletion entity.
func (c *LessonCompletionClient) Create() *LessonCompletionCreate {
	mutation := newLessonCompletionMutation(c.config, OpCreate)
	return &LessonCompletionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonCompletion entities.
func (c *LessonCompletionClient) CreateBulk(builders ...*LessonCompletionCreate) *LessonCompletionCreateBulk {
	return &LessonCompletionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonCompletionClient) MapCreateBulk(slice any, setFunc func(*LessonCompletionCreate, int)) *LessonCompletionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCompletionCreateBulk{err: fmt.Errorf("calling to LessonCompletionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCompletionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCompletionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonCompletion.
func (c *LessonCompletionClient) Update() *LessonCompletionUpdate {
	mutation := newLessonCompletionMutation(c.config, OpUpdate)
	return &LessonCompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonCompletionClient) UpdateOne(_m *LessonCompletion) *LessonCompletionUpdateOne {
	mutation := newLessonCompletionMutation(c.config, OpUpdateOne, withLessonCompletion(_m))
	return &LessonCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonCompletionClient) UpdateOneID(id string) *LessonCompletionUpdateOne {
	mutation := newLessonCompletionMutation(c.config, OpUpdateOne, withLessonCompletionID(id))
	return &LessonCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonCompletion.
func (c *LessonCompletionClient) Delete() *LessonCompletionDelete {
	mutation := newLessonCompletionMutation(c.config, OpDelete)
	return &LessonCompletionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonCompletionClient) DeleteOne(_m *LessonCompletion) *LessonCompletionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonCompletionClient) DeleteOneID(id string) *LessonCompletionDeleteOne {
	builder := c.Delete().Where(lessoncompletion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonCompletionDeleteOne{builder}
}

// Query returns a query builder for LessonCompletion.
func (c *LessonCompletionClient) Query() *LessonCompletionQuery {
	return &LessonCompletionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonCompletion},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonCompletion entity by its id.
func (c *LessonCompletionClient) Get(ctx context.Context, id string) (*LessonCompletion, error) {
	return c.Query().Where(lessoncompletion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonCompletionClient) GetX(ctx context.Context, id string) *LessonCompletion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonCompletionClient) Hooks() []Hook {
	return c.hooks.LessonCompletion
}

// Interceptors returns the client interceptors.
func (c *LessonCompletionClient) Interceptors() []Interceptor {
	return c.inters.LessonCompletion
}

func (c *LessonCompletionClient) mutate(ctx context.Context, m *LessonCompletionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCompletionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonCompletionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonCompletionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonCompletionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonCompletion mutation op: %q", m.Op())
	}
}

// ReviewScheduleClient is a client for the ReviewSchedule schema.
type ReviewScheduleClient struct {
	config
}

// NewReviewScheduleClient returns a client for the ReviewSchedule from the given config.
func NewReviewScheduleClient(c config) *ReviewScheduleClient {
	return &ReviewScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewschedule.Hooks(f(g(h())))`.
func (c *ReviewScheduleClient) Use(hooks ...Hook) {
	c.hooks.ReviewSchedule = append(c.hooks.ReviewSchedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewschedule.Intercept(f(g(h())))`.
func (c *ReviewScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewSchedule = append(c.inters.ReviewSchedule, interceptors...)
}

// Create returns a builder for creating a ReviewSchedule entity.
func (c *ReviewScheduleClient) Create() *ReviewScheduleCreate {
	mutation := newReviewScheduleMutation(c.config, OpCreate)
	return &ReviewScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewSchedule entities.
func (c *ReviewScheduleClient) CreateBulk(builders ...*ReviewScheduleCreate) *ReviewScheduleCreateBulk {
	return &ReviewScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewScheduleClient) MapCreateBulk(slice any, setFunc func(*ReviewScheduleCreate, int)) *ReviewScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewScheduleCreateBulk{err: fmt.Errorf("calling to ReviewScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewSchedule.
func (c *ReviewScheduleClient) Update() *ReviewScheduleUpdate {
	mutation := newReviewScheduleMutation(c.config, OpUpdate)
	return &ReviewScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewScheduleClient) UpdateOne(_m *ReviewSchedule) *ReviewScheduleUpdateOne {
	mutation := newReviewScheduleMutation(c.config, OpUpdateOne, withReviewSchedule(_m))
	return &ReviewScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewScheduleClient) UpdateOneID(id string) *ReviewScheduleUpdateOne {
	mutation := newReviewScheduleMutation(c.config, OpUpdateOne, withReviewScheduleID(id))
	return &ReviewScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewSchedule.
func (c *ReviewScheduleClient) Delete() *ReviewScheduleDelete {
	mutation := newReviewScheduleMutation(c.config, OpDelete)
	return &ReviewScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewScheduleClient) DeleteOne(_m *ReviewSchedule) *ReviewScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewScheduleClient) DeleteOneID(id string) *ReviewScheduleDeleteOne {
	builder := c.Delete().Where(reviewschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewScheduleDeleteOne{builder}
}

// Query returns a query builder for ReviewSchedule.
func (c *ReviewScheduleClient) Query() *ReviewScheduleQuery {
	return &ReviewScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewSchedule entity by its id.
func (c *ReviewScheduleClient) Get(ctx context.Context, id string) (*ReviewSchedule, error) {
	return c.Query().Where(reviewschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewScheduleClient) GetX(ctx context.Context, id string) *ReviewSchedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewScheduleClient) Hooks() []Hook {
	return c.hooks.ReviewSchedule
}

// Interceptors returns the client interceptors.
func (c *ReviewScheduleClient) Interceptors() []Interceptor {
	return c.inters.ReviewSchedule
}

func (c *ReviewScheduleClient) mutate(ctx context.Context, m *ReviewScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewSchedule mutation op: %q", m.Op())
	}
}

// SkillClient is a client for the Skill schema.
type SkillClient struct {
	config
}

// NewSkillClient returns a client for the Skill from the given config.
func NewSkillClient(c config) *SkillClient {
	return &SkillClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skill.Hooks(f(g(h())))`.
func (c *SkillClient) Use(hooks ...Hook) {
	c.hooks.Skill = append(c.hooks.Skill, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skill.Intercept(f(g(h())))`.
func (c *SkillClient) Intercept(interceptors ...Interceptor) {
	c.inters.Skill = append(c.inters.Skill, interceptors...)
}

// Create returns a builder for creating a Skill entity.
func (c *SkillClient) Create() *SkillCreate {
	mutation := newSkillMutation(c.config, OpCreate)
	return &SkillCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Skill entities.
func (c *SkillClient) CreateBulk(builders ...*SkillCreate) *SkillCreateBulk {
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillClient) MapCreateBulk(slice any, setFunc func(*SkillCreate, int)) *SkillCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCreateBulk{err: fmt.Errorf("calling to SkillClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Skill.
func (c *SkillClient) Update() *SkillUpdate {
	mutation := newSkillMutation(c.config, OpUpdate)
	return &SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillClient) UpdateOne(_m *Skill) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkill(_m))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillClient) UpdateOneID(id string) *SkillUpdateOne {
	mutation := newSkillMutation(c.config, OpUpdateOne, withSkillID(id))
	return &SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Skill.
func (c *SkillClient) Delete() *SkillDelete {
	mutation := newSkillMutation(c.config, OpDelete)
	return &SkillDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillClient) DeleteOne(_m *Skill) *SkillDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillClient) DeleteOneID(id string) *SkillDeleteOne {
	builder := c.Delete().Where(skill.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillDeleteOne{builder}
}

// Query returns a query builder for Skill.
func (c *SkillClient) Query() *SkillQuery {
	return &SkillQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkill},
		inters: c.Interceptors(),
	}
}

// Get returns a Skill entity by its id.
func (c *SkillClient) Get(ctx context.Context, id string) (*Skill, error) {
	return c.Query().Where(skill.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillClient) GetX(ctx context.Context, id string) *Skill {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillClient) Hooks() []Hook {
	return c.hooks.Skill
}

// Interceptors returns the client interceptors.
func (c *SkillClient) Interceptors() []Interceptor {
	return c.inters.Skill
}

func (c *SkillClient) mutate(ctx context.Context, m *SkillMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Skill mutation op: %q", m.Op())
	}
}

// SkillCategoryClient is a client for the SkillCategory schema.
type SkillCategoryClient struct {
	config
}

// NewSkillCategoryClient returns a client for the SkillCategory from the given config.
func NewSkillCategoryClient(c config) *SkillCategoryClient {
	return &SkillCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `skillcategory.Hooks(f(g(h())))`.
func (c *SkillCategoryClient) Use(hooks ...Hook) {
	c.hooks.SkillCategory = append(c.hooks.SkillCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `skillcategory.Intercept(f(g(h())))`.
func (c *SkillCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SkillCategory = append(c.inters.SkillCategory, interceptors...)
}

// Create returns a builder for creating a SkillCategory entity.
func (c *SkillCategoryClient) Create() *SkillCategoryCreate {
	mutation := newSkillCategoryMutation(c.config, OpCreate)
	return &SkillCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SkillCategory entities.
func (c *SkillCategoryClient) CreateBulk(builders ...*SkillCategoryCreate) *SkillCategoryCreateBulk {
	return &SkillCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SkillCategoryClient) MapCreateBulk(slice any, setFunc func(*SkillCategoryCreate, int)) *SkillCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SkillCategoryCreateBulk{err: fmt.Errorf("calling to SkillCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SkillCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SkillCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SkillCategory.
func (c *SkillCategoryClient) Update() *SkillCategoryUpdate {
	mutation := newSkillCategoryMutation(c.config, OpUpdate)
	return &SkillCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SkillCategoryClient) UpdateOne(_m *SkillCategory) *SkillCategoryUpdateOne {
	mutation := newSkillCategoryMutation(c.config, OpUpdateOne, withSkillCategory(_m))
	return &SkillCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SkillCategoryClient) UpdateOneID(id string) *SkillCategoryUpdateOne {
	mutation := newSkillCategoryMutation(c.config, OpUpdateOne, withSkillCategoryID(id))
	return &SkillCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SkillCategory.
func (c *SkillCategoryClient) Delete() *SkillCategoryDelete {
	mutation := newSkillCategoryMutation(c.config, OpDelete)
	return &SkillCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SkillCategoryClient) DeleteOne(_m *SkillCategory) *SkillCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SkillCategoryClient) DeleteOneID(id string) *SkillCategoryDeleteOne {
	builder := c.Delete().Where(skillcategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SkillCategoryDeleteOne{builder}
}

// Query returns a query builder for SkillCategory.
func (c *SkillCategoryClient) Query() *SkillCategoryQuery {
	return &SkillCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSkillCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a SkillCategory entity by its id.
func (c *SkillCategoryClient) Get(ctx context.Context, id string) (*SkillCategory, error) {
	return c.Query().Where(skillcategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SkillCategoryClient) GetX(ctx context.Context, id string) *SkillCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SkillCategoryClient) Hooks() []Hook {
	return c.hooks.SkillCategory
}

// Interceptors returns the client interceptors.
func (c *SkillCategoryClient) Interceptors() []Interceptor {
	return c.inters.SkillCategory
}

func (c *SkillCategoryClient) mutate(ctx context.Context, m *SkillCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SkillCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SkillCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SkillCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SkillCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SkillCategory mutation op: %q", m.Op())
	}
}

// UserSkillProgressClient is a client for the UserSkillProgress schema.
type UserSkillProgressClient struct {
	config
}

// NewUserSkillProgressClient returns a client for the UserSkillProgress from the given config.
func NewUserSkillProgressClient(c config) *UserSkillProgressClient {
	return &UserSkillProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userskillprogress.Hooks(f(g(h())))`.
func (c *UserSkillProgressClient) Use(hooks ...Hook) {
	c.hooks.UserSkillProgress = append(c.hooks.UserSkillProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userskillprogress.Intercept(f(g(h())))`.
func (c *UserSkillProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSkillProgress = append(c.inters.UserSkillProgress, interceptors...)
}

// Create returns a builder for creating a UserSkillProgress entity.
func (c *UserSkillProgressClient) Create() *UserSkillProgressCreate {
	mutation := newUserSkillProgressMutation(c.config, OpCreate)
	return &UserSkillProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSkillProgress entities.
func (c *UserSkillProgressClient) CreateBulk(builders ...*UserSkillProgressCreate) *UserSkillProgressCreateBulk {
	return &UserSkillProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSkillProgressClient) MapCreateBulk(slice any, setFunc func(*UserSkillProgressCreate, int)) *UserSkillProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSkillProgressCreateBulk{err: fmt.Errorf("calling to UserSkillProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSkillProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSkillProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSkillProgress.
func (c *UserSkillProgressClient) Update() *UserSkillProgressUpdate {
	mutation := newUserSkillProgressMutation(c.config, OpUpdate)
	return &UserSkillProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSkillProgressClient) UpdateOne(_m *UserSkillProgress) *UserSkillProgressUpdateOne {
	mutation := newUserSkillProgressMutation(c.config, OpUpdateOne, withUserSkillProgress(_m))
	return &UserSkillProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSkillProgressClient) UpdateOneID(id string) *UserSkillProgressUpdateOne {
	mutation := newUserSkillProgressMutation(c.config, OpUpdateOne, withUserSkillProgressID(id))
	return &UserSkillProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSkillProgress.
func (c *UserSkillProgressClient) Delete() *UserSkillProgressDelete {
	mutation := newUserSkillProgressMutation(c.config, OpDelete)
	return &UserSkillProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSkillProgressClient) DeleteOne(_m *UserSkillProgress) *UserSkillProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSkillProgressClient) DeleteOneID(id string) *UserSkillProgressDeleteOne {
	builder := c.Delete().Where(userskillprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSkillProgressDeleteOne{builder}
}

// Query returns a query builder for UserSkillProgress.
func (c *UserSkillProgressClient) Query() *UserSkillProgressQuery {
	return &UserSkillProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSkillProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSkillProgress entity by its id.
func (c *UserSkillProgressClient) Get(ctx context.Context, id string) (*UserSkillProgress, error) {
	return c.Query().Where(userskillprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSkillProgressClient) GetX(ctx context.Context, id string) *UserSkillProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserSkillProgressClient) Hooks() []Hook {
	return c.hooks.UserSkillProgress
}

// Interceptors returns the client interceptors.
func (c *UserSkillProgressClient) Interceptors() []Interceptor {
	return c.inters.UserSkillProgress
}

func (c *UserSkillProgressClient) mutate(ctx context.Context, m *UserSkillProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSkillProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSkillProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSkillProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSkillProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserSkillProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Exercise, ExerciseAttempt, LLMRequestLog, Lesson, LessonCompletion,
		ReviewSchedule, Skill, SkillCategory, UserSkillProgress []ent.Hook
	}
	inters struct {
		Exercise, ExerciseAttempt, LLMRequestLog, Lesson, LessonCompletion,
		ReviewSchedule, Skill, SkillCategory, UserSkillProgress []ent.Interceptor
	}
)
