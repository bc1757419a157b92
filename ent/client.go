// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/brighted/nable/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/brighted/nable/ent/answerevent"
	"github.com/brighted/nable/ent/itemflagevent"
	"github.com/brighted/nable/ent/lessonevent"
	"github.com/brighted/nable/ent/llmrequestevent"
	"github.com/brighted/nable/ent/masteryevent"
	"github.com/brighted/nable/ent/placementevent"
	"github.com/brighted/nable/ent/sessionevent"
	"github.com/brighted/nable/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnswerEvent is the client for interacting with the AnswerEvent builders.
	AnswerEvent *AnswerEventClient
	// ItemFlagEvent is the client for interacting with the ItemFlagEvent builders.
	ItemFlagEvent *ItemFlagEventClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LessonEvent is the client for interacting with the LessonEvent builders.
	LessonEvent *LessonEventClient
	// MasteryEvent is the client for interacting with the MasteryEvent builders.
	MasteryEvent *MasteryEventClient
	// PlacementEvent is the client for interacting with the PlacementEvent builders.
	PlacementEvent *PlacementEventClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnswerEvent = NewAnswerEventClient(c.config)
	c.ItemFlagEvent = NewItemFlagEventClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LessonEvent = NewLessonEventClient(c.config)
	c.MasteryEvent = NewMasteryEventClient(c.config)
	c.PlacementEvent = NewPlacementEventClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AnswerEvent:     NewAnswerEventClient(cfg),
		ItemFlagEvent:   NewItemFlagEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LessonEvent:     NewLessonEventClient(cfg),
		MasteryEvent:    NewMasteryEventClient(cfg),
		PlacementEvent:  NewPlacementEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AnswerEvent:     NewAnswerEventClient(cfg),
		ItemFlagEvent:   NewItemFlagEventClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LessonEvent:     NewLessonEventClient(cfg),
		MasteryEvent:    NewMasteryEventClient(cfg),
		PlacementEvent:  NewPlacementEventClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnswerEvent.
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
		c.AnswerEvent, c.ItemFlagEvent, c.LLMRequestEvent, c.LessonEvent,
		c.MasteryEvent, c.PlacementEvent, c.SessionEvent, c.Snapshot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnswerEvent, c.ItemFlagEvent, c.LLMRequestEvent, c.LessonEvent,
		c.MasteryEvent, c.PlacementEvent, c.SessionEvent, c.Snapshot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnswerEventMutation:
		return c.AnswerEvent.mutate(ctx, m)
	case *ItemFlagEventMutation:
		return c.ItemFlagEvent.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LessonEventMutation:
		return c.LessonEvent.mutate(ctx, m)
	case *MasteryEventMutation:
		return c.MasteryEvent.mutate(ctx, m)
	case *PlacementEventMutation:
		return c.PlacementEvent.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnswerEventClient is a client for the AnswerEvent schema.
type AnswerEventClient struct {
	config
}

// NewAnswerEventClient returns a client for the AnswerEvent from the given config.
func NewAnswerEventClient(c config) *AnswerEventClient {
	return &AnswerEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `answerevent.Hooks(f(g(h())))`.
func (c *AnswerEventClient) Use(hooks ...Hook) {
	c.hooks.AnswerEvent = append(c.hooks.AnswerEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `answerevent.Intercept(f(g(h())))`.
func (c *AnswerEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnswerEvent = append(c.inters.AnswerEvent, interceptors...)
}

// Create returns a builder for creating a AnswerEvent entity.
func (c *AnswerEventClient) Create() *AnswerEventCreate {
	mutation := newAnswerEventMutation(c.config, OpCreate)
	return &AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnswerEvent entities.
func (c *AnswerEventClient) CreateBulk(builders ...*AnswerEventCreate) *AnswerEventCreateBulk {
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnswerEventClient) MapCreateBulk(slice any, setFunc func(*AnswerEventCreate, int)) *AnswerEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnswerEventCreateBulk{err: fmt.Errorf("calling to AnswerEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnswerEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnswerEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnswerEvent.
func (c *AnswerEventClient) Update() *AnswerEventUpdate {
	mutation := newAnswerEventMutation(c.config, OpUpdate)
	return &AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnswerEventClient) UpdateOne(_m *AnswerEvent) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEvent(_m))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnswerEventClient) UpdateOneID(id int) *AnswerEventUpdateOne {
	mutation := newAnswerEventMutation(c.config, OpUpdateOne, withAnswerEventID(id))
	return &AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnswerEvent.
func (c *AnswerEventClient) Delete() *AnswerEventDelete {
	mutation := newAnswerEventMutation(c.config, OpDelete)
	return &AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnswerEventClient) DeleteOne(_m *AnswerEvent) *AnswerEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnswerEventClient) DeleteOneID(id int) *AnswerEventDeleteOne {
	builder := c.Delete().Where(answerevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnswerEventDeleteOne{builder}
}

// Query returns a query builder for AnswerEvent.
func (c *AnswerEventClient) Query() *AnswerEventQuery {
	return &AnswerEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnswerEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnswerEvent entity by its id.
func (c *AnswerEventClient) Get(ctx context.Context, id int) (*AnswerEvent, error) {
	return c.Query().Where(answerevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnswerEventClient) GetX(ctx context.Context, id int) *AnswerEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnswerEventClient) Hooks() []Hook {
	return c.hooks.AnswerEvent
}

// Interceptors returns the client interceptors.
func (c *AnswerEventClient) Interceptors() []Interceptor {
	return c.inters.AnswerEvent
}

func (c *AnswerEventClient) mutate(ctx context.Context, m *AnswerEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnswerEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnswerEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnswerEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnswerEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnswerEvent mutation op: %q", m.Op())
	}
}

// ItemFlagEventClient is a client for the ItemFlagEvent schema.
type ItemFlagEventClient struct {
	config
}

// NewItemFlagEventClient returns a client for the ItemFlagEvent from the given config.
func NewItemFlagEventClient(c config) *ItemFlagEventClient {
	return &ItemFlagEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemflagevent.Hooks(f(g(h())))`.
func (c *ItemFlagEventClient) Use(hooks ...Hook) {
	c.hooks.ItemFlagEvent = append(c.hooks.ItemFlagEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemflagevent.Intercept(f(g(h())))`.
func (c *ItemFlagEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemFlagEvent = append(c.inters.ItemFlagEvent, interceptors...)
}

// Create returns a builder for creating a ItemFlagEvent entity.
func (c *ItemFlagEventClient) Create() *ItemFlagEventCreate {
	mutation := newItemFlagEventMutation(c.config, OpCreate)
	return &ItemFlagEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemFlagEvent entities.
func (c *ItemFlagEventClient) CreateBulk(builders ...*ItemFlagEventCreate) *ItemFlagEventCreateBulk {
	return &ItemFlagEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemFlagEventClient) MapCreateBulk(slice any, setFunc func(*ItemFlagEventCreate, int)) *ItemFlagEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemFlagEventCreateBulk{err: fmt.Errorf("calling to ItemFlagEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemFlagEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemFlagEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemFlagEvent.
func (c *ItemFlagEventClient) Update() *ItemFlagEventUpdate {
	mutation := newItemFlagEventMutation(c.config, OpUpdate)
	return &ItemFlagEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemFlagEventClient) UpdateOne(_m *ItemFlagEvent) *ItemFlagEventUpdateOne {
	mutation := newItemFlagEventMutation(c.config, OpUpdateOne, withItemFlagEvent(_m))
	return &ItemFlagEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemFlagEventClient) UpdateOneID(id int) *ItemFlagEventUpdateOne {
	mutation := newItemFlagEventMutation(c.config, OpUpdateOne, withItemFlagEventID(id))
	return &ItemFlagEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemFlagEvent.
func (c *ItemFlagEventClient) Delete() *ItemFlagEventDelete {
	mutation := newItemFlagEventMutation(c.config, OpDelete)
	return &ItemFlagEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemFlagEventClient) DeleteOne(_m *ItemFlagEvent) *ItemFlagEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemFlagEventClient) DeleteOneID(id int) *ItemFlagEventDeleteOne {
	builder := c.Delete().Where(itemflagevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemFlagEventDeleteOne{builder}
}

// Query returns a query builder for ItemFlagEvent.
func (c *ItemFlagEventClient) Query() *ItemFlagEventQuery {
	return &ItemFlagEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemFlagEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemFlagEvent entity by its id.
func (c *ItemFlagEventClient) Get(ctx context.Context, id int) (*ItemFlagEvent, error) {
	return c.Query().Where(itemflagevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemFlagEventClient) GetX(ctx context.Context, id int) *ItemFlagEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemFlagEventClient) Hooks() []Hook {
	return c.hooks.ItemFlagEvent
}

// Interceptors returns the client interceptors.
func (c *ItemFlagEventClient) Interceptors() []Interceptor {
	return c.inters.ItemFlagEvent
}

func (c *ItemFlagEventClient) mutate(ctx context.Context, m *ItemFlagEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemFlagEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemFlagEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemFlagEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemFlagEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemFlagEvent mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LessonEventClient is a client for the LessonEvent schema.
type LessonEventClient struct {
	config
}

// NewLessonEventClient returns a client for the LessonEvent from the given config.
func NewLessonEventClient(c config) *LessonEventClient {
	return &LessonEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonevent.Hooks(f(g(h())))`.
func (c *LessonEventClient) Use(hooks ...Hook) {
	c.hooks.LessonEvent = append(c.hooks.LessonEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonevent.Intercept(f(g(h())))`.
func (c *LessonEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonEvent = append(c.inters.LessonEvent, interceptors...)
}

// Create returns a builder for creating a LessonEvent entity.
func (c *LessonEventClient) Create() *LessonEventCreate {
	mutation := newLessonEventMutation(c.config, OpCreate)
	return &LessonEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonEvent entities.
func (c *LessonEventClient) CreateBulk(builders ...*LessonEventCreate) *LessonEventCreateBulk {
	return &LessonEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonEventClient) MapCreateBulk(slice any, setFunc func(*LessonEventCreate, int)) *LessonEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonEventCreateBulk{err: fmt.Errorf("calling to LessonEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonEvent.
func (c *LessonEventClient) Update() *LessonEventUpdate {
	mutation := newLessonEventMutation(c.config, OpUpdate)
	return &LessonEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonEventClient) UpdateOne(_m *LessonEvent) *LessonEventUpdateOne {
	mutation := newLessonEventMutation(c.config, OpUpdateOne, withLessonEvent(_m))
	return &LessonEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonEventClient) UpdateOneID(id int) *LessonEventUpdateOne {
	mutation := newLessonEventMutation(c.config, OpUpdateOne, withLessonEventID(id))
	return &LessonEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonEvent.
func (c *LessonEventClient) Delete() *LessonEventDelete {
	mutation := newLessonEventMutation(c.config, OpDelete)
	return &LessonEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonEventClient) DeleteOne(_m *LessonEvent) *LessonEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonEventClient) DeleteOneID(id int) *LessonEventDeleteOne {
	builder := c.Delete().Where(lessonevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonEventDeleteOne{builder}
}

// Query returns a query builder for LessonEvent.
func (c *LessonEventClient) Query() *LessonEventQuery {
	return &LessonEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonEvent entity by its id.
func (c *LessonEventClient) Get(ctx context.Context, id int) (*LessonEvent, error) {
	return c.Query().Where(lessonevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonEventClient) GetX(ctx context.Context, id int) *LessonEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonEventClient) Hooks() []Hook {
	return c.hooks.LessonEvent
}

// Interceptors returns the client interceptors.
func (c *LessonEventClient) Interceptors() []Interceptor {
	return c.inters.LessonEvent
}

func (c *LessonEventClient) mutate(ctx context.Context, m *LessonEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonEvent mutation op: %q", m.Op())
	}
}

// MasteryEventClient is a client for the MasteryEvent schema.
type MasteryEventClient struct {
	config
}

// NewMasteryEventClient returns a client for the MasteryEvent from the given config.
func NewMasteryEventClient(c config) *MasteryEventClient {
	return &MasteryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryevent.Hooks(f(g(h())))`.
func (c *MasteryEventClient) Use(hooks ...Hook) {
	c.hooks.MasteryEvent = append(c.hooks.MasteryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryevent.Intercept(f(g(h())))`.
func (c *MasteryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryEvent = append(c.inters.MasteryEvent, interceptors...)
}

// Create returns a builder for creating a MasteryEvent entity.
func (c *MasteryEventClient) Create() *MasteryEventCreate {
	mutation := newMasteryEventMutation(c.config, OpCreate)
	return &MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryEvent entities.
func (c *MasteryEventClient) CreateBulk(builders ...*MasteryEventCreate) *MasteryEventCreateBulk {
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryEventClient) MapCreateBulk(slice any, setFunc func(*MasteryEventCreate, int)) *MasteryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryEventCreateBulk{err: fmt.Errorf("calling to MasteryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryEvent.
func (c *MasteryEventClient) Update() *MasteryEventUpdate {
	mutation := newMasteryEventMutation(c.config, OpUpdate)
	return &MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryEventClient) UpdateOne(_m *MasteryEvent) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEvent(_m))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryEventClient) UpdateOneID(id int) *MasteryEventUpdateOne {
	mutation := newMasteryEventMutation(c.config, OpUpdateOne, withMasteryEventID(id))
	return &MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryEvent.
func (c *MasteryEventClient) Delete() *MasteryEventDelete {
	mutation := newMasteryEventMutation(c.config, OpDelete)
	return &MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryEventClient) DeleteOne(_m *MasteryEvent) *MasteryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryEventClient) DeleteOneID(id int) *MasteryEventDeleteOne {
	builder := c.Delete().Where(masteryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryEventDeleteOne{builder}
}

// Query returns a query builder for MasteryEvent.
func (c *MasteryEventClient) Query() *MasteryEventQuery {
	return &MasteryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryEvent entity by its id.
func (c *MasteryEventClient) Get(ctx context.Context, id int) (*MasteryEvent, error) {
	return c.Query().Where(masteryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryEventClient) GetX(ctx context.Context, id int) *MasteryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryEventClient) Hooks() []Hook {
	return c.hooks.MasteryEvent
}

// Interceptors returns the client interceptors.
func (c *MasteryEventClient) Interceptors() []Interceptor {
	return c.inters.MasteryEvent
}

func (c *MasteryEventClient) mutate(ctx context.Context, m *MasteryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryEvent mutation op: %q", m.Op())
	}
}

// PlacementEventClient is a client for the PlacementEvent schema.
type PlacementEventClient struct {
	config
}

// NewPlacementEventClient returns a client for the PlacementEvent from the given config.
func NewPlacementEventClient(c config) *PlacementEventClient {
	return &PlacementEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `placementevent.Hooks(f(g(h())))`.
func (c *PlacementEventClient) Use(hooks ...Hook) {
	c.hooks.PlacementEvent = append(c.hooks.PlacementEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `placementevent.Intercept(f(g(h())))`.
func (c *PlacementEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlacementEvent = append(c.inters.PlacementEvent, interceptors...)
}

// Create returns a builder for creating a PlacementEvent entity.
func (c *PlacementEventClient) Create() *PlacementEventCreate {
	mutation := newPlacementEventMutation(c.config, OpCreate)
	return &PlacementEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlacementEvent entities.
func (c *PlacementEventClient) CreateBulk(builders ...*PlacementEventCreate) *PlacementEventCreateBulk {
	return &PlacementEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlacementEventClient) MapCreateBulk(slice any, setFunc func(*PlacementEventCreate, int)) *PlacementEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlacementEventCreateBulk{err: fmt.Errorf("calling to PlacementEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlacementEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlacementEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlacementEvent.
func (c *PlacementEventClient) Update() *PlacementEventUpdate {
	mutation := newPlacementEventMutation(c.config, OpUpdate)
	return &PlacementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlacementEventClient) UpdateOne(_m *PlacementEvent) *PlacementEventUpdateOne {
	mutation := newPlacementEventMutation(c.config, OpUpdateOne, withPlacementEvent(_m))
	return &PlacementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlacementEventClient) UpdateOneID(id int) *PlacementEventUpdateOne {
	mutation := newPlacementEventMutation(c.config, OpUpdateOne, withPlacementEventID(id))
	return &PlacementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlacementEvent.
func (c *PlacementEventClient) Delete() *PlacementEventDelete {
	mutation := newPlacementEventMutation(c.config, OpDelete)
	return &PlacementEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlacementEventClient) DeleteOne(_m *PlacementEvent) *PlacementEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlacementEventClient) DeleteOneID(id int) *PlacementEventDeleteOne {
	builder := c.Delete().Where(placementevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlacementEventDeleteOne{builder}
}

// Query returns a query builder for PlacementEvent.
func (c *PlacementEventClient) Query() *PlacementEventQuery {
	return &PlacementEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlacementEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PlacementEvent entity by its id.
func (c *PlacementEventClient) Get(ctx context.Context, id int) (*PlacementEvent, error) {
	return c.Query().Where(placementevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlacementEventClient) GetX(ctx context.Context, id int) *PlacementEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlacementEventClient) Hooks() []Hook {
	return c.hooks.PlacementEvent
}

// Interceptors returns the client interceptors.
func (c *PlacementEventClient) Interceptors() []Interceptor {
	return c.inters.PlacementEvent
}

func (c *PlacementEventClient) mutate(ctx context.Context, m *PlacementEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlacementEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlacementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlacementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlacementEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlacementEvent mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnswerEvent, ItemFlagEvent, LLMRequestEvent, LessonEvent, MasteryEvent,
		PlacementEvent, SessionEvent, Snapshot []ent.Hook
	}
	inters struct {
		AnswerEvent, ItemFlagEvent, LLMRequestEvent, LessonEvent, MasteryEvent,
		PlacementEvent, SessionEvent, Snapshot []ent.Interceptor
	}
)
