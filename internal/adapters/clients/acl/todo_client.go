// Package acl implements the Anti-Corruption Layer between the todo GraphQL
// schema and domain types. Wire shapes and their translators live in the
// todo subpackage; the documents and the client live here.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/graphql"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	domtodo "github.com/jsamuelsen11/appsync-todo-client/internal/domain/todo"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// Compile-time interface check.
var _ ports.TodoClient = (*TodoClient)(nil)

// maxListPages bounds how many nextToken pages ListTodos follows.
const maxListPages = 100

// subscriptionFields maps each channel to its document and the data field
// that carries the changed todo.
var subscriptionFields = map[domtodo.Channel]struct {
	document string
	field    string
}{
	domtodo.ChannelCreate: {OnCreateTodoDocument, "onCreateTodo"},
	domtodo.ChannelUpdate: {OnUpdateTodoDocument, "onUpdateTodo"},
	domtodo.ChannelDelete: {OnDeleteTodoDocument, "onDeleteTodo"},
}

// TodoClient is the outbound adapter for the todo GraphQL API. It
// implements [ports.TodoClient].
//
// Errors from the [graphql.Client] already carry the domain taxonomy
// (ErrNetwork, ErrAuth, ErrGraphQL) and are returned wrapped with the
// operation that failed.
type TodoClient struct {
	client *graphql.Client
	logger *slog.Logger
}

// NewTodoClient creates a TodoClient that sends documents through client.
func NewTodoClient(client *graphql.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{client: client, logger: logger}
}

// ListTodos runs the ListTodos query, following nextToken until the last
// page.
func (c *TodoClient) ListTodos(ctx context.Context) ([]domtodo.Todo, error) {
	var (
		all       []domtodo.Todo
		nextToken *string
	)

	for page := 0; page < maxListPages; page++ {
		vars := map[string]any{}
		if nextToken != nil {
			vars["nextToken"] = *nextToken
		}

		var dto todo.ListTodosResponseDTO
		if err := c.client.Query(ctx, ListTodosDocument, vars, &dto); err != nil {
			return nil, fmt.Errorf("listing todos: %w", err)
		}
		if dto.ListTodos == nil {
			break
		}

		all = append(all, todo.ToDomainTodoList(dto.ListTodos)...)

		nextToken = dto.ListTodos.NextToken
		if nextToken == nil || *nextToken == "" {
			break
		}
	}

	if all == nil {
		all = []domtodo.Todo{}
	}
	return all, nil
}

// CreateTodo runs the CreateTodo mutation once and returns the created todo.
func (c *TodoClient) CreateTodo(ctx context.Context, in domtodo.CreateInput) (*domtodo.Todo, error) {
	vars := map[string]any{"input": todo.ToCreateTodoInput(in)}

	var dto todo.CreateTodoResponseDTO
	if err := c.client.Mutate(ctx, CreateTodoDocument, vars, &dto); err != nil {
		return nil, fmt.Errorf("creating todo %q: %w", in.Name, err)
	}
	if dto.CreateTodo == nil {
		return nil, fmt.Errorf("creating todo %q: empty result: %w", in.Name, domain.ErrGraphQL)
	}

	result := todo.ToDomainTodo(dto.CreateTodo)
	return &result, nil
}

// SubscribeTodos opens the subscription for channel and translates each
// event into a domain ChangeEvent.
func (c *TodoClient) SubscribeTodos(ctx context.Context, channel domtodo.Channel) (ports.TodoStream, error) {
	spec, ok := subscriptionFields[channel]
	if !ok {
		return nil, &domain.ValidationError{Fields: map[string]string{"channel": fmt.Sprintf("unknown channel %q", channel)}}
	}

	sub, err := c.client.Subscribe(ctx, spec.document, nil)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", channel, err)
	}

	s := &todoStream{
		sub:     sub,
		channel: channel,
		field:   spec.field,
		events:  make(chan domtodo.ChangeEvent),
		done:    make(chan struct{}),
		logger:  c.logger,
	}
	go s.run()
	return s, nil
}

// todoStream adapts a graphql.Subscription to ports.TodoStream.
type todoStream struct {
	sub     *graphql.Subscription
	channel domtodo.Channel
	field   string
	events  chan domtodo.ChangeEvent
	done    chan struct{}
	once    sync.Once
	logger  *slog.Logger
}

func (s *todoStream) Events() <-chan domtodo.ChangeEvent {
	return s.events
}

func (s *todoStream) Close() {
	s.once.Do(func() {
		close(s.done)
		s.sub.Unsubscribe()
	})
}

func (s *todoStream) run() {
	defer close(s.events)

	for ev := range s.sub.Events() {
		select {
		case s.events <- s.translate(ev):
		case <-s.done:
			return
		}
	}
}

func (s *todoStream) translate(ev graphql.Event) domtodo.ChangeEvent {
	ce := domtodo.ChangeEvent{Channel: s.channel, Phase: ev.Phase, Err: ev.Err}
	if ev.Phase != domain.PhaseNext {
		return ce
	}

	var payload map[string]*todo.TodoDTO
	if err := json.Unmarshal(ev.Data, &payload); err != nil {
		s.logger.Warn("undecodable subscription event",
			slog.String("channel", string(s.channel)),
			slog.Any("error", err),
		)
		return ce
	}
	if dto := payload[s.field]; dto != nil {
		t := todo.ToDomainTodo(dto)
		ce.Todo = &t
	}
	return ce
}
