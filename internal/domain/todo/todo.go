// Package todo holds the Todo entity as this client sees it. Server-assigned
// fields (ID, Owner, timestamps) are opaque and copied through untouched.
package todo

import (
	"strconv"
	"time"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
)

// DefaultDescription is the description attached to todos created by the
// "Create todos" action.
const DefaultDescription = "This is a todo"

// Todo represents a server-side todo item.
type Todo struct {
	ID          string
	Name        string
	Description string
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateInput is the payload of the createTodo mutation.
type CreateInput struct {
	Name        string
	Description string
}

// NewCreateInput builds the fixed-shape input used by the create action:
// name "name-<unix millis>" and the default description.
func NewCreateInput(at time.Time) CreateInput {
	return CreateInput{
		Name:        "name-" + strconv.FormatInt(at.UnixMilli(), 10),
		Description: DefaultDescription,
	}
}

// Channel identifies one of the three change-notification subscriptions.
type Channel string

// Change notification channels.
const (
	ChannelCreate Channel = "create"
	ChannelUpdate Channel = "update"
	ChannelDelete Channel = "delete"
)

// Channels returns every change-notification channel in a stable order.
func Channels() []Channel {
	return []Channel{ChannelCreate, ChannelUpdate, ChannelDelete}
}

// IsValid reports whether c names a known channel.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelCreate, ChannelUpdate, ChannelDelete:
		return true
	default:
		return false
	}
}

// ChangeEvent is one phase observed on a change-notification channel.
// Todo is set for PhaseNext; Err is set for PhaseError.
type ChangeEvent struct {
	Channel Channel
	Phase   domain.Phase
	Todo    *Todo
	Err     error
}
