package app

import (
	"time"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/identity"
	"github.com/jsamuelsen11/appsync-todo-client/internal/domain/todo"
)

// Action names carried by every Notice.
const (
	ActionQueryTodos     = "query-todos"
	ActionCreateTodo     = "create-todo"
	ActionSubscribeTodos = "subscribe-todos"
	ActionSignIn         = "sign-in"
	ActionCompleteSignIn = "complete-sign-in"
	ActionCurrentUser    = "current-user"
	ActionSignOut        = "sign-out"
)

// TodoView is the rendered shape of a todo in notice payloads.
type TodoView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserView is the rendered shape of the signed-in user.
type UserView struct {
	Username      string         `json:"username"`
	Subject       string         `json:"sub"`
	Email         string         `json:"email,omitempty"`
	EmailVerified bool           `json:"email_verified"`
	PhoneNumber   string         `json:"phone_number,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}

// ChangeView is the payload of a subscription notice.
type ChangeView struct {
	Channel string    `json:"channel"`
	Phase   string    `json:"phase"`
	Todo    *TodoView `json:"todo,omitempty"`
}

// URLView is the payload of notices that hand the user a URL to open.
type URLView struct {
	URL string `json:"url"`
}

func toTodoView(t todo.Todo) TodoView {
	return TodoView{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Owner:       t.Owner,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodoViews(todos []todo.Todo) []TodoView {
	views := make([]TodoView, 0, len(todos))
	for _, t := range todos {
		views = append(views, toTodoView(t))
	}
	return views
}

func toUserView(u *identity.User) UserView {
	return UserView{
		Username:      u.Username,
		Subject:       u.Subject,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		PhoneNumber:   u.PhoneNumber,
		Attributes:    u.Attributes,
	}
}

func toChangeView(ev todo.ChangeEvent) ChangeView {
	v := ChangeView{Channel: string(ev.Channel), Phase: ev.Phase.String()}
	if ev.Todo != nil {
		tv := toTodoView(*ev.Todo)
		v.Todo = &tv
	}
	return v
}
