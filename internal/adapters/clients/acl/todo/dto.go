// Package todo implements the Anti-Corruption Layer translators for the
// todo GraphQL schema.
package todo

// TodoDTO matches the schema's Todo type. Owner is only present on APIs
// that use owner-based authorization.
type TodoDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Owner       *string `json:"owner,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CreateTodoInputDTO matches the schema's CreateTodoInput.
type CreateTodoInputDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TodoConnectionDTO matches the schema's ModelTodoConnection.
type TodoConnectionDTO struct {
	Items     []*TodoDTO `json:"items"`
	NextToken *string    `json:"nextToken"`
}

// ListTodosResponseDTO is the data of the ListTodos query.
type ListTodosResponseDTO struct {
	ListTodos *TodoConnectionDTO `json:"listTodos"`
}

// CreateTodoResponseDTO is the data of the CreateTodo mutation.
type CreateTodoResponseDTO struct {
	CreateTodo *TodoDTO `json:"createTodo"`
}
