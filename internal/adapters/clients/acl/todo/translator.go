package todo

import (
	"time"

	domtodo "github.com/jsamuelsen11/appsync-todo-client/internal/domain/todo"
)

// ToDomainTodo converts a TodoDTO to a domain Todo entity. Timestamps are
// AWSDateTime (RFC 3339); unparsable values are left zero.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	createdAt, _ := time.Parse(time.RFC3339Nano, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, dto.UpdatedAt)

	t := domtodo.Todo{
		ID:        dto.ID,
		Name:      dto.Name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.Owner != nil {
		t.Owner = *dto.Owner
	}
	return t
}

// ToDomainTodoList converts a page of a TodoConnectionDTO, skipping null
// items the schema allows.
func ToDomainTodoList(dto *TodoConnectionDTO) []domtodo.Todo {
	if dto == nil {
		return nil
	}
	todos := make([]domtodo.Todo, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item == nil {
			continue
		}
		todos = append(todos, ToDomainTodo(item))
	}
	return todos
}

// ToCreateTodoInput converts a domain CreateInput to the mutation input.
func ToCreateTodoInput(in domtodo.CreateInput) CreateTodoInputDTO {
	return CreateTodoInputDTO{
		Name:        in.Name,
		Description: in.Description,
	}
}
