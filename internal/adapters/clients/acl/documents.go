package acl

// GraphQL documents sent to the todo API. They are consumed verbatim by the
// transport; field selections match todo.TodoDTO.

// ListTodosDocument lists todos one page at a time.
const ListTodosDocument = `query ListTodos($filter: ModelTodoFilterInput, $limit: Int, $nextToken: String) {
  listTodos(filter: $filter, limit: $limit, nextToken: $nextToken) {
    items {
      id
      name
      description
      createdAt
      updatedAt
    }
    nextToken
  }
}`

// CreateTodoDocument creates one todo from CreateTodoInput {name, description}.
const CreateTodoDocument = `mutation CreateTodo($input: CreateTodoInput!, $condition: ModelTodoConditionInput) {
  createTodo(input: $input, condition: $condition) {
    id
    name
    description
    createdAt
    updatedAt
  }
}`

// OnCreateTodoDocument notifies on every created todo.
const OnCreateTodoDocument = `subscription OnCreateTodo {
  onCreateTodo {
    id
    name
    description
    createdAt
    updatedAt
  }
}`

// OnUpdateTodoDocument notifies on every updated todo.
const OnUpdateTodoDocument = `subscription OnUpdateTodo {
  onUpdateTodo {
    id
    name
    description
    createdAt
    updatedAt
  }
}`

// OnDeleteTodoDocument notifies on every deleted todo.
const OnDeleteTodoDocument = `subscription OnDeleteTodo {
  onDeleteTodo {
    id
    name
    description
    createdAt
    updatedAt
  }
}`
