// Package graphqltest provides an in-process fake of the managed todo
// GraphQL API for adapter tests: GraphQL-over-HTTP for queries and
// mutations, and the realtime websocket protocol for subscriptions.
//
//	srv := graphqltest.NewServer("test-key")
//	defer srv.Close()
//	cfg.Endpoint = srv.Endpoint()
package graphqltest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Request is one GraphQL-over-HTTP request the server received.
type Request struct {
	Header        http.Header
	Query         string
	OperationName string
	Variables     map[string]any
}

// Todo is the server-side record.
type Todo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Server is a fake todo API. The zero value is not usable; call NewServer.
type Server struct {
	*httptest.Server

	apiKey   string
	upgrader websocket.Upgrader

	mu                  sync.Mutex
	todos               []Todo
	requests            []Request
	failStatus          int
	pageSize            int
	connectionTimeoutMs int
	connections         int
	stops               int
	subs                map[string]*subscriber
	conns               map[*wsConn]struct{}
}

type subscriber struct {
	conn  *wsConn
	id    string
	field string
}

type wsConn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

type message struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewServer starts a fake API that accepts apiKey.
func NewServer(apiKey string) *Server {
	s := &Server{
		apiKey:              apiKey,
		upgrader:            websocket.Upgrader{Subprotocols: []string{"graphql-ws"}},
		connectionTimeoutMs: 300000,
		subs:                make(map[string]*subscriber),
		conns:               make(map[*wsConn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", s.handleHTTP)
	mux.HandleFunc("/graphql/realtime", s.handleRealtime)
	s.Server = httptest.NewServer(mux)
	return s
}

// Close drops realtime connections and shuts the server down.
func (s *Server) Close() {
	s.DropConnections()
	s.Server.Close()
}

// Endpoint returns the GraphQL HTTP endpoint URL.
func (s *Server) Endpoint() string {
	return s.URL + "/graphql"
}

// FailWith makes every HTTP request answer with status. Zero restores
// normal behavior.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// PageSize makes ListTodos return at most n items per page. Zero disables
// paging.
func (s *Server) PageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageSize = n
}

// ConnectionTimeout sets the connectionTimeoutMs announced in connection_ack.
func (s *Server) ConnectionTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectionTimeoutMs = int(d / time.Millisecond)
}

// Requests returns a copy of every HTTP request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Todos returns a copy of the stored todos.
func (s *Server) Todos() []Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Connections returns how many realtime connections were accepted.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connections
}

// Subscribers returns how many subscriptions are currently registered.
func (s *Server) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Stops returns how many stop messages were received.
func (s *Server) Stops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// CompleteAll sends complete for every registered subscription and forgets
// them.
func (s *Server) CompleteAll() {
	for _, sub := range s.drainSubs() {
		sub.conn.send(message{ID: sub.id, Type: "complete"})
	}
}

// FailAll sends an error message of errorType to every registered
// subscription and forgets them.
func (s *Server) FailAll(errorType, msg string) {
	payload := mustJSON(map[string]any{
		"errors": []map[string]any{{"errorType": errorType, "message": msg}},
	})
	for _, sub := range s.drainSubs() {
		sub.conn.send(message{ID: sub.id, Type: "error", Payload: payload})
	}
}

// DropConnections closes every realtime connection without a close frame.
func (s *Server) DropConnections() {
	s.mu.Lock()
	conns := make([]*wsConn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		_ = c.ws.Close()
	}
}

func (s *Server) drainSubs() []*subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*subscriber, 0, len(s.subs))
	for id, sub := range s.subs {
		out = append(out, sub)
		delete(s.subs, id)
	}
	return out
}

func (s *Server) handleHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Query         string         `json:"query"`
		OperationName string         `json:"operationName"`
		Variables     map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrors(w, http.StatusBadRequest, "MalformedHttpRequestException", err.Error())
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Header:        r.Header.Clone(),
		Query:         body.Query,
		OperationName: body.OperationName,
		Variables:     body.Variables,
	})
	failStatus := s.failStatus
	s.mu.Unlock()

	if failStatus != 0 {
		w.WriteHeader(failStatus)
		_, _ = w.Write([]byte(http.StatusText(failStatus)))
		return
	}

	if r.Header.Get("x-api-key") != s.apiKey {
		writeErrors(w, http.StatusUnauthorized, "UnauthorizedException", "You are not authorized to make this call.")
		return
	}

	switch body.OperationName {
	case "ListTodos":
		s.listTodos(w, body.Variables)
	case "CreateTodo":
		s.createTodo(w, body.Variables)
	default:
		writeErrors(w, http.StatusOK, "ValidationError", fmt.Sprintf("unknown operation %q", body.OperationName))
	}
}

func (s *Server) listTodos(w http.ResponseWriter, vars map[string]any) {
	s.mu.Lock()
	items := make([]Todo, len(s.todos))
	copy(items, s.todos)
	pageSize := s.pageSize
	s.mu.Unlock()

	start := 0
	if tok, ok := vars["nextToken"].(string); ok {
		_, _ = fmt.Sscanf(tok, "page-%d", &start)
	}
	if start > len(items) {
		start = len(items)
	}

	end := len(items)
	var nextToken any
	if pageSize > 0 && start+pageSize < len(items) {
		end = start + pageSize
		nextToken = fmt.Sprintf("page-%d", end)
	}

	writeData(w, map[string]any{
		"listTodos": map[string]any{
			"items":     items[start:end],
			"nextToken": nextToken,
		},
	})
}

func (s *Server) createTodo(w http.ResponseWriter, vars map[string]any) {
	input, _ := vars["input"].(map[string]any)
	name, _ := input["name"].(string)
	if name == "" {
		writeErrors(w, http.StatusOK, "ValidationError", "name is required")
		return
	}
	description, _ := input["description"].(string)

	now := time.Now().UTC().Format(time.RFC3339Nano)
	item := Todo{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.todos = append(s.todos, item)
	var targets []*subscriber
	for _, sub := range s.subs {
		if sub.field == "onCreateTodo" {
			targets = append(targets, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range targets {
		sub.conn.send(message{
			ID:      sub.id,
			Type:    "data",
			Payload: mustJSON(map[string]any{"data": map[string]any{"onCreateTodo": item}}),
		})
	}

	writeData(w, map[string]any{"createTodo": item})
}

func (s *Server) handleRealtime(w http.ResponseWriter, r *http.Request) {
	authorized := s.headerAuthorized(r.URL.Query().Get("header"))

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	conn := &wsConn{ws: ws}

	s.mu.Lock()
	s.connections++
	s.conns[conn] = struct{}{}
	timeoutMs := s.connectionTimeoutMs
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		for id, sub := range s.subs {
			if sub.conn == conn {
				delete(s.subs, id)
			}
		}
		s.mu.Unlock()
		_ = ws.Close()
	}()

	for {
		var msg message
		if err := ws.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "connection_init":
			if !authorized {
				conn.send(message{Type: "connection_error", Payload: mustJSON(map[string]any{
					"errors": []map[string]any{{"errorType": "UnauthorizedException", "message": "You are not authorized to make this call."}},
				})})
				return
			}
			conn.send(message{Type: "connection_ack", Payload: mustJSON(map[string]any{"connectionTimeoutMs": timeoutMs})})
			conn.send(message{Type: "ka"})

		case "start":
			s.start(conn, msg)

		case "stop":
			s.mu.Lock()
			s.stops++
			_, known := s.subs[msg.ID]
			delete(s.subs, msg.ID)
			s.mu.Unlock()
			if known {
				conn.send(message{ID: msg.ID, Type: "complete"})
			}
		}
	}
}

func (s *Server) start(conn *wsConn, msg message) {
	var payload struct {
		Data       string `json:"data"`
		Extensions struct {
			Authorization map[string]string `json:"authorization"`
		} `json:"extensions"`
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		conn.send(errorMessage(msg.ID, "MalformedRequest", err.Error()))
		return
	}
	if payload.Extensions.Authorization["x-api-key"] != s.apiKey {
		conn.send(errorMessage(msg.ID, "UnauthorizedException", "Not Authorized"))
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	_ = json.Unmarshal([]byte(payload.Data), &req)

	field := ""
	for _, f := range []string{"onCreateTodo", "onUpdateTodo", "onDeleteTodo"} {
		if strings.Contains(req.Query, f) {
			field = f
			break
		}
	}
	if field == "" {
		conn.send(errorMessage(msg.ID, "ValidationError", "unknown subscription"))
		return
	}

	s.mu.Lock()
	s.subs[msg.ID] = &subscriber{conn: conn, id: msg.ID, field: field}
	s.mu.Unlock()

	conn.send(message{ID: msg.ID, Type: "start_ack"})
}

func (s *Server) headerAuthorized(encoded string) bool {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}
	var header map[string]string
	if err := json.Unmarshal(raw, &header); err != nil {
		return false
	}
	return header["x-api-key"] == s.apiKey && header["host"] != ""
}

func (c *wsConn) send(msg message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.WriteJSON(msg)
}

func errorMessage(id, errorType, msg string) message {
	return message{ID: id, Type: "error", Payload: mustJSON(map[string]any{
		"errors": []map[string]any{{"errorType": errorType, "message": msg}},
	})}
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeErrors(w http.ResponseWriter, status int, errorType, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data":   nil,
		"errors": []map[string]any{{"errorType": errorType, "message": msg}},
	})
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
