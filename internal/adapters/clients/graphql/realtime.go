package graphql

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/telemetry"
)

// Subprotocol is the websocket subprotocol the realtime endpoint speaks.
const Subprotocol = "graphql-ws"

const (
	defaultHandshakeTimeout  = 10 * time.Second
	defaultConnectionTimeout = 5 * time.Minute
	writeTimeout             = 10 * time.Second

	// emptyPayload is base64("{}"), the connect-time payload the endpoint expects.
	emptyPayload = "e30="
)

// Realtime protocol message types.
const (
	msgConnectionInit  = "connection_init"
	msgConnectionAck   = "connection_ack"
	msgConnectionError = "connection_error"
	msgKeepAlive       = "ka"
	msgStart           = "start"
	msgStartAck        = "start_ack"
	msgData            = "data"
	msgError           = "error"
	msgComplete        = "complete"
	msgStop            = "stop"
)

type realtimeMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type startPayload struct {
	Data       string          `json:"data"`
	Extensions startExtensions `json:"extensions"`
}

type startExtensions struct {
	Authorization map[string]string `json:"authorization"`
}

type subscriptionRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type errorPayload struct {
	Errors []wireError `json:"errors"`
}

// RealtimeTransport runs subscriptions over one shared websocket. The
// connection is dialed when the first subscription starts and closed when
// the last one ends. Keep-alive frames extend the read deadline; silence
// beyond the connection timeout fails every open subscription with
// domain.ErrNetwork. There is no reconnection.
//
// Events are delivered on a single reader goroutine, so a consumer that
// stops draining its subscription stalls the others once its buffer fills.
type RealtimeTransport struct {
	endpoint          string
	override          string
	handshakeTimeout  time.Duration
	connectionTimeout time.Duration
	dialer            *websocket.Dialer
	metrics           *telemetry.Metrics
	logger            *slog.Logger

	mu      sync.Mutex
	conn    *realtimeConn
	lastErr error
}

// realtimeConn is one websocket and the subscriptions registered on it.
type realtimeConn struct {
	ws      *websocket.Conn
	timeout time.Duration
	subs    map[string]*realtimeEntry // guarded by RealtimeTransport.mu

	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    atomic.Bool
}

type realtimeEntry struct {
	sub  *Subscription
	name string
}

// NewRealtimeTransport returns a transport addressed at the same endpoint as
// the HTTP transport. cfg.RealtimeEndpoint, when set, replaces the derived
// websocket URL. If metrics is nil, metric recording is skipped.
func NewRealtimeTransport(cfg *config.GraphQLConfig, metrics *telemetry.Metrics, logger *slog.Logger) *RealtimeTransport {
	handshake := cfg.HandshakeTimeout
	if handshake <= 0 {
		handshake = defaultHandshakeTimeout
	}
	return &RealtimeTransport{
		endpoint:          cfg.Endpoint,
		override:          cfg.RealtimeEndpoint,
		handshakeTimeout:  handshake,
		connectionTimeout: cfg.ConnectionTimeout,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshake,
			Subprotocols:     []string{Subprotocol},
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Do rejects every operation; queries and mutations belong on HTTP.
func (t *RealtimeTransport) Do(_ context.Context, op *Operation) (*Response, error) {
	return nil, fmt.Errorf("operation %q: realtime transport only serves subscriptions: %w", op.Name, domain.ErrValidation)
}

// Subscribe registers op on the shared connection, dialing it if needed,
// and sends the start message.
func (t *RealtimeTransport) Subscribe(ctx context.Context, op *Operation) (*Subscription, error) {
	if op.Kind != KindSubscription {
		return nil, fmt.Errorf("operation %q is a %s: %w", op.Name, op.Kind, domain.ErrValidation)
	}

	auth, err := t.authorization(op)
	if err != nil {
		return nil, err
	}

	variables := op.Variables
	if variables == nil {
		variables = map[string]any{}
	}
	data, err := json.Marshal(subscriptionRequest{Query: op.Document, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", op.Name, err)
	}
	payload, err := json.Marshal(startPayload{Data: string(data), Extensions: startExtensions{Authorization: auth}})
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", op.Name, err)
	}

	id := uuid.NewString()
	var conn *realtimeConn
	sub := newSubscription(id, func() { t.release(conn, id, true) })

	conn, err = t.register(ctx, auth, &realtimeEntry{sub: sub, name: op.Name})
	if err != nil {
		return nil, err
	}

	if err := conn.write(realtimeMessage{ID: id, Type: msgStart, Payload: payload}); err != nil {
		t.release(conn, id, false)
		return nil, fmt.Errorf("starting %s: %w: %w", op.Name, domain.ErrNetwork, err)
	}

	t.logger.Debug("subscription started",
		slog.String("operation", op.Name),
		slog.String("subscription_id", id),
	)

	sub.bindContext(ctx)
	return sub, nil
}

// Name identifies the realtime endpoint in health reports.
func (t *RealtimeTransport) Name() string {
	return "graphql-realtime"
}

// HealthCheck reports the most recent connection failure, cleared by the
// next successful handshake. An idle transport is healthy.
func (t *RealtimeTransport) HealthCheck(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.lastErr != nil {
		return fmt.Errorf("%s: %w", t.Name(), t.lastErr)
	}
	return nil
}

// authorization builds the header map the endpoint expects both in the
// connect URL and in every start message.
func (t *RealtimeTransport) authorization(op *Operation) (map[string]string, error) {
	u, err := url.Parse(t.endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("graphql endpoint %q is not an absolute URL: %w", t.endpoint, domain.ErrNetwork)
	}

	auth := map[string]string{"host": u.Host}
	for k, vs := range op.Header {
		if len(vs) > 0 {
			auth[strings.ToLower(k)] = vs[0]
		}
	}
	return auth, nil
}

func (t *RealtimeTransport) register(ctx context.Context, auth map[string]string, entry *realtimeEntry) (*realtimeConn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		conn, err := t.dial(ctx, auth)
		if err != nil {
			t.lastErr = err
			return nil, err
		}
		t.conn = conn
		t.lastErr = nil
		go t.readLoop(conn)
	}

	t.conn.subs[entry.sub.id] = entry
	return t.conn, nil
}

// release forgets a subscription, optionally telling the server to stop it,
// and closes the connection when it was the last one.
func (t *RealtimeTransport) release(conn *realtimeConn, id string, sendStop bool) {
	if conn == nil {
		return
	}

	t.mu.Lock()
	if _, ok := conn.subs[id]; !ok {
		t.mu.Unlock()
		return
	}
	delete(conn.subs, id)
	last := len(conn.subs) == 0
	if last && t.conn == conn {
		t.conn = nil
	}
	t.mu.Unlock()

	if sendStop {
		if err := conn.write(realtimeMessage{ID: id, Type: msgStop}); err != nil {
			t.logger.Debug("sending stop failed",
				slog.String("subscription_id", id),
				slog.Any("error", err),
			)
		}
	}
	if last {
		conn.close()
	}
}

// failAll ends every subscription on conn with err and closes it.
func (t *RealtimeTransport) failAll(conn *realtimeConn, err error) {
	t.mu.Lock()
	entries := conn.subs
	conn.subs = make(map[string]*realtimeEntry)
	if t.conn == conn {
		t.conn = nil
	}
	t.lastErr = err
	t.mu.Unlock()

	t.logger.Warn("realtime connection failed",
		slog.Int("subscriptions", len(entries)),
		slog.Any("error", err),
	)

	for _, e := range entries {
		t.deliver(e, Event{Phase: domain.PhaseError, Err: err})
	}
	conn.close()
}

func (t *RealtimeTransport) dial(ctx context.Context, auth map[string]string) (*realtimeConn, error) {
	target, err := realtimeURL(t.endpoint, t.override, auth)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, t.handshakeTimeout)
	defer cancel()

	ws, resp, err := t.dialer.DialContext(dialCtx, target, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("realtime handshake: HTTP %d: %w", resp.StatusCode, domain.ErrAuth)
		}
		return nil, fmt.Errorf("realtime dial: %w: %w", domain.ErrNetwork, err)
	}

	conn := &realtimeConn{
		ws:      ws,
		timeout: t.connectionTimeout,
		subs:    make(map[string]*realtimeEntry),
	}

	if err := conn.write(realtimeMessage{Type: msgConnectionInit}); err != nil {
		_ = ws.Close()
		return nil, fmt.Errorf("realtime init: %w: %w", domain.ErrNetwork, err)
	}

	if deadline, ok := dialCtx.Deadline(); ok {
		_ = ws.SetReadDeadline(deadline)
	}

	for {
		var msg realtimeMessage
		if err := ws.ReadJSON(&msg); err != nil {
			_ = ws.Close()
			return nil, fmt.Errorf("awaiting connection_ack: %w: %w", domain.ErrNetwork, err)
		}

		switch msg.Type {
		case msgConnectionAck:
			var ack struct {
				ConnectionTimeoutMs int64 `json:"connectionTimeoutMs"`
			}
			_ = json.Unmarshal(msg.Payload, &ack)
			if conn.timeout <= 0 {
				conn.timeout = defaultConnectionTimeout
				if ack.ConnectionTimeoutMs > 0 {
					conn.timeout = time.Duration(ack.ConnectionTimeoutMs) * time.Millisecond
				}
			}
			t.logger.Debug("realtime connection established",
				slog.Duration("connection_timeout", conn.timeout),
			)
			return conn, nil
		case msgConnectionError:
			_ = ws.Close()
			return nil, connectionError(msg.Payload)
		default:
			// Keep-alives may precede the ack.
		}
	}
}

func (t *RealtimeTransport) readLoop(conn *realtimeConn) {
	for {
		_ = conn.ws.SetReadDeadline(time.Now().Add(conn.timeout))

		var msg realtimeMessage
		if err := conn.ws.ReadJSON(&msg); err != nil {
			if conn.closed.Load() {
				return
			}
			t.failAll(conn, fmt.Errorf("realtime connection: %w: %w", domain.ErrNetwork, err))
			return
		}

		t.dispatch(conn, msg)
	}
}

func (t *RealtimeTransport) dispatch(conn *realtimeConn, msg realtimeMessage) {
	switch msg.Type {
	case msgKeepAlive:
		return
	case msgConnectionError:
		t.failAll(conn, connectionError(msg.Payload))
		return
	}

	t.mu.Lock()
	entry := conn.subs[msg.ID]
	t.mu.Unlock()
	if entry == nil {
		t.logger.Debug("realtime message for unknown subscription",
			slog.String("type", msg.Type),
			slog.String("subscription_id", msg.ID),
		)
		return
	}

	switch msg.Type {
	case msgStartAck:
		t.deliver(entry, Event{Phase: domain.PhaseStart})

	case msgData:
		var p httpResponse
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			t.deliver(entry, Event{Phase: domain.PhaseError, Err: fmt.Errorf("decoding %s event: %w: %w", entry.name, domain.ErrNetwork, err)})
			t.release(conn, msg.ID, true)
			return
		}
		if len(p.Errors) > 0 && isNull(p.Data) {
			t.deliver(entry, Event{Phase: domain.PhaseError, Err: &domain.GraphQLError{Errors: toErrorList(p.Errors)}})
			t.release(conn, msg.ID, true)
			return
		}
		if len(p.Errors) > 0 {
			t.logger.Warn("subscription event carried errors",
				slog.String("subscription_id", msg.ID),
				slog.String("operation", entry.name),
				slog.String("errors", (&domain.GraphQLError{Errors: toErrorList(p.Errors)}).Error()),
			)
		}
		t.deliver(entry, Event{Phase: domain.PhaseNext, Data: p.Data})

	case msgError:
		var p errorPayload
		_ = json.Unmarshal(msg.Payload, &p)
		t.deliver(entry, Event{Phase: domain.PhaseError, Err: &domain.GraphQLError{Errors: toErrorList(p.Errors)}})
		t.release(conn, msg.ID, false)

	case msgComplete:
		t.deliver(entry, Event{Phase: domain.PhaseComplete})
		t.release(conn, msg.ID, false)

	default:
		t.logger.Debug("ignoring realtime message", slog.String("type", msg.Type))
	}
}

func (t *RealtimeTransport) deliver(entry *realtimeEntry, ev Event) {
	if !entry.sub.emit(ev) {
		return
	}
	if t.metrics == nil {
		return
	}
	t.metrics.SubscriptionEvents.Add(context.Background(), 1, metric.WithAttributes(
		telemetry.AttrOperationName.String(entry.name),
		telemetry.AttrPhase.String(ev.Phase.String()),
	))
}

func (c *realtimeConn) write(msg realtimeMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(msg)
}

func (c *realtimeConn) close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = c.ws.Close()
	})
}

// realtimeURL derives the websocket URL from the GraphQL endpoint: the
// scheme becomes wss (ws for plain http), a managed host gains the
// "realtime" label and a custom domain gains a /realtime path. The
// authorization headers travel base64-encoded in the query string.
func realtimeURL(endpoint, override string, auth map[string]string) (string, error) {
	base := override
	if base == "" {
		u, err := url.Parse(endpoint)
		if err != nil || u.Host == "" {
			return "", fmt.Errorf("graphql endpoint %q is not an absolute URL: %w", endpoint, domain.ErrNetwork)
		}
		switch u.Scheme {
		case "http":
			u.Scheme = "ws"
		default:
			u.Scheme = "wss"
		}
		if strings.Contains(u.Host, "appsync-api") {
			u.Host = strings.Replace(u.Host, "appsync-api", "appsync-realtime-api", 1)
		} else {
			u.Path = strings.TrimSuffix(u.Path, "/") + "/realtime"
		}
		base = u.String()
	}

	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("realtime endpoint %q is not an absolute URL: %w", base, domain.ErrNetwork)
	}

	header, err := json.Marshal(auth)
	if err != nil {
		return "", fmt.Errorf("encoding realtime authorization: %w", err)
	}

	q := u.Query()
	q.Set("header", base64.StdEncoding.EncodeToString(header))
	q.Set("payload", emptyPayload)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// connectionError classifies a connection_error payload.
func connectionError(payload json.RawMessage) error {
	var p errorPayload
	_ = json.Unmarshal(payload, &p)

	gqlErr := &domain.GraphQLError{Errors: toErrorList(p.Errors)}
	if gqlErr.Unauthorized() {
		return fmt.Errorf("realtime connection rejected: %w: %s", domain.ErrAuth, gqlErr.Errors.Error())
	}
	return fmt.Errorf("realtime connection rejected: %w: %s", domain.ErrNetwork, gqlErr.Errors.Error())
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
