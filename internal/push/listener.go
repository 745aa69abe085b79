package push

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blogdeck/blogdeck/internal/api"
)

// Sink receives decoded push events. *state.Store implements it; the
// indirection keeps the listener testable without a store.
type Sink interface {
	UpsertPost(p api.Post)
	UpsertComment(c api.Comment)
	RemovePost(id string)
	RemoveComment(id string)
}

// Event names broadcast by the server.
const (
	EventNewPost       = "newPost"
	EventNewComment    = "newComment"
	EventDeletePost    = "deletePost"
	EventDeleteComment = "deleteComment"
)

// subscribedEvents is the full set of event kinds this client folds into the
// store.
var subscribedEvents = []string{EventNewPost, EventNewComment, EventDeletePost, EventDeleteComment}

// frame is one message on the push channel, in either direction.
type frame struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data,omitempty"`
	Events []string        `json:"events,omitempty"`
}

const (
	reconnectEvery   = 2 * time.Second
	dialTimeout      = 5 * time.Second
	closeGracePeriod = time.Second
)

// Listener maintains the websocket connection to the push channel and folds
// incoming events into its Sink.
type Listener struct {
	url    string
	sink   Sink
	log    *zap.Logger
	dialer *websocket.Dialer

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	connected atomic.Bool
}

// New builds a Listener for the given API base URL. The push endpoint is
// /ws on the same host, with the scheme switched to ws/wss.
func New(base url.URL, sink Sink, log *zap.Logger) *Listener {
	switch base.Scheme {
	case "https":
		base.Scheme = "wss"
	default:
		base.Scheme = "ws"
	}
	base.Path = "/ws"
	if log == nil {
		log = zap.NewNop()
	}
	return &Listener{
		url:    base.String(),
		sink:   sink,
		log:    log,
		dialer: &websocket.Dialer{HandshakeTimeout: dialTimeout},
	}
}

// Connected reports whether the channel is currently live. The UI uses this
// to decide whether a create/delete needs a reload fallback instead of
// waiting for a push event that cannot arrive.
func (l *Listener) Connected() bool {
	return l.connected.Load()
}

// Start attaches the listener: it connects in the background and keeps
// reconnecting until Stop is called or ctx ends. Starting a running listener
// is a no-op.
func (l *Listener) Start(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	go l.run(runCtx, l.done)
}

// Stop detaches the listener: it unsubscribes, closes the connection, and
// waits for the read loop to exit so no store mutation can happen after
// teardown. Stopping a stopped listener is a no-op.
func (l *Listener) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	done := l.done
	l.cancel = nil
	l.done = nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (l *Listener) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(reconnectEvery)
	defer ticker.Stop()

	for {
		if err := l.connectAndListen(ctx); err != nil && ctx.Err() == nil {
			l.log.Warn("push channel lost", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// connectAndListen dials once and reads events until the connection or the
// context ends.
func (l *Listener) connectAndListen(ctx context.Context) error {
	conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return err
	}

	if err := conn.WriteJSON(frame{Event: "subscribe", Events: subscribedEvents}); err != nil {
		_ = conn.Close()
		return err
	}
	l.connected.Store(true)
	defer l.connected.Store(false)
	l.log.Info("push channel attached", zap.String("url", l.url))

	// Unblock ReadMessage on teardown by closing the connection from the
	// side; the unsubscribe frame mirrors the subscribe above.
	listenDone := make(chan struct{})
	defer close(listenDone)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteJSON(frame{Event: "unsubscribe", Events: subscribedEvents})
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(closeGracePeriod))
			_ = conn.Close()
		case <-listenDone:
			_ = conn.Close()
		}
	}()

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		l.apply(f)
	}
}

// apply folds one event into the sink. Unknown events are ignored; the store
// guarantees idempotence for duplicate deliveries.
func (l *Listener) apply(f frame) {
	switch f.Event {
	case EventNewPost:
		var p api.Post
		if err := json.Unmarshal(f.Data, &p); err != nil {
			l.log.Warn("bad newPost payload", zap.Error(err))
			return
		}
		l.sink.UpsertPost(p)
	case EventNewComment:
		var c api.Comment
		if err := json.Unmarshal(f.Data, &c); err != nil {
			l.log.Warn("bad newComment payload", zap.Error(err))
			return
		}
		l.sink.UpsertComment(c)
	case EventDeletePost:
		var id string
		if err := json.Unmarshal(f.Data, &id); err != nil {
			l.log.Warn("bad deletePost payload", zap.Error(err))
			return
		}
		l.sink.RemovePost(id)
	case EventDeleteComment:
		var id string
		if err := json.Unmarshal(f.Data, &id); err != nil {
			l.log.Warn("bad deleteComment payload", zap.Error(err))
			return
		}
		l.sink.RemoveComment(id)
	default:
		l.log.Debug("ignoring push event", zap.String("event", f.Event))
	}
}
