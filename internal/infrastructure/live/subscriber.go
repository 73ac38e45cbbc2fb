package live

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coachboard/coachboard/internal/platform/logging"
	crerr "github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	// EventDataUpdated is broadcast by the team server after any write.
	EventDataUpdated = "data_updated"
)

// Message is one frame on the live-update channel.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// Handler is called when the server reports changed data. Bursts of updates
// that arrive while a call is running collapse into one follow-up call.
type Handler func(ctx context.Context, msg Message) error

type Config struct {
	URL            string
	SessionCookie  string
	ReconnectDelay time.Duration
	Dialer         *websocket.Dialer
	Logger         *logging.Logger
}

// Subscriber keeps a websocket open to the team server and triggers the
// handler on every data_updated frame. It reconnects until its context ends.
type Subscriber struct {
	url            string
	header         http.Header
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
	logger         *logging.Logger
	handler        Handler
}

func NewSubscriber(cfg Config, handler Handler) (*Subscriber, error) {
	if handler == nil {
		return nil, crerr.New("live update handler is required")
	}
	u, err := url.Parse(strings.TrimSpace(cfg.URL))
	if err != nil {
		return nil, crerr.Wrapf(err, "parse LIVE_URL %q", cfg.URL)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, crerr.Newf("LIVE_URL %q uses unsupported scheme=%q; expected ws or wss", cfg.URL, u.Scheme)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	dialer := cfg.Dialer
	if dialer == nil {
		dialer = &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		}
	}
	delay := cfg.ReconnectDelay
	if delay <= 0 {
		delay = 3 * time.Second
	}

	header := http.Header{}
	if cookie := strings.TrimSpace(cfg.SessionCookie); cookie != "" {
		header.Add("Cookie", (&http.Cookie{Name: "session", Value: cookie}).String())
	}

	return &Subscriber{
		url:            u.String(),
		header:         header,
		reconnectDelay: delay,
		dialer:         dialer,
		logger:         logger.Named("live"),
		handler:        handler,
	}, nil
}

// Run blocks until ctx is cancelled.
func (s *Subscriber) Run(ctx context.Context) error {
	pending := make(chan Message, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.dispatch(ctx, pending)
	}()
	defer wg.Wait()

	for {
		err := s.listen(ctx, pending)
		if ctx.Err() != nil {
			return nil
		}
		s.logger.WarnContext(ctx, "live channel disconnected", "error", err, "retry_in", s.reconnectDelay.String())

		timer := time.NewTimer(s.reconnectDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

func (s *Subscriber) dispatch(ctx context.Context, pending <-chan Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-pending:
			if err := s.handler(ctx, msg); err != nil {
				s.logger.WarnContext(ctx, "live update handler failed", "error", err)
			}
		}
	}
}

func (s *Subscriber) listen(ctx context.Context, pending chan Message) error {
	conn, resp, err := s.dialer.DialContext(ctx, s.url, s.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return crerr.Wrap(err, "dial live channel")
	}
	s.logger.InfoContext(ctx, "live channel connected", "url", s.url)

	done := make(chan struct{})
	defer close(done)
	go s.keepAlive(ctx, conn, done)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg Message
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			s.logger.DebugContext(ctx, "ignored malformed live frame", "error", err)
			continue
		}
		if msg.Type != EventDataUpdated {
			continue
		}
		s.logger.DebugContext(ctx, "data updated on server", "message", msg.Message)
		select {
		case pending <- msg:
		default:
		}
	}
}

// keepAlive pings the server and closes conn once ctx ends or the reader quits.
func (s *Subscriber) keepAlive(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
