package adapter

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/utils"
)

const (
	defaultReconnectDelay = 5 * time.Second

	// the server pings every 30s; a silent connection is considered dead
	// after readTimeout.
	readTimeout  = 75 * time.Second
	controlWrite = 5 * time.Second
)

// NotificationListener keeps a websocket open to the record store and hands
// every text message to a callback. A dropped connection is redialed after
// the reconnect delay until Stop is called.
//
// NotificationListener implements workers.Worker.
type NotificationListener struct {
	url            string
	header         http.Header
	dialer         *websocket.Dialer
	reconnectDelay time.Duration

	onNotification func(payload []byte)
	onConnect      func()

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once

	logger *logger.Logger
}

// NewNotificationListener prepares a listener for the record store at
// cfg.HTTPAddress. onNotification is called on the listener goroutine, one
// message at a time.
func NewNotificationListener(cfg config.ClientAdapter, reconnectDelay time.Duration, onNotification func(payload []byte), logger *logger.Logger) (*NotificationListener, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return nil, ErrEmptyAddress
	}
	if reconnectDelay <= 0 {
		reconnectDelay = defaultReconnectDelay
	}

	header := http.Header{}
	if token := strings.TrimSpace(cfg.Token); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	dialer := *websocket.DefaultDialer
	if cfg.RequestTimeout > 0 {
		dialer.HandshakeTimeout = cfg.RequestTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &NotificationListener{
		url:            websocketURL(cfg.HTTPAddress) + notificationsPath,
		header:         header,
		dialer:         &dialer,
		reconnectDelay: reconnectDelay,
		onNotification: onNotification,
		ctx:            ctx,
		cancel:         cancel,
		logger:         logger,
	}, nil
}

// OnConnect registers fn to run after every successful dial. Notifications
// sent while the listener was disconnected are lost, so callers typically
// trigger a sync here. It must be called before Run.
func (l *NotificationListener) OnConnect(fn func()) {
	l.onConnect = fn
}

// Run starts the listener goroutine. Calling Run more than once has no
// effect.
func (l *NotificationListener) Run() {
	l.once.Do(func() {
		l.wg.Add(1)
		go l.loop()
	})
}

// Stop closes the connection and waits for the listener goroutine to exit.
func (l *NotificationListener) Stop() {
	l.cancel()
	l.wg.Wait()
}

func (l *NotificationListener) loop() {
	defer l.wg.Done()

	for {
		err := l.listen()
		if l.ctx.Err() != nil {
			return
		}

		l.logger.Warn().
			Str("func", "NotificationListener.loop").
			Err(err).
			Dur("reconnect_delay", l.reconnectDelay).
			Msg("notification stream interrupted")

		timer := time.NewTimer(l.reconnectDelay)
		select {
		case <-l.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (l *NotificationListener) listen() error {
	conn, resp, err := l.dialer.DialContext(l.ctx, l.url, l.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if l.ctx.Err() != nil {
			return ErrListenerStopped
		}
		return err
	}
	defer conn.Close()

	stop := context.AfterFunc(l.ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(controlWrite))
		_ = conn.Close()
	})
	defer stop()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(controlWrite))
	})

	l.logger.Info().
		Str("func", "NotificationListener.listen").
		Str("url", l.url).
		Msg("notification stream connected")

	if l.onConnect != nil {
		l.onConnect()
	}

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		if messageType != websocket.TextMessage || l.onNotification == nil {
			continue
		}
		l.onNotification(payload)
	}
}

// websocketURL swaps the http scheme of the record store address for ws.
func websocketURL(address string) string {
	base := utils.BaseURL(address)
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}
