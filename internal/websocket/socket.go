// Package websocket connects browsers to their mounted page instances.
package websocket

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/b2bsite/internal/live"
	"github.com/nfrund/b2bsite/internal/middleware"
)

const writeTimeout = 10 * time.Second

// Options configure the upgrade.
type Options struct {
	// OriginPatterns lists the hosts allowed to open a socket besides the
	// request's own host.
	OriginPatterns []string
	// InsecureSkipVerify disables the origin check. Development only.
	InsecureSkipVerify bool
}

// Socket serves the live page websocket. Each connection is bound to one
// page instance for its whole life; closing it unmounts the instance.
type Socket struct {
	manager *live.Manager
	opts    Options
}

// NewSocket returns a handler backed by manager.
func NewSocket(manager *live.Manager, opts Options) *Socket {
	return &Socket{manager: manager, opts: opts}
}

// Handler upgrades GET /live/:id/ws and serves it until either side closes.
func (s *Socket) Handler(c echo.Context) error {
	id := c.Param("id")
	in, err := s.manager.Get(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "page not found").SetInternal(err)
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns:     s.opts.OriginPatterns,
		InsecureSkipVerify: s.opts.InsecureSkipVerify,
	})
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to upgrade connection to WebSocket", "error", err)
		return nil
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request().Context()))
	defer cancel()

	outbound, err := in.Attach(ctx)
	if err != nil {
		conn.Close(websocket.StatusGoingAway, "page expired")
		return nil
	}
	logger := middleware.FromContext(ctx)
	logger.Debug("Live socket attached")

	replies := make(chan []byte, 8)
	go s.writePump(ctx, cancel, conn, outbound, replies, logger)
	s.readPump(ctx, conn, in, replies, logger)

	cancel()
	s.manager.Unmount(context.WithoutCancel(c.Request().Context()), id, live.ReasonDisconnect)
	logger.Debug("Live socket closed")
	return nil
}

// readPump applies each incoming event and queues its fragments for the
// writer. Rejected events are logged and skipped.
func (s *Socket) readPump(ctx context.Context, conn *websocket.Conn, in *live.Instance, replies chan<- []byte, logger *slog.Logger) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				logger.Debug("WebSocket closed by client")
			} else if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				logger.Warn("WebSocket read error", "error", err)
			}
			return
		}

		out, err := handle(ctx, in, data)
		if err == nil && len(out) > 0 {
			select {
			case replies <- out:
			case <-ctx.Done():
				return
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, live.ErrInvalidEvent):
			logger.Warn("Rejected page event", "error", err)
		case errors.Is(err, live.ErrUnmounted), errors.Is(err, context.Canceled):
			return
		default:
			logger.Error("Failed to handle page event", "error", err)
		}
	}
}

func handle(ctx context.Context, in *live.Instance, data []byte) ([]byte, error) {
	values, err := live.DecodeValues(data)
	if err != nil {
		return nil, err
	}
	ev, err := live.ParseEvent(values)
	if err != nil {
		return nil, err
	}
	return in.Dispatch(ctx, ev)
}

// writePump is the only writer on conn. It stops when the instance releases
// the socket or the connection fails, and closes the connection on the way
// out.
func (s *Socket) writePump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, outbound <-chan []byte, replies <-chan []byte, logger *slog.Logger) {
	defer cancel()
	for {
		var msg []byte
		select {
		case m, ok := <-outbound:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "page unmounted")
				return
			}
			msg = m
		case msg = <-replies:
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}

		wctx, wcancel := context.WithTimeout(ctx, writeTimeout)
		err := conn.Write(wctx, websocket.MessageText, msg)
		wcancel()
		if err != nil {
			logger.Warn("WebSocket write error", "error", err)
			conn.Close(websocket.StatusInternalError, "write failed")
			return
		}
	}
}
