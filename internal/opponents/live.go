package opponents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/model"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	requestEvent  = "request_seeds"
	responseEvent = "seeds"
)

// DefaultLiveTimeout bounds connect and reply when Live.Timeout is zero.
const DefaultLiveTimeout = 15 * time.Second

// Live fetches competitor plans from a socket.io server.
type Live struct {
	URL       string
	Namespace string
	Timeout   time.Duration
}

var _ Source = (*Live)(nil)

type reply struct {
	data model.CompetitorData
	err  error
}

// Fetch implements Source. Any failure, including a timeout, is returned;
// there are no retries.
func (l *Live) Fetch(ctx context.Context, graphName string, n int) (model.CompetitorData, error) {
	logger := ctxlog.FromContext(ctx).With("source", "live", "url", l.URL)
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultLiveTimeout
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	io, err := l.connect(opCtx)
	if err != nil {
		return nil, err
	}
	defer io.Disconnect()

	done := make(chan reply, 1)
	io.Once(types.EventName(responseEvent), func(data ...any) {
		logger.Debug("EVENT HANDLER: seeds event received")
		if len(data) == 0 {
			done <- reply{err: fmt.Errorf("empty %q event", responseEvent)}
			return
		}
		raw, err := json.Marshal(data[0])
		if err != nil {
			done <- reply{err: fmt.Errorf("failed to re-encode %q payload: %w", responseEvent, err)}
			return
		}
		parsed, err := Parse(raw, n)
		done <- reply{data: parsed, err: err}
	})

	logger.Info("Requesting live opponents.", "graph", graphName, "seeds", n)
	io.Emit(requestEvent, map[string]any{"graph": graphName, "seeds": n})

	select {
	case <-opCtx.Done():
		return nil, fmt.Errorf("timed out after %v waiting for %q", timeout, responseEvent)
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("live opponents: %w", res.err)
		}
		logger.Info("Live opponents received.", "teams", len(res.data))
		return res.data, nil
	}
}

func (l *Live) connect(ctx context.Context) (*socket.Socket, error) {
	logger := ctxlog.FromContext(ctx).With("url", l.URL)

	parsedURL, err := url.Parse(l.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("live URL %q must include scheme and host", l.URL)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	namespace := l.Namespace
	if namespace == "" {
		namespace = "/"
	}
	io := manager.Socket(namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected.", "sid", io.Id())
		select {
		case connectChan <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case connectChan <- err:
		default:
		}
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return io, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("gave up waiting for socket.io connection: %w", ctx.Err())
	}
}
