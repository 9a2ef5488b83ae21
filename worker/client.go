package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Client issues requests over a Conn and matches responses to waiting callers
// by correlation id. Ids are assigned from a counter starting at zero.
// Frames that are malformed or carry an id with no waiter are dropped.
//
// There is no retry and no timeout: an unanswered request stays pending until
// a reply arrives or the connection closes. Cancelling the context passed to
// Call stops the caller from waiting but does not revoke the request.
type Client struct {
	conn Conn

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]chan callResult
	closed  error
}

type callResult struct {
	err    error
	result json.RawMessage
}

func NewClient(conn Conn) *Client {
	return &Client{
		conn:    conn,
		pending: make(map[uint64]chan callResult),
	}
}

// ReadPump consumes response frames until the connection fails or the context
// is cancelled. It must run in its own goroutine for the lifetime of the
// client; when it returns, every pending and future call fails.
func (c *Client) ReadPump(ctx context.Context) {
	for {
		data, err := c.conn.Read(ctx)
		if err != nil {
			c.fail(fmt.Errorf("connection closed: %w", err))
			return
		}

		id, herr, result, err := decodeResponse(data)
		if err != nil {
			slog.Debug("dropping malformed frame", "error", err)
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[id]
		if ok {
			delete(c.pending, id)
		}
		c.mu.Unlock()

		if !ok {
			slog.Debug("dropping frame with unknown id", "id", id)
			continue
		}
		ch <- callResult{err: herr, result: result}
	}
}

// Call sends payload and blocks until the matching response arrives. A remote
// handler error is returned as a RemoteError. If result is non-nil the
// response value is unmarshalled into it; a null result leaves it untouched.
func (c *Client) Call(ctx context.Context, payload, result any) error {
	ch := make(chan callResult, 1)

	c.mu.Lock()
	if c.closed != nil {
		err := c.closed
		c.mu.Unlock()
		return err
	}
	id := c.nextID
	c.nextID++
	c.pending[id] = ch
	c.mu.Unlock()

	data, err := encodeRequest(id, payload)
	if err != nil {
		c.drop(id)
		return err
	}
	if err := c.conn.Write(ctx, data); err != nil {
		c.drop(id)
		return fmt.Errorf("send request %d: %w", id, err)
	}

	select {
	case <-ctx.Done():
		// The request stays in flight; the buffered channel absorbs a
		// late reply so the pump never blocks on an abandoned call.
		return ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return res.err
		}
		if result == nil || res.result == nil || bytes.Equal(res.result, []byte("null")) {
			return nil
		}
		if err := json.Unmarshal(res.result, result); err != nil {
			return fmt.Errorf("decode result for request %d: %w", id, err)
		}
		return nil
	}
}

func (c *Client) drop(id uint64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// fail rejects every pending call and marks the client unusable.
func (c *Client) fail(err error) {
	c.mu.Lock()
	c.closed = err
	pending := c.pending
	c.pending = make(map[uint64]chan callResult)
	c.mu.Unlock()

	for _, ch := range pending {
		ch <- callResult{err: err}
	}
}
