package sse

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Envelope defines the interface for content that can be streamed to a client.
type Envelope interface {
	String() string // Represent the envelope contents as a string for transmission.
}

// Message represents a simple message implementation.
type Message struct {
	Event string
	Time  time.Time
	Data  string
}

// NewMessage returns a new message instance.
func NewMessage(data string) *Message {
	return &Message{
		Data: data,
		Time: time.Now(),
	}
}

// String returns the message as a string.
func (m *Message) String() string {
	sb := strings.Builder{}

	if m.Event != "" {
		sb.WriteString(fmt.Sprintf("event: %s\n", m.Event))
	}
	sb.WriteString(fmt.Sprintf("data: %v\n\n", m.Data))

	return sb.String()
}

// WithEvent sets the event name for the message.
func (m *Message) WithEvent(event string) Envelope {
	m.Event = event
	return m
}

// Stream sets event-stream headers on the response and runs the given
// function inside the body stream writer. The context passed to run is
// cancelled when the client disconnects or a write fails, so callers can
// skip work that only matters for a connected client.
func Stream(c *fiber.Ctx, run func(ctx context.Context, send func(Envelope))) {
	fctx := c.Context()

	fctx.SetContentType("text/event-stream")
	fctx.Response.Header.Set("Cache-Control", "no-cache")
	fctx.Response.Header.Set("Connection", "keep-alive")
	fctx.Response.Header.Set("X-Accel-Buffering", "no") // Disable proxy buffering

	fctx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-fctx.Done():
				cancel()
			case <-done:
			}
		}()

		send := func(e Envelope) {
			if ctx.Err() != nil {
				return
			}
			if _, err := fmt.Fprint(w, e.String()); err != nil {
				cancel()
				return
			}
			if err := w.Flush(); err != nil {
				cancel()
			}
		}

		// Initial connection message
		fmt.Fprint(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
		w.Flush()

		run(ctx, send)
	}))
}
