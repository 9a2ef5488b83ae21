package worker

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Handler processes one request payload and returns the result to send back.
// An error becomes the error slot of the response frame.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Server answers requests arriving on a Conn. Requests are handled one at a
// time in arrival order, so responses to a single peer never interleave.
type Server struct {
	conn    Conn
	handler Handler
}

func NewServer(conn Conn, handler Handler) *Server {
	return &Server{conn: conn, handler: handler}
}

// Serve reads and answers requests until the connection fails or the context
// is cancelled. Malformed frames are dropped.
func (s *Server) Serve(ctx context.Context) error {
	for {
		data, err := s.conn.Read(ctx)
		if err != nil {
			return err
		}

		id, payload, err := decodeRequest(data)
		if err != nil {
			slog.Debug("dropping malformed frame", "error", err)
			continue
		}

		result, herr := s.handler(ctx, payload)
		frame, err := encodeResponse(id, herr, result)
		if err != nil {
			// The handler produced an unmarshalable result; report
			// that instead of going silent.
			frame, err = encodeResponse(id, err, nil)
			if err != nil {
				return err
			}
		}
		if err := s.conn.Write(ctx, frame); err != nil {
			return err
		}
	}
}
