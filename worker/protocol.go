// Package worker implements a small correlation-id RPC protocol over a
// message transport. Requests are JSON arrays `[id, payload]` and responses
// are `[id, error, result]` where exactly one of error and result is null.
// The protocol carries no framing of its own; each message is one frame on
// the underlying transport.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
)

// Conn is a single peer-to-peer message transport. Read blocks until a frame
// arrives or the context is cancelled. Implementations are the websocket
// adapter and the in-process pipe.
type Conn interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// RemoteError is an error string reported by the remote handler.
type RemoteError string

func (e RemoteError) Error() string { return string(e) }

func encodeRequest(id uint64, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal([]json.RawMessage{mustMarshalID(id), raw})
}

func decodeRequest(data []byte) (id uint64, payload json.RawMessage, err error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return 0, nil, fmt.Errorf("decode request frame: %w", err)
	}
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("request frame has %d elements, want 2", len(parts))
	}
	if err := json.Unmarshal(parts[0], &id); err != nil {
		return 0, nil, fmt.Errorf("decode request id: %w", err)
	}
	return id, parts[1], nil
}

func encodeResponse(id uint64, herr error, result any) ([]byte, error) {
	errJSON := json.RawMessage("null")
	resJSON := json.RawMessage("null")
	if herr != nil {
		raw, err := json.Marshal(herr.Error())
		if err != nil {
			return nil, fmt.Errorf("marshal error string: %w", err)
		}
		errJSON = raw
	} else if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("marshal result: %w", err)
		}
		resJSON = raw
	}
	return json.Marshal([]json.RawMessage{mustMarshalID(id), errJSON, resJSON})
}

func decodeResponse(data []byte) (id uint64, herr error, result json.RawMessage, err error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return 0, nil, nil, fmt.Errorf("decode response frame: %w", err)
	}
	if len(parts) != 3 {
		return 0, nil, nil, fmt.Errorf("response frame has %d elements, want 3", len(parts))
	}
	if err := json.Unmarshal(parts[0], &id); err != nil {
		return 0, nil, nil, fmt.Errorf("decode response id: %w", err)
	}
	var errStr *string
	if err := json.Unmarshal(parts[1], &errStr); err != nil {
		return 0, nil, nil, fmt.Errorf("decode response error: %w", err)
	}
	if errStr != nil {
		return id, RemoteError(*errStr), nil, nil
	}
	return id, nil, parts[2], nil
}

func mustMarshalID(id uint64) json.RawMessage {
	raw, err := json.Marshal(id)
	if err != nil {
		// uint64 cannot fail to marshal
		panic(err)
	}
	return raw
}
