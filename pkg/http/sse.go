package http

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
)

// Event is one server-sent event.
type Event struct {
	ID    string
	Event string
	Data  string
	Retry time.Duration
}

// EventReader decodes a text/event-stream body.
//
// Lines may end in "\n" or "\r\n". Multiple data lines are joined with
// "\n". Comment lines (starting with ':') are ignored. An event is
// dispatched on a blank line, or at end of input if one is pending.
type EventReader struct {
	r         *bufio.Reader
	closer    io.Closer
	lastID    string
	requestID string
	done      bool
}

// NewEventReader creates a reader over r. If r is an io.Closer, Close
// closes it.
func NewEventReader(r io.Reader) *EventReader {
	er := &EventReader{r: bufio.NewReaderSize(r, 64*1024)}
	if c, ok := r.(io.Closer); ok {
		er.closer = c
	}
	return er
}

// WithRequestID records the X-Request-ID of the call that opened the
// stream. Streams stamp it on the errors they report.
func (e *EventReader) WithRequestID(id string) *EventReader {
	e.requestID = id
	return e
}

// RequestID returns the request ID recorded with WithRequestID.
func (e *EventReader) RequestID() string {
	return e.requestID
}

// LastEventID returns the most recent id field seen.
func (e *EventReader) LastEventID() string {
	return e.lastID
}

// Next returns the next event, or io.EOF when the stream ends.
func (e *EventReader) Next() (Event, error) {
	if e.done {
		return Event{}, io.EOF
	}

	var (
		ev      Event
		data    strings.Builder
		hasData bool
		pending bool
	)
	for {
		line, err := e.r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Event{}, err
		}
		eof := err != nil

		line = strings.TrimRight(line, "\r\n")
		switch {
		case line == "":
			if pending {
				e.done = eof
				return finish(ev, &data), nil
			}
		case line[0] == ':':
			// comment
		default:
			field, value, found := strings.Cut(line, ":")
			if found {
				value = strings.TrimPrefix(value, " ")
			}
			switch field {
			case "data":
				if hasData {
					data.WriteByte('\n')
				}
				data.WriteString(value)
				hasData = true
				pending = true
			case "event":
				ev.Event = value
				pending = true
			case "id":
				if !strings.ContainsRune(value, 0) {
					ev.ID = value
					e.lastID = value
				}
			case "retry":
				if ms, err := strconv.Atoi(value); err == nil {
					ev.Retry = time.Duration(ms) * time.Millisecond
				}
			}
		}

		if eof {
			e.done = true
			if pending {
				return finish(ev, &data), nil
			}
			return Event{}, io.EOF
		}
	}
}

func finish(ev Event, data *strings.Builder) Event {
	ev.Data = data.String()
	return ev
}

// Close closes the underlying body.
func (e *EventReader) Close() error {
	e.done = true
	if e.closer != nil {
		return e.closer.Close()
	}
	return nil
}
