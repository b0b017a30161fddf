package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	pkgerrors "github.com/jdziat/dify-go/pkg/errors"
)

// DoneMarker terminates a stream when sent as event data.
const DoneMarker = "[DONE]"

// ErrorEvent is implemented by decoded stream values that can carry an
// in-band error. When StreamErr returns non-nil the stream stops and Err
// reports it.
type ErrorEvent interface {
	StreamErr() error
}

// Stream decodes the data of each server-sent event as JSON into T.
// Keep-alive "ping" events and events without data are skipped.
//
//	for stream.Next() {
//		ev := stream.Current()
//		...
//	}
//	if err := stream.Err(); err != nil { ... }
//
// The stream closes itself at end of input or on error; call Close when
// abandoning it early.
type Stream[T any] struct {
	events  *EventReader
	current T
	raw     Event
	err     error
	closed  bool
}

// NewStream wraps an event reader.
func NewStream[T any](events *EventReader) *Stream[T] {
	return &Stream[T]{events: events}
}

// Next advances to the next value. It returns false at the end of the
// stream or on error.
func (s *Stream[T]) Next() bool {
	if s.closed || s.err != nil {
		return false
	}
	for {
		ev, err := s.events.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("dify: read stream (request_id=%s): %w", s.events.RequestID(), err)
			}
			s.Close()
			return false
		}
		if ev.Event == "ping" || ev.Data == "" {
			continue
		}
		if ev.Data == DoneMarker {
			s.Close()
			return false
		}

		var v T
		if err := json.Unmarshal([]byte(ev.Data), &v); err != nil {
			s.err = fmt.Errorf("dify: decode stream event (request_id=%s): %w", s.events.RequestID(), err)
			s.Close()
			return false
		}
		if err := inBandError(&v); err != nil {
			var streamErr *pkgerrors.StreamError
			if errors.As(err, &streamErr) && streamErr.RequestID == "" {
				streamErr.RequestID = s.events.RequestID()
			}
			s.err = err
			s.Close()
			return false
		}
		s.current = v
		s.raw = ev
		return true
	}
}

func inBandError[T any](v *T) error {
	if ee, ok := any(v).(ErrorEvent); ok {
		return ee.StreamErr()
	}
	if ee, ok := any(*v).(ErrorEvent); ok {
		return ee.StreamErr()
	}
	return nil
}

// Current returns the value decoded by the last successful Next.
func (s *Stream[T]) Current() T {
	return s.current
}

// RawEvent returns the server-sent event behind Current.
func (s *Stream[T]) RawEvent() Event {
	return s.raw
}

// Err returns the error that stopped the stream, if any.
func (s *Stream[T]) Err() error {
	return s.err
}

// Close releases the underlying response. It is safe to call more than once.
func (s *Stream[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.events.Close()
}

// All returns an iterator over the remaining values. The final pair
// carries the stream error, if any. Breaking out of the loop closes the
// stream.
func (s *Stream[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer s.Close()
		for s.Next() {
			if !yield(s.current, nil) {
				return
			}
		}
		if s.err != nil {
			var zero T
			yield(zero, s.err)
		}
	}
}

// Collect drains the stream into a slice.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for s.Next() {
		out = append(out, s.current)
	}
	return out, s.err
}
