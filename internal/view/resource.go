// Package view holds the request/render state shared by every page and command.
package view

import (
	"context"
	"strings"
)

type State int

const (
	Loading State = iota
	Failed
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "error"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Resource is the outcome of one fetch: still loading, failed with a
// message, or ready with data. The zero value is Loading.
type Resource[T any] struct {
	State   State
	Message string
	Err     error // cause of a Failed resource, if any
	Data    T
}

func ReadyWith[T any](data T) Resource[T] {
	return Resource[T]{State: Ready, Data: data}
}

func FailedWith[T any](message string) Resource[T] {
	return Resource[T]{State: Failed, Message: message}
}

func (r Resource[T]) IsLoading() bool { return r.State == Loading }
func (r Resource[T]) IsFailed() bool  { return r.State == Failed }
func (r Resource[T]) IsReady() bool   { return r.State == Ready }

// Load runs fetch and captures its outcome. fallback is used as the message
// when the error has none.
func Load[T any](ctx context.Context, fallback string, fetch func(ctx context.Context) (T, error)) Resource[T] {
	data, err := fetch(ctx)
	if err != nil {
		message := strings.TrimSpace(err.Error())
		if message == "" {
			message = fallback
		}
		failed := FailedWith[T](message)
		failed.Err = err
		return failed
	}
	return ReadyWith(data)
}
