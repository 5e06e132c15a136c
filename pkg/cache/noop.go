package cache

import (
	"context"
	"time"
)

// Noop never stores anything. Used when Redis is disabled and in tests.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (Noop) Delete(context.Context, ...string) error { return nil }

func (Noop) DeletePattern(context.Context, string) error { return nil }

func (Noop) Ping(context.Context) error { return nil }
