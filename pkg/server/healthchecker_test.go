package server

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOkHealthChecker(t *testing.T) {
	assert.True(t, NewOkHealthChecker().Healthy(context.Background()))
}

func TestProbeHealthChecker(t *testing.T) {
	healthy := NewProbeHealthChecker("ok", func(context.Context) error { return nil })
	assert.True(t, healthy.Healthy(context.Background()))

	failing := NewProbeHealthChecker("broken", func(context.Context) error { return errors.New("boom") })
	assert.False(t, failing.Healthy(context.Background()))
}
