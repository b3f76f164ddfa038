package api

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		assert.Equal(t, boom, b.Execute(func() error { return boom }))
	}
	assert.Equal(t, BreakerOpen, b.State())

	// Fast-fail while open — fn must not run.
	ran := false
	err := b.Execute(func() error { ran = true; return nil })
	assert.ErrorIs(t, err, ErrBackendIndisponible)
	assert.False(t, ran)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 2, SuccessThreshold: 1, OpenTimeout: time.Minute})
	boom := errors.New("boom")

	_ = b.Execute(func() error { return boom })
	_ = b.Execute(func() error { return nil })
	_ = b.Execute(func() error { return boom })
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 10 * time.Millisecond})
	boom := errors.New("boom")

	_ = b.Execute(func() error { return boom })
	assert.Equal(t, BreakerOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, BreakerHalfOpen, b.State())

	// Two successful probes close the circuit again.
	assert.NoError(t, b.Execute(func() error { return nil }))
	assert.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, OpenTimeout: 10 * time.Millisecond})
	boom := errors.New("boom")

	_ = b.Execute(func() error { return boom })
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, BreakerHalfOpen, b.State())

	_ = b.Execute(func() error { return boom })
	assert.Equal(t, BreakerOpen, b.State())
}
