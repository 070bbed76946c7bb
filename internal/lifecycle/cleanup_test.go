package lifecycle

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteReverseOrder(t *testing.T) {
	m := NewManager(time.Second)
	var order []string
	for _, name := range []string{"broker", "source", "view"} {
		name := name
		m.RegisterFunc(name, func() error {
			order = append(order, name)
			return nil
		})
	}
	require.Equal(t, 3, m.Len())

	errs := m.Execute()
	assert.Empty(t, errs)
	assert.Equal(t, []string{"view", "source", "broker"}, order)
}

func TestExecuteOnce(t *testing.T) {
	m := NewManager(time.Second)
	var calls atomic.Int32
	m.RegisterFunc("overlay", func() error {
		calls.Add(1)
		return errors.New("already closed")
	})

	first := m.Execute()
	second := m.Execute()
	assert.Equal(t, int32(1), calls.Load())
	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.EqualError(t, first[0], "overlay: already closed")
}

func TestExecuteContinuesAfterErrorAndPanic(t *testing.T) {
	m := NewManager(time.Second)
	reached := false
	m.RegisterFunc("first", func() error {
		reached = true
		return nil
	})
	m.RegisterFunc("panics", func() error { panic("boom") })
	m.RegisterFunc("fails", func() error { return errors.New("nope") })

	errs := m.Execute()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "fails")
	assert.Contains(t, errs[1].Error(), "panic")
	assert.True(t, reached, "remaining resources still run")
}

func TestExecuteTimeout(t *testing.T) {
	m := NewManager(20 * time.Millisecond)
	release := make(chan struct{})
	defer close(release)
	m.RegisterFunc("stuck", func() error {
		<-release
		return nil
	})

	start := time.Now()
	errs := m.Execute()
	assert.Less(t, time.Since(start), time.Second)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrTimeout)
}

func TestExecuteEmpty(t *testing.T) {
	assert.Nil(t, NewManager(0).Execute())
}
