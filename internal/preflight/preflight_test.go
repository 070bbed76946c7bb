package preflight

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	assert.NoError(t, Check(context.Background(), ln.Addr().String(), time.Second))
}

func TestCheckUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	err = Check(context.Background(), addr, time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Contains(t, err.Error(), addr)
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Check(ctx, "127.0.0.1:1", time.Second)
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestGuidance(t *testing.T) {
	msg := Guidance("127.0.0.1:8000", errors.New("connection refused"))
	for _, want := range []string{"not running", "127.0.0.1:8000", "http.server 8000", "connection refused"} {
		assert.Contains(t, msg, want)
	}

	assert.NotContains(t, Guidance("localhost:9000", nil), "Error:")
}
