package server

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gronskott/happyplants/internal/config"
	"github.com/gronskott/happyplants/internal/dispatch"
	"github.com/gronskott/happyplants/internal/protocol"
)

type echoHandler struct{}

func (echoHandler) Respond(_ context.Context, req protocol.Message) protocol.Message {
	return protocol.Message{Type: req.Type, Success: true, Text: req.Text}
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func startServer(t *testing.T, registry *dispatch.Registry) (string, context.CancelFunc) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	srv := New(newNoopLogger(), config.TCPServer{
		AddressTCP:  addr,
		ReadTimeout: 5 * time.Second,
	}, registry)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("server did not stop in time")
		}
	})

	// Ждём, пока слушатель поднимется.
	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return false
		}
		_ = conn.Close()
		return true
	}, 3*time.Second, 50*time.Millisecond)

	return addr, cancel
}

func sendMessage(t *testing.T, conn net.Conn, msg protocol.Message) {
	payload, err := json.Marshal(msg)
	require.NoError(t, err)
	payload = append(payload, '\n')
	_, err = conn.Write(payload)
	require.NoError(t, err)
}

func TestServer_RequestResponseRoundTrip(t *testing.T) {
	registry := dispatch.NewRegistry(newNoopLogger())
	registry.Register(protocol.TypeSearch, echoHandler{})

	addr, _ := startServer(t, registry)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	sendMessage(t, conn, protocol.Message{Type: protocol.TypeSearch, Text: "aloe"})

	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	require.NoError(t, err)

	var resp protocol.Message
	require.NoError(t, json.Unmarshal(line, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "aloe", resp.Text)
}

func TestServer_SequentialRequestsOnOneConnection(t *testing.T) {
	registry := dispatch.NewRegistry(newNoopLogger())
	registry.Register(protocol.TypeSearch, echoHandler{})

	addr, _ := startServer(t, registry)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	reader := bufio.NewReader(conn)
	for _, text := range []string{"first", "second", "third"} {
		sendMessage(t, conn, protocol.Message{Type: protocol.TypeSearch, Text: text})

		line, err := reader.ReadBytes('\n')
		require.NoError(t, err)

		var resp protocol.Message
		require.NoError(t, json.Unmarshal(line, &resp))
		assert.Equal(t, text, resp.Text)
	}
}

func TestServer_UnknownTypeClosesConnection(t *testing.T) {
	registry := dispatch.NewRegistry(newNoopLogger())
	registry.Register(protocol.TypeSearch, echoHandler{})

	addr, _ := startServer(t, registry)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	sendMessage(t, conn, protocol.Message{Type: "noSuchThing"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, err = bufio.NewReader(conn).ReadBytes('\n')
	assert.ErrorIs(t, err, io.EOF, "connection must be closed without a response")
}

func TestServer_GracefulShutdown(t *testing.T) {
	registry := dispatch.NewRegistry(newNoopLogger())
	registry.Register(protocol.TypeSearch, echoHandler{})

	addr, cancel := startServer(t, registry)
	cancel()

	require.Eventually(t, func() bool {
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return true
		}
		_ = conn.Close()
		return false
	}, 3*time.Second, 50*time.Millisecond, "listener must be closed after shutdown")
}
