package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"missing-person-tracker/internal/service/auth"
)

type staticValidator map[string]*auth.Claims

func (v staticValidator) ValidateToken(token string) (*auth.Claims, error) {
	claims, ok := v[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return claims, nil
}

func newTestServer(t *testing.T) (*Hub, *httptest.Server, uuid.UUID) {
	t.Helper()

	adminID := uuid.New()
	validator := staticValidator{
		"admin": {UserID: adminID, IsAdmin: true},
		"user":  {UserID: uuid.New()},
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(NewHandler(hub, validator, "*"))
	t.Cleanup(srv.Close)
	return hub, srv, adminID
}

func wsURL(srv *httptest.Server, token string) string {
	u := "ws" + strings.TrimPrefix(srv.URL, "http")
	if token != "" {
		u += "?token=" + token
	}
	return u
}

func TestHandler_RejectsMissingToken(t *testing.T) {
	_, srv, _ := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_RejectsInvalidToken(t *testing.T) {
	_, srv, _ := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "nope"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_RejectsNonAdmin(t *testing.T) {
	_, srv, _ := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "user"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_AdminReceivesLocationUpdates(t *testing.T) {
	hub, srv, adminID := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "admin"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.hasClient(adminID) }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(MessageLocationUpdate, []byte(`{"userId":"abc","latitude":1.5,"longitude":2.5}`))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, MessageLocationUpdate, msg.Type)
	assert.NotZero(t, msg.Timestamp)
	assert.JSONEq(t, `{"userId":"abc","latitude":1.5,"longitude":2.5}`, string(msg.Data))
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub, srv, adminID := newTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "admin"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.hasClient(adminID) }, 2*time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_StoppedHubDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	client := &Client{hub: hub, send: make(chan []byte, 1), UserID: uuid.New()}
	finished := make(chan bool, 1)
	go func() {
		ok := hub.Register(client)
		hub.Unregister(client)
		finished <- ok
	}()

	select {
	case ok := <-finished:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("register/unregister blocked on a stopped hub")
	}
}

func TestHandler_ClosesConnectionAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	validator := staticValidator{"admin": {UserID: uuid.New(), IsAdmin: true}}
	srv := httptest.NewServer(NewHandler(hub, validator, "*"))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "admin"), nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), err.Error())
	assert.Zero(t, hub.ClientCount())
}
