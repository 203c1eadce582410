package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type MockController struct {
	sync.Mutex

	Error    error
	Sent     []game.Command
	Current  game.Frame
	received chan game.Command
}

func (mc *MockController) Send(ctx context.Context, c game.Command) error {
	mc.Lock()
	defer mc.Unlock()
	if mc.Error != nil {
		return mc.Error
	}
	mc.Sent = append(mc.Sent, c)
	if mc.received != nil {
		mc.received <- c
	}
	return nil
}

func (mc *MockController) Frame() game.Frame {
	mc.Lock()
	defer mc.Unlock()
	return mc.Current
}

func createAPIServer() (*Server, *MockController) {
	var client = &MockController{
		Current: game.Frame{
			RoundID: "abc_123",
			State:   game.StatePlaying,
			Width:   25,
			Height:  25,
			Snake:   []rules.Point{{X: 12, Y: 12}},
			Score:   30,
		},
		received: make(chan game.Command, 16),
	}
	s := New(":1234", client, NewHub())
	return s, client
}

func TestGetFrame(t *testing.T) {
	s, _ := createAPIServer()

	req, _ := http.NewRequest("GET", "/game", nil)
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	f := game.Frame{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&f))
	require.Equal(t, "abc_123", f.RoundID)
	require.Equal(t, game.StatePlaying, f.State)
	require.Equal(t, 30, f.Score)
}

func TestHealthz(t *testing.T) {
	s, _ := createAPIServer()

	req, _ := http.NewRequest("GET", "/healthz", nil)
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestCommands(t *testing.T) {
	s, mc := createAPIServer()

	for path, expected := range map[string]game.Command{
		"/game/start":           game.CommandStart,
		"/game/pause":           game.CommandPause,
		"/game/direction/up":    game.CommandUp,
		"/game/direction/LEFT":  game.CommandLeft,
		"/game/direction/down":  game.CommandDown,
		"/game/direction/right": game.CommandRight,
	} {
		req, _ := http.NewRequest("POST", path, nil)
		rr := httptest.NewRecorder()

		s.hs.Handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusAccepted, rr.Code, path)
		require.Equal(t, expected, mc.Sent[len(mc.Sent)-1], path)
	}
}

func TestBadDirection(t *testing.T) {
	s, mc := createAPIServer()

	req, _ := http.NewRequest("POST", "/game/direction/sideways", nil)
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, mc.Sent)
}

func TestCommandErrors(t *testing.T) {
	s, mc := createAPIServer()

	mc.Error = worker.ErrStopped
	req, _ := http.NewRequest("POST", "/game/start", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	mc.Error = errors.New("boom")
	rr = httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCommandRateLimit(t *testing.T) {
	s, _ := createAPIServer()
	s.limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	req, _ := http.NewRequest("POST", "/game/pause", nil)
	rr := httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusAccepted, rr.Code)

	rr = httptest.NewRecorder()
	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestCORS(t *testing.T) {
	s, _ := createAPIServer()

	req, _ := http.NewRequest("GET", "/game", nil)
	req.Header.Set("Origin", "http://board.example.com")
	rr := httptest.NewRecorder()

	s.hs.Handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestSocket(t *testing.T) {
	s, mc := createAPIServer()
	ts := httptest.NewServer(s.hs.Handler)
	defer ts.Close()

	// A frame rendered before the client connects is sent on connect.
	require.NoError(t, s.hub.Render(mc.Frame()))

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/socket"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	defer conn.Close()

	readFrame := func() game.Frame {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		mt, message, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Equal(t, websocket.TextMessage, mt)
		f := game.Frame{}
		require.NoError(t, json.Unmarshal(message, &f))
		return f
	}

	require.Equal(t, "abc_123", readFrame().RoundID)

	next := mc.Frame()
	next.Turn = 7
	require.NoError(t, s.hub.Render(next))
	require.Equal(t, int64(7), readFrame().Turn)

	// Text messages are commands.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("nonsense")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("left")))
	select {
	case c := <-mc.received:
		require.Equal(t, game.CommandLeft, c)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "command not received")
	}
}

func TestHubDropsSlowClients(t *testing.T) {
	h := NewHub()
	c := h.subscribe()
	require.Equal(t, 1, h.Clients())

	for i := 0; i < 100; i++ {
		require.NoError(t, h.Render(game.Frame{Turn: int64(i)}))
	}
	require.Len(t, c.send, cap(c.send))

	h.unsubscribe(c)
	h.unsubscribe(c)
	require.Equal(t, 0, h.Clients())
}
