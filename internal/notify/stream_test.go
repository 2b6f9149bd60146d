package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkotenko/abook/internal/config"
	"github.com/dkotenko/abook/internal/logger"
	"github.com/dkotenko/abook/internal/mock"
	"github.com/dkotenko/abook/models"
)

// captureHandler forwards every applied event into a channel so tests can
// wait for it with a timeout.
type captureHandler struct {
	events chan models.Notification
}

func (h *captureHandler) Apply(_ context.Context, n models.Notification) error {
	h.events <- n
	return nil
}

func (h *captureHandler) next(t *testing.T) models.Notification {
	t.Helper()
	select {
	case n := <-h.events:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a push event")
		return models.Notification{}
	}
}

func wsURL(httpURL string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http")
}

func TestStream_DeliversEventsAfterResync(t *testing.T) {
	upgrader := websocket.Upgrader{}
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		payload := `{"seq":2,"created":{"cn":["c9"]}}`
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(payload)))

		// держим соединение открытым, пока клиент не отключится
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	channel := mock.NewMockChannel(ctrl)
	channel.EXPECT().Token().Return("session-token").AnyTimes()
	channel.EXPECT().GetFolderTree(gomock.Any()).
		Return(models.WireFolder{ID: models.RootFolderID, Name: "USER_ROOT"}, nil).
		AnyTimes()

	handler := &captureHandler{events: make(chan models.Notification, 8)}
	stream := NewStream(config.Stream{WSAddress: wsURL(srv.URL)}, channel, handler, logger.Nop())

	stream.Start(context.Background())
	defer stream.Stop()

	refresh := handler.next(t)
	require.NotNil(t, refresh.Refresh, "first event must be the resync refresh")
	assert.Equal(t, models.RootFolderID, refresh.Refresh.ID)
	assert.Equal(t, "Bearer session-token", gotAuth)

	pushed := handler.next(t)
	require.NotNil(t, pushed.Created)
	assert.Equal(t, []string{"c9"}, pushed.Created.ContactIDs)
}

func TestStream_ReconnectsAndResyncsAgain(t *testing.T) {
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		// обрываем соединение сразу — клиент должен переподключиться
		conn.Close()
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	channel := mock.NewMockChannel(ctrl)
	channel.EXPECT().Token().Return("").AnyTimes()
	channel.EXPECT().GetFolderTree(gomock.Any()).
		Return(models.WireFolder{ID: models.RootFolderID}, nil).
		MinTimes(2)

	handler := &captureHandler{events: make(chan models.Notification, 8)}
	stream := NewStream(config.Stream{
		WSAddress:    wsURL(srv.URL),
		ReconnectMin: 10 * time.Millisecond,
		ReconnectMax: 50 * time.Millisecond,
	}, channel, handler, logger.Nop())

	stream.Start(context.Background())
	defer stream.Stop()

	first := handler.next(t)
	require.NotNil(t, first.Refresh)
	second := handler.next(t)
	require.NotNil(t, second.Refresh)
}

func TestStream_StopWithoutStartIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	channel := mock.NewMockChannel(ctrl)

	stream := NewStream(config.Stream{WSAddress: "ws://127.0.0.1:1"}, channel, nil, logger.Nop())
	stream.Stop()
}
