package kds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/titishya/fastfood-app/models"
	"github.com/titishya/fastfood-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialTestClient spins up a websocket server that registers every incoming
// connection on the hub, and returns a connected client.
func dialTestClient(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.RegisterClient(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	// Wait for the server side to land in the hub
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 1, hub.ClientCount())
	return client
}

func readMessage(t *testing.T, client *websocket.Conn) Message {
	t.Helper()
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	assert.NoError(t, err)

	var msg Message
	assert.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestBroadcastReachesObserver(t *testing.T) {
	hub := NewHub()
	client := dialTestClient(t, hub)

	order := models.Order{ID: "order-1", Status: models.StatusReceived}
	hub.BroadcastNewOrder(order)
	hub.BroadcastOrderUpdate(order)

	first := readMessage(t, client)
	assert.Equal(t, EventNewOrder, first.Event)
	payload := first.Data.(map[string]interface{})
	assert.Equal(t, "order-1", payload["id"])

	second := readMessage(t, client)
	assert.Equal(t, EventOrderUpdated, second.Event, "frames arrive in publish order")
}

func TestLateObserverGetsNoReplay(t *testing.T) {
	hub := NewHub()
	hub.BroadcastNewOrder(models.Order{ID: "before-connect"})

	client := dialTestClient(t, hub)

	client.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	_, _, err := client.ReadMessage()
	assert.Error(t, err, "no backlog is delivered to a late joiner")
}

func TestUnregisterClient(t *testing.T) {
	hub := NewHub()
	dialTestClient(t, hub)

	hub.mutex.Lock()
	var conn *websocket.Conn
	for c := range hub.clients {
		conn = c
	}
	hub.mutex.Unlock()

	hub.UnregisterClient(conn)
	assert.Equal(t, 0, hub.ClientCount())

	// Publishing with nobody connected is a no-op, not an error
	hub.BroadcastOrderUpdate(models.Order{ID: "order-1"})
}
