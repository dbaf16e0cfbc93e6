package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/hoplytravel/hoply-api/config"
)

// watchInterval mirrors the polling cadence of the web client
const watchInterval = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WatchRoomHandler upgrades the connection and pushes the room results
// on an interval. This is an optional companion to the results endpoint;
// polling clients lose nothing by ignoring it.
func (g GroupTrip) WatchRoomHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if _, err := g.Service.GetRoom(code); err != nil {
		config.ErrorStatus("room not found", http.StatusNotFound, w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnw("failed to upgrade watch connection", "code", code, "error", err)
		return
	}

	go g.pushResults(conn, code)
}

// pushResults streams results frames until the client goes away or the
// room is evicted
func (g GroupTrip) pushResults(conn *websocket.Conn, code string) {
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		// drain the connection so we notice the client closing it
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		results, err := g.Service.ComputeResults(code)
		if err != nil {
			// room evicted mid-watch
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "room no longer exists"),
				time.Now().Add(time.Second))
			return
		}
		if err := conn.WriteJSON(results); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-closed:
			return
		}
	}
}
