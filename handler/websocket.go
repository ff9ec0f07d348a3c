package handler

import (
	"context"
	"log"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/realtime"

	"github.com/gofiber/contrib/websocket"
)

var (
	liveHub = realtime.NewHub(config.Config("REDIS_ADDR"))

	// live is the broadcast path mutating handlers publish through.
	live realtime.Broadcaster = liveHub
)

// Live exposes the broadcaster for wiring at startup.
func Live() realtime.Broadcaster {
	return live
}

// StartLiveHub runs the cross-instance relay loop when Redis is configured.
func StartLiveHub() {
	go liveHub.Run(context.Background())
}

// OrdersWebsocket registers a live-view client. One snapshot is pushed
// immediately so the new viewer is consistent without waiting for the next
// mutation.
func OrdersWebsocket(c *websocket.Conn) {
	liveHub.Subscribe(c)
	defer func() {
		liveHub.Unsubscribe(c)
		c.Close()
		log.Printf("live view disconnected, %d remaining", liveHub.Count())
	}()

	log.Printf("live view connected, %d total", liveHub.Count())

	snapshot, err := helper.ComputeDashboardSnapshot(database.DB)
	if err != nil {
		log.Printf("initial snapshot failed: %v", err)
	} else if err := c.WriteJSON(realtime.Message{Event: constants.EVENT_DASHBOARD_UPDATE, Data: snapshot}); err != nil {
		return
	}

	// Hold the connection open; clients never send payloads.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
