package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"quiz-backend/internal/app"
)

const wsWriteWait = 10 * time.Second

// FeedHandler streams newly recorded attempts to staff dashboards over a websocket.
type FeedHandler struct {
	feed     app.AttemptFeed
	upgrader websocket.Upgrader
}

func NewFeedHandler(feed app.AttemptFeed) *FeedHandler {
	return &FeedHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type subscribedPayload struct {
	Username string `json:"username"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeLive upgrades the request and forwards attempt events until the client goes away.
func (h *FeedHandler) ServeLive(c *gin.Context) {
	user, _ := currentUser(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	events, cancel, err := h.feed.Subscribe(ctx)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "live feed unavailable"}})
		log.Printf("subscribe attempt feed: %v", err)
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	// Only the writer goroutine touches conn for writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: "attempt", Payload: event}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "subscribed", Payload: subscribedPayload{Username: user.Username}}

	// The feed is push-only; reads just detect the client closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

