package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestLiveFeedStreamsNewAttempts(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/api/quiz/attempts/live?token=" + env.staffToken
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	msgType, payload := readNext(conn, t, "subscribed")
	if msgType != "subscribed" || payload["username"] != "staff" {
		t.Fatalf("expected subscribed for staff, got %s %v", msgType, payload)
	}

	resp, err := http.Post(server.URL+"/api/quiz/submit", "application/json",
		strings.NewReader(`{"answers": {"1": 11, "2": 21, "3": 31}, "time_taken": 42, "session_id": "live", "username": "Zoe"}`))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	_, payload = readNext(conn, t, "attempt")
	if payload["username"] != "Zoe" || payload["band"] != "excellent" || payload["percentage"] != float64(100) {
		t.Fatalf("unexpected attempt payload %v", payload)
	}
}

func TestLiveFeedRequiresStaff(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	base := "ws" + server.URL[len("http"):] + "/api/quiz/attempts/live"

	_, resp, err := websocket.DefaultDialer.Dial(base, nil)
	if err == nil || resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got err=%v resp=%v", err, resp)
	}

	_, resp, err = websocket.DefaultDialer.Dial(base+"?token="+env.userToken, nil)
	if err == nil || resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-staff, got err=%v resp=%v", err, resp)
	}
}

func TestLiveFeedUnsubscribesOnClose(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(env.router)
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/api/quiz/attempts/live?token=" + env.staffToken
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	readNext(conn, t, "subscribed")
	if env.feed.Subscribers() != 1 {
		t.Fatalf("expected one subscriber, got %d", env.feed.Subscribers())
	}
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for env.feed.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber not released after close")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}
