package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/loop"
)

func startServer(t *testing.T, cfg Config) (*Server, *httptest.Server) {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Seed = 5
	tuning.ObstacleCount = 0
	l := loop.New(app.NewGame(tuning), loop.WithTickInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = l.Run(ctx) }()

	srv := NewServer(l, cfg)
	ts := httptest.NewServer(srv.NewHandler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// next reads messages until one of the given kind arrives. Snapshots stream
// continuously, so other kinds are skipped.
func next(t *testing.T, conn *websocket.Conn, kind string) serverMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var msg serverMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read %s: %v", kind, err)
		}
		if msg.Kind == kind {
			return msg
		}
	}
}

func nextReply(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		var msg serverMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read reply: %v", err)
		}
		if msg.Kind == KindResult || msg.Kind == KindError {
			return msg
		}
	}
}

func TestSessionCommands(t *testing.T) {
	_, ts := startServer(t, Config{CommandsPerSec: 100, CommandBurst: 10, AllowedOrigins: []string{"*"}})
	conn := dial(t, ts)

	welcome := next(t, conn, KindWelcome)
	if welcome.Session == "" {
		t.Fatal("welcome without session id")
	}
	if snap := next(t, conn, KindSnapshot); snap.Snapshot == nil || len(snap.Snapshot.Nodes) != 1 {
		t.Fatalf("first snapshot = %+v", snap.Snapshot)
	}

	if err := conn.WriteJSON(map[string]any{"seq": 1, "type": "build", "x": 30, "z": 0, "tower": "CANNON"}); err != nil {
		t.Fatal(err)
	}
	reply := nextReply(t, conn)
	if reply.Kind != KindResult || reply.Seq != 1 || !reply.Result.OK {
		t.Fatalf("build reply = %+v", reply)
	}

	if err := conn.WriteJSON(map[string]any{"seq": 2, "type": "build", "x": 1, "z": 0, "tower": "CANNON"}); err != nil {
		t.Fatal(err)
	}
	reply = nextReply(t, conn)
	if reply.Result == nil || reply.Result.Reason != app.ReasonTooCloseToCore {
		t.Fatalf("rejected build reply = %+v", reply)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"teleport"}`)); err != nil {
		t.Fatal(err)
	}
	reply = nextReply(t, conn)
	if reply.Kind != KindError || reply.Code != CodeBadMessage {
		t.Fatalf("bad message reply = %+v", reply)
	}
}

func TestSessionRateLimit(t *testing.T) {
	_, ts := startServer(t, Config{CommandsPerSec: 0.001, CommandBurst: 1, AllowedOrigins: []string{"*"}})
	conn := dial(t, ts)
	next(t, conn, KindWelcome)

	for seq := 1; seq <= 2; seq++ {
		if err := conn.WriteJSON(map[string]any{"seq": seq, "type": "cancel"}); err != nil {
			t.Fatal(err)
		}
	}
	if reply := nextReply(t, conn); reply.Kind != KindResult {
		t.Fatalf("first reply = %+v", reply)
	}
	if reply := nextReply(t, conn); reply.Code != CodeRateLimited || reply.Seq != 2 {
		t.Fatalf("second reply = %+v", reply)
	}
}

func TestSnapshotRoute(t *testing.T) {
	_, ts := startServer(t, Config{CommandsPerSec: 10, CommandBurst: 10, AllowedOrigins: []string{"*"}})

	resp, err := http.Get(ts.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var snap app.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Energy != config.DefaultTuning().InitialEnergy {
		t.Fatalf("energy = %d", snap.Energy)
	}
}

func TestRejectsForeignOrigin(t *testing.T) {
	_, ts := startServer(t, Config{CommandsPerSec: 10, CommandBurst: 10, AllowedOrigins: []string{"http://localhost:3000"}})
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	header := http.Header{"Origin": []string{"http://evil.example"}}
	if _, _, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		t.Fatal("dial from foreign origin succeeded")
	}
}
