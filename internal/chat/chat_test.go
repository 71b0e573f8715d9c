package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/honekiti/portfolio/internal/konami"
)

type echoResponder struct{}

func (echoResponder) Respond(q string) string { return "answer: " + q }

// recordingWait captures requested delays without sleeping.
type recordingWait struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (w *recordingWait) wait(ctx context.Context, d time.Duration) error {
	w.mu.Lock()
	w.delays = append(w.delays, d)
	w.mu.Unlock()
	return ctx.Err()
}

func newTestController(w *recordingWait, opts ...Option) *Controller {
	return NewController(echoResponder{}, append([]Option{WithWait(w.wait)}, opts...)...)
}

func TestAskReturnsUserThenBot(t *testing.T) {
	w := &recordingWait{}
	start := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	tick := start
	c := newTestController(w, WithClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}))

	ex, err := c.Ask(context.Background(), "研究は？")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if ex.User.Sender != SenderUser || ex.User.Text != "研究は？" {
		t.Errorf("user message = %+v", ex.User)
	}
	if ex.Bot.Sender != SenderBot || ex.Bot.Text != "answer: 研究は？" {
		t.Errorf("bot message = %+v", ex.Bot)
	}
	if ex.Bot.Timestamp.Before(ex.User.Timestamp) {
		t.Error("bot message is timestamped before the user message")
	}
	if ex.User.ID == "" || ex.User.ID == ex.Bot.ID {
		t.Errorf("message ids not unique: %q %q", ex.User.ID, ex.Bot.ID)
	}
	if len(w.delays) != 1 {
		t.Fatalf("waited %d times, want 1", len(w.delays))
	}
}

func TestAskRejectsBlankInput(t *testing.T) {
	w := &recordingWait{}
	c := newTestController(w)

	for _, in := range []string{"", "   ", "\n\t"} {
		if _, err := c.Ask(context.Background(), in); !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("Ask(%q) err = %v, want ErrEmptyMessage", in, err)
		}
	}
	if len(w.delays) != 0 {
		t.Errorf("blank input should not wait, waited %d times", len(w.delays))
	}
}

func TestAskStopsWhenContextEnds(t *testing.T) {
	c := NewController(echoResponder{}, WithDelayRange(time.Hour, time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Ask(ctx, "hello"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestTypingDelayWithinBounds(t *testing.T) {
	c := NewController(echoResponder{})
	for i := 0; i < 500; i++ {
		d := c.TypingDelay()
		if d < DefaultMinDelay || d > DefaultMaxDelay {
			t.Fatalf("delay %v outside [%v, %v]", d, DefaultMinDelay, DefaultMaxDelay)
		}
	}
}

func TestDelayRangeOption(t *testing.T) {
	c := NewController(echoResponder{}, WithDelayRange(5*time.Millisecond, 5*time.Millisecond))
	if d := c.TypingDelay(); d != 5*time.Millisecond {
		t.Errorf("delay = %v, want 5ms", d)
	}

	bad := NewController(echoResponder{}, WithDelayRange(time.Second, time.Millisecond))
	if bad.minDelay != DefaultMinDelay || bad.maxDelay != DefaultMaxDelay {
		t.Error("inverted range should be ignored")
	}
}

func TestQuickQuestionsAreNonEmpty(t *testing.T) {
	if len(QuickQuestions) == 0 {
		t.Fatal("no quick questions")
	}
	for _, q := range QuickQuestions {
		if strings.TrimSpace(q) == "" {
			t.Error("blank quick question")
		}
	}
}

func dialTestServer(t *testing.T, c *Controller) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(c.ServeWebSocket))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestWebSocketMessageRoundTrip(t *testing.T) {
	c := NewController(echoResponder{}, WithDelayRange(0, 0))
	conn := dialTestServer(t, c)

	if err := conn.WriteJSON(clientFrame{Type: FrameMessage, Content: "hi"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var frames []serverFrame
	for i := 0; i < 3; i++ {
		var f serverFrame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read frame %d: %v", i, err)
		}
		frames = append(frames, f)
	}

	if frames[0].Type != FrameMessage || frames[0].Message.Sender != SenderUser {
		t.Errorf("frame 0 = %+v, want user message", frames[0])
	}
	if frames[1].Type != FrameTyping {
		t.Errorf("frame 1 = %+v, want typing", frames[1])
	}
	if frames[2].Type != FrameMessage || frames[2].Message.Sender != SenderBot || frames[2].Message.Text != "answer: hi" {
		t.Errorf("frame 2 = %+v, want bot answer", frames[2])
	}
}

func TestWebSocketKonami(t *testing.T) {
	c := NewController(echoResponder{}, WithDelayRange(0, 0))
	conn := dialTestServer(t, c)

	for _, code := range konami.Sequence {
		if err := conn.WriteJSON(clientFrame{Type: FrameKey, Content: code}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	var f serverFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Type != FrameNotification || f.Text != konami.Message {
		t.Errorf("frame = %+v, want konami notification", f)
	}
}

func TestWebSocketRejectsBadFrames(t *testing.T) {
	c := NewController(echoResponder{}, WithDelayRange(0, 0))
	conn := dialTestServer(t, c)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	var f serverFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Type != FrameError {
		t.Errorf("frame = %+v, want error", f)
	}

	if err := conn.WriteJSON(clientFrame{Type: FrameMessage, Content: "  "}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Type != FrameError || f.Text != ErrEmptyMessage.Error() {
		t.Errorf("frame = %+v, want empty-message error", f)
	}
}

func TestWebSocketKeysNotHeldBehindPendingReply(t *testing.T) {
	release := make(chan struct{})
	gate := func(ctx context.Context, d time.Duration) error {
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c := NewController(echoResponder{}, WithWait(gate))
	conn := dialTestServer(t, c)

	if err := conn.WriteJSON(clientFrame{Type: FrameMessage, Content: "hello"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, code := range konami.Sequence {
		if err := conn.WriteJSON(clientFrame{Type: FrameKey, Content: code}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	want := []string{FrameMessage, FrameTyping, FrameNotification}
	for i, typ := range want {
		var f serverFrame
		if err := conn.ReadJSON(&f); err != nil {
			t.Fatalf("read frame %d: %v", i, err)
		}
		if f.Type != typ {
			t.Fatalf("frame %d = %+v, want %s", i, f, typ)
		}
	}

	close(release)
	var f serverFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read reply: %v", err)
	}
	if f.Type != FrameMessage || f.Message.Sender != SenderBot || f.Message.Text != "answer: hello" {
		t.Errorf("reply = %+v, want bot answer", f)
	}
}
