package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/honekiti/portfolio/internal/konami"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Incoming frame types.
const (
	FrameMessage = "message"
	FrameKey     = "key"
)

// Outgoing frame types.
const (
	FrameTyping       = "typing"
	FrameNotification = "notification"
	FrameError        = "error"
)

type clientFrame struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type serverFrame struct {
	Type    string   `json:"type"`
	Message *Message `json:"message,omitempty"`
	Text    string   `json:"text,omitempty"`
	Kind    string   `json:"kind,omitempty"`
}

// session is one websocket connection. Replies are written from their own
// goroutines, so every write goes through mu.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *session) send(f serverFrame) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.WriteJSON(f); err != nil {
		log.Printf("chat: websocket write: %v", err)
		return false
	}
	return true
}

// ServeWebSocket upgrades the request and runs one chat session until the
// client disconnects. Each session owns its own key-sequence detector, and
// key frames keep being read while a reply is pending.
func (c *Controller) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	var pending sync.WaitGroup
	defer pending.Wait()
	defer cancel()

	s := &session{conn: conn}
	keys := konami.NewDetector()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat: websocket read: %v", err)
			}
			return
		}

		var in clientFrame
		if err := json.Unmarshal(raw, &in); err != nil {
			if !s.send(serverFrame{Type: FrameError, Text: "invalid message format"}) {
				return
			}
			continue
		}

		switch in.Type {
		case FrameMessage:
			user, err := c.UserMessage(in.Content)
			if errors.Is(err, ErrEmptyMessage) {
				if !s.send(serverFrame{Type: FrameError, Text: err.Error()}) {
					return
				}
				continue
			}
			if !s.send(serverFrame{Type: FrameMessage, Message: &user}) ||
				!s.send(serverFrame{Type: FrameTyping}) {
				return
			}
			pending.Add(1)
			go func(question string) {
				defer pending.Done()
				bot, err := c.Reply(ctx, question)
				if err != nil {
					return
				}
				s.send(serverFrame{Type: FrameMessage, Message: &bot})
			}(in.Content)
		case FrameKey:
			if keys.Push(in.Content) {
				if !s.send(serverFrame{Type: FrameNotification, Text: konami.Message, Kind: "success"}) {
					return
				}
			}
		default:
			if !s.send(serverFrame{Type: FrameError, Text: "unknown message type: " + in.Type}) {
				return
			}
		}
	}
}
