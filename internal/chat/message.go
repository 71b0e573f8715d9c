// Package chat runs the FAQ chat round trip: a visitor question, a typing
// pause, and the responder's answer.
package chat

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is rendered and then forgotten; nothing stores it.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessage(sender Sender, text string, at time.Time) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: at,
	}
}

// Clock formats the timestamp the way the chat bubbles show it.
func (m Message) Clock() string {
	return m.Timestamp.Format("15:04")
}

// Exchange is one question and its answer, user first.
type Exchange struct {
	User Message `json:"user"`
	Bot  Message `json:"bot"`
}

// QuickQuestions are the literal strings behind the quick-question buttons.
var QuickQuestions = []string{
	"専門分野は何ですか？",
	"研究について教えてください",
	"どんなプロジェクトを作りましたか？",
	"インターンの経験は？",
	"スキルを教えてください",
	"実績はありますか？",
	"連絡先を教えてください",
}
