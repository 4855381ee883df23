package bot

import (
	"context"

	"github.com/gratefultolord/study_request_bot/internal/models"
)

// Inbound is a text message received from a chat user.
type Inbound struct {
	UserID   int64
	ChatID   int64
	Text     string
	Username *string
}

// Keyboard is a reply keyboard attached to an outbound message.
// Remove hides the keyboard currently shown to the user.
type Keyboard struct {
	Rows    [][]string
	OneTime bool
	Remove  bool
}

// Outbound is a message to send. A nil Keyboard leaves the user's keyboard as it is.
type Outbound struct {
	ChatID   int64
	Text     string
	Keyboard *Keyboard
}

// Messenger delivers outbound messages to the chat platform.
type Messenger interface {
	Send(ctx context.Context, msg Outbound) error
}

// Sink stores a completed submission.
type Sink interface {
	Append(ctx context.Context, sub models.Submission) error
}

// Recorder receives form events, typically for metrics.
type Recorder interface {
	FormStarted()
	InputRejected(step string)
	Submitted()
	SubmitFailed()
}

type nopRecorder struct{}

func (nopRecorder) FormStarted()         {}
func (nopRecorder) InputRejected(string) {}
func (nopRecorder) Submitted()           {}
func (nopRecorder) SubmitFailed()        {}
