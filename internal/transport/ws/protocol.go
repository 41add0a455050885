// internal/transport/ws/protocol.go
package ws

import "go-core-defense/internal/app"

// Kinds of server → client messages.
const (
	KindWelcome  = "welcome"
	KindSnapshot = "snapshot"
	KindResult   = "result"
	KindError    = "error"
)

// Error codes outside app.Reason.
const (
	CodeBadMessage  = "BAD_MESSAGE"
	CodeRateLimited = "RATE_LIMITED"
	CodeUnavailable = "UNAVAILABLE"
)

// clientMessage is a command plus the client's sequence number.
type clientMessage struct {
	Seq uint64 `json:"seq,omitempty"`
	app.Command
}

type serverMessage struct {
	Kind     string        `json:"kind"`
	Session  string        `json:"session,omitempty"`
	Seq      uint64        `json:"seq,omitempty"`
	Result   *app.Result   `json:"result,omitempty"`
	Snapshot *app.Snapshot `json:"snapshot,omitempty"`
	Code     string        `json:"code,omitempty"`
	Message  string        `json:"message,omitempty"`
}
