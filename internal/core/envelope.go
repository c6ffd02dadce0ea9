package core

import (
	"encoding/json"
	"fmt"

	"github.com/dkeye/Chat/internal/domain"
)

// Envelope kinds understood on the wire.
const (
	KindJoin       = "join"
	KindChat       = "chat"
	KindUsers      = "users"
	KindTyping     = "typing"
	KindStopTyping = "stopTyping"
	KindPing       = "ping"
	KindPong       = "pong"
)

const StatusSuccess = "success"

// Envelope is the wire unit exchanged with clients, one per text frame.
// Data stays raw here; each handler decodes the payload it expects.
type Envelope struct {
	Type   string          `json:"type"`
	RoomID string          `json:"roomId,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Status string          `json:"status,omitempty"`
}

// ChatData is the payload of join, chat and typing envelopes.
type ChatData struct {
	Name    string `json:"name"`
	Payload string `json:"payload,omitempty"`
}

func DecodeEnvelope(frame []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Type == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing type")
	}
	return env, nil
}

func (e Envelope) ChatData() (ChatData, error) {
	var d ChatData
	if err := json.Unmarshal(e.Data, &d); err != nil {
		return ChatData{}, fmt.Errorf("decode %s data: %w", e.Type, err)
	}
	return d, nil
}

// Outbound envelopes are serialized fresh per broadcast; the helpers below
// keep the adapters and orchestrator free of ad-hoc JSON literals.

func marshal(v any) Frame {
	b, _ := json.Marshal(v)
	return b
}

func JoinAckFrame(roomID domain.RoomID, name string) Frame {
	return marshal(struct {
		Type   string        `json:"type"`
		RoomID domain.RoomID `json:"roomId"`
		Data   ChatData      `json:"data"`
		Status string        `json:"status"`
	}{KindJoin, roomID, ChatData{Name: name, Payload: fmt.Sprintf("Welcome to room %s", roomID)}, StatusSuccess})
}

func ChatFrame(roomID domain.RoomID, name, payload string) Frame {
	return marshal(struct {
		Type   string        `json:"type"`
		RoomID domain.RoomID `json:"roomId"`
		Data   ChatData      `json:"data"`
	}{KindChat, roomID, ChatData{Name: name, Payload: payload}})
}

func UsersFrame(roomID domain.RoomID, names []string) Frame {
	if names == nil {
		names = []string{}
	}
	return marshal(struct {
		Type   string        `json:"type"`
		RoomID domain.RoomID `json:"roomId"`
		Data   []string      `json:"data"`
	}{KindUsers, roomID, names})
}

func TypingFrame(kind string, roomID domain.RoomID, name string) Frame {
	return marshal(struct {
		Type   string        `json:"type"`
		RoomID domain.RoomID `json:"roomId"`
		Data   ChatData      `json:"data"`
	}{kind, roomID, ChatData{Name: name}})
}

func PongFrame() Frame {
	return marshal(struct {
		Type string `json:"type"`
	}{KindPong})
}
