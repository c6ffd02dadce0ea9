package orch

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
)

// Chat relays a message to every other member of the sender's room. The
// room and the sender's name come from server-held state, never from the
// envelope, so a bound connection cannot inject into a foreign room or
// speak under a foreign name.
func (o *Orchestrator) Chat(sid core.SessionID, payload string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	roomID, ok := o.Registry.RoomOf(sid)
	if !ok {
		log.Warn().Str("module", "app.orch").Str("sid", string(sid)).Msg("chat from unbound session dropped")
		return
	}
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}
	name, ok := room.NameOf(sid)
	if !ok {
		log.Warn().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(roomID)).Msg("chat from non-member dropped")
		return
	}

	frame := core.ChatFrame(roomID, name, payload)
	o.applyPolicy(room, room.Broadcast(frame, sid))
}

// Typing relays a typing or stopTyping indicator to the sender's room
// peers, same exclusion rule as chat. Best-effort, silently ignored for
// unbound sessions.
func (o *Orchestrator) Typing(sid core.SessionID, kind string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	roomID, ok := o.Registry.RoomOf(sid)
	if !ok {
		return
	}
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}
	name, ok := room.NameOf(sid)
	if !ok {
		return
	}

	frame := core.TypingFrame(kind, roomID, name)
	o.applyPolicy(room, room.Broadcast(frame, sid))
}
