package orch

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

var ErrNotConnected = errors.New("session not connected")

// Join binds the session to roomID under name. A session already bound to
// another room leaves it first; a join under a name that is already taken
// in the room rebinds that member to this connection instead of creating
// a duplicate, so reconnects never produce ghost members.
//
// On success the joiner alone receives the ack, then the whole room
// (joiner included) receives the refreshed roster.
func (o *Orchestrator) Join(sid core.SessionID, roomID domain.RoomID, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	conn, ok := o.Registry.Conn(sid)
	if !ok {
		return ErrNotConnected
	}
	user, _ := o.Registry.User(sid)

	if old, bound := o.Registry.RoomOf(sid); bound && old != roomID {
		o.leave(sid, old)
		log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("from_room", string(old)).Msg("left room on rejoin")
	}

	room := o.Rooms.GetOrCreate(roomID)
	evicted, rebound := room.AddOrRebind(sid, domain.NewMember(user, name), conn)
	if rebound {
		// The replaced connection stays open but is no longer a member.
		o.Registry.ClearRoom(evicted)
	}
	o.Registry.UpdateRoom(sid, roomID)
	log.Info().Str("module", "app.orch").Str("sid", string(sid)).Str("room", string(roomID)).Str("name", name).Msg("joined room")

	if err := conn.TrySend(core.JoinAckFrame(roomID, name)); err != nil {
		log.Warn().Err(err).Str("module", "app.orch").Str("sid", string(sid)).Msg("join ack dropped")
	}
	o.roster(roomID, room)
	return nil
}

// Disconnect runs the terminal transition for a session: leave its room,
// if any, then drop it from the registry. Idempotent; it must complete
// regardless of why the transport closed.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if roomID, ok := o.Registry.RoomOf(sid); ok {
		o.leave(sid, roomID)
	}
	o.Registry.Unbind(sid)
}

// leave removes the member and deletes the room the instant it empties;
// otherwise the remaining members get a roster update. Callers hold mu.
func (o *Orchestrator) leave(sid core.SessionID, roomID domain.RoomID) {
	o.Registry.ClearRoom(sid)
	room, ok := o.Rooms.Get(roomID)
	if !ok {
		return
	}
	if room.Remove(sid) {
		o.Rooms.Remove(roomID)
		return
	}
	o.roster(roomID, room)
}
