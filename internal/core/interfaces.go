package core

import "github.com/dkeye/Chat/internal/domain"

// Frame is one serialized envelope, ready for the wire.
type Frame []byte

type SessionID string

// SignalConnection abstracts the messaging transport of one client.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// PublishResult reports delivery stats/backpressure to the orchestrator.
type PublishResult struct {
	SentTo  int
	Dropped []SessionID
}

// RoomService is the core-facing API of a room. It owns the membership
// set but never touches transport resources.
type RoomService interface {
	Room() *domain.Room
	MemberCount() int
	Names() []string

	// NameOf reports the display name bound to sid, if sid is a member.
	NameOf(sid SessionID) (string, bool)

	// AddOrRebind adds a member, or rebinds the existing member with the
	// same display name to the new connection. When a different session
	// held the name, its id is returned so the caller can evict it.
	AddOrRebind(sid SessionID, meta *domain.Member, conn SignalConnection) (evicted SessionID, rebound bool)

	// Remove deletes the member bound to sid, reporting whether the room
	// is now empty. Unknown sids are a no-op.
	Remove(sid SessionID) (empty bool)

	// Broadcast fans a frame out to every member except exclude, never
	// blocking on a slow peer. Pass NoExclude to reach everyone.
	Broadcast(frame Frame, exclude SessionID) PublishResult
}

// NoExclude makes Broadcast reach every member of the room.
const NoExclude SessionID = ""

type RoomInfo struct {
	ID          domain.RoomID `json:"id"`
	MemberCount int           `json:"member_count"`
}
