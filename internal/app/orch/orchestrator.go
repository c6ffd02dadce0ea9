// Package orch routes parsed envelopes to the room and connection
// directories and fans the resulting broadcasts back out.
package orch

import (
	"sync"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// Orchestrator owns the only process-wide mutable state: the connection
// registry and the room directory. Every directory mutation and every
// snapshot a broadcast is built from runs under mu, so concurrent joins,
// leaves and fan-outs can never observe a torn member set. Fan-out under
// the lock is safe because TrySend never blocks.
type Orchestrator struct {
	Registry *app.Registry
	Rooms    *app.Rooms
	Policy   app.Policy

	mu sync.Mutex
}

func New(reg *app.Registry, rooms *app.Rooms, policy app.Policy) *Orchestrator {
	return &Orchestrator{Registry: reg, Rooms: rooms, Policy: policy}
}

// roster pushes the refreshed member-name list to every current member of
// the room, including the one whose action triggered the change.
// Callers hold mu.
func (o *Orchestrator) roster(roomID domain.RoomID, room core.RoomService) {
	frame := core.UsersFrame(roomID, room.Names())
	o.applyPolicy(room, room.Broadcast(frame, core.NoExclude))
}

func (o *Orchestrator) applyPolicy(room core.RoomService, res core.PublishResult) {
	if o.Policy == nil {
		return
	}
	for _, slow := range res.Dropped {
		if o.Policy.OnBackPressure(room, slow) == app.KickMember {
			o.Registry.Cancel(slow)
		}
	}
}
