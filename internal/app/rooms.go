package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// Rooms is the room directory. Rooms are created lazily on first join and
// removed by the orchestrator the moment their last member leaves; an
// empty room is never retained.
type Rooms struct {
	mu    sync.RWMutex
	rooms map[domain.RoomID]core.RoomService
}

func NewRooms() *Rooms {
	return &Rooms{rooms: make(map[domain.RoomID]core.RoomService)}
}

func (d *Rooms) GetOrCreate(id domain.RoomID) core.RoomService {
	d.mu.RLock()
	room, ok := d.rooms[id]
	d.mu.RUnlock()
	if ok {
		return room
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if room, ok = d.rooms[id]; ok {
		return room
	}
	room = core.NewRoomService(&domain.Room{ID: id})
	d.rooms[id] = room
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room created")
	return room
}

func (d *Rooms) Get(id domain.RoomID) (core.RoomService, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	room, ok := d.rooms[id]
	return room, ok
}

func (d *Rooms) Remove(id domain.RoomID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.rooms[id]; !ok {
		return
	}
	delete(d.rooms, id)
	log.Info().Str("module", "app.rooms").Str("room", string(id)).Msg("room removed")
}

func (d *Rooms) List() []core.RoomInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]core.RoomInfo, 0, len(d.rooms))
	for id, r := range d.rooms {
		out = append(out, core.RoomInfo{ID: id, MemberCount: r.MemberCount()})
	}
	return out
}
