package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/domain"
)

type member struct {
	meta *domain.Member
	conn SignalConnection
}

// roomImpl is a threadsafe in-memory room.
// It never closes adapter-owned resources.
type roomImpl struct {
	room   *domain.Room
	mu     sync.RWMutex
	bySID  map[SessionID]member
	byName map[string]SessionID
}

func NewRoomService(room *domain.Room) RoomService {
	return &roomImpl{
		room:   room,
		bySID:  make(map[SessionID]member),
		byName: make(map[string]SessionID),
	}
}

func (r *roomImpl) Room() *domain.Room { return r.room }

func (r *roomImpl) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bySID)
}

func (r *roomImpl) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}

func (r *roomImpl) NameOf(sid SessionID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.bySID[sid]; ok {
		return m.meta.Name, true
	}
	return "", false
}

func (r *roomImpl) AddOrRebind(sid SessionID, meta *domain.Member, conn SignalConnection) (SessionID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// A session re-joining under a new name gives up its old one.
	if prev, ok := r.bySID[sid]; ok && prev.meta.Name != meta.Name {
		delete(r.byName, prev.meta.Name)
	}

	var evicted SessionID
	rebound := false
	if old, ok := r.byName[meta.Name]; ok && old != sid {
		delete(r.bySID, old)
		evicted = old
		rebound = true
		log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("name", meta.Name).Str("old_sid", string(old)).Str("sid", string(sid)).Msg("member rebound")
	}

	r.bySID[sid] = member{meta: meta, conn: conn}
	r.byName[meta.Name] = sid
	if !rebound {
		log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("name", meta.Name).Str("sid", string(sid)).Msg("member added")
	}
	return evicted, rebound
}

func (r *roomImpl) Remove(sid SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.bySID[sid]
	if !ok {
		return len(r.bySID) == 0
	}
	if r.byName[m.meta.Name] == sid {
		delete(r.byName, m.meta.Name)
	}
	delete(r.bySID, sid)
	log.Info().Str("module", "core.room").Str("room", string(r.room.ID)).Str("name", m.meta.Name).Str("sid", string(sid)).Msg("member removed")
	return len(r.bySID) == 0
}

func (r *roomImpl) Broadcast(frame Frame, exclude SessionID) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := PublishResult{}
	for sid, m := range r.bySID {
		if sid == exclude {
			continue
		}
		if err := m.conn.TrySend(frame); err != nil {
			res.Dropped = append(res.Dropped, sid)
			continue
		}
		res.SentTo++
	}
	log.Debug().Str("module", "core.room").Str("room", string(r.room.ID)).Int("sent_to", res.SentTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}
