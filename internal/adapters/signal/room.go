package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// handleJoin validates the join envelope and hands it to the router. A
// failed join produces no ack; the client detects that on its own.
func (ctl *Controller) handleJoin(sid core.SessionID, env core.Envelope) {
	roomID, err := domain.NewRoomID(env.RoomID)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad join room id")
		return
	}
	d, err := env.ChatData()
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad join payload")
		return
	}

	if err := ctl.Orch.Join(sid, roomID, d.Name); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Str("room", string(roomID)).Msg("join rejected")
	}
}
