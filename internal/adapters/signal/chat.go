package signal

import (
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Chat/internal/core"
)

func (ctl *Controller) handleChat(sid core.SessionID, env core.Envelope) {
	if !ctl.limiter.Allow(sid) {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("chat rate limit exceeded, frame dropped")
		return
	}
	d, err := env.ChatData()
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad chat payload")
		return
	}

	// The envelope's roomId and name are ignored on purpose; the router
	// resolves both from the session's server-held binding.
	ctl.Orch.Chat(sid, d.Payload)
}
