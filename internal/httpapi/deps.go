package httpapi

import (
	"context"
	"sync/atomic"
	"time"

	"jobyaari-engine/internal/config"
	"jobyaari-engine/internal/events"
	"jobyaari-engine/internal/session"
)

type Deps struct {
	Session *session.Session
	Hub     *events.Hub

	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// BaseCtx bounds background refreshes; cancelled on shutdown.
	BaseCtx context.Context

	// ExportDir holds SQLite exports while they are streamed out. Empty means os.TempDir.
	ExportDir string

	Now func() time.Time
}

func (d Deps) baseCtx() context.Context {
	if d.BaseCtx != nil {
		return d.BaseCtx
	}
	return context.Background()
}
