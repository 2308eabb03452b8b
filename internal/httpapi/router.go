package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach extra routes.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{Now: d.Now, Hub: d.Hub}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Refresh
	rh := RefreshHandler{Session: d.Session, BaseCtx: d.baseCtx()}
	mux.HandleFunc("/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))
	mux.HandleFunc("/refresh/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: rh.Status,
	}))

	// Jobs
	jh := JobsHandler{Session: d.Session}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/explore", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Explore,
	}))
	mux.HandleFunc("/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Stats,
	}))

	// Chat
	chh := ChatHandler{Session: d.Session}
	mux.HandleFunc("/chat", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: chh.Chat,
	}))
	mux.HandleFunc("/chat/quick/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: chh.Quick, // expects /chat/quick/{category}
	}))
	mux.HandleFunc("/transcript", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    chh.Transcript,
		http.MethodDelete: chh.ClearTranscript,
	}))

	// Export
	xh := ExportHandler{Session: d.Session, Dir: d.ExportDir, Now: d.Now}
	mux.HandleFunc("/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: xh.Export,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	sh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/llm", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    sh.Status,
		http.MethodPost:   sh.SetAPIKey,
		http.MethodDelete: sh.DeleteAPIKey,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}

// NewHandler wraps the mux in the standard middleware chain.
func NewHandler(d Deps) http.Handler {
	return Chain(NewMux(d), RequestID, Recover, AccessLog, Cors)
}
