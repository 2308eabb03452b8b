package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"jobyaari-engine/internal/config"
	"jobyaari-engine/internal/events"
	"jobyaari-engine/internal/httpapi"
	"jobyaari-engine/internal/logger"
	"jobyaari-engine/internal/scheduler"
	"jobyaari-engine/internal/session"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("engine stopped")
	}
}

func run() error {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBYAARI_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	userCfgPath := os.Getenv("JOBYAARI_CONFIG")
	if userCfgPath == "" {
		p, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			return fmt.Errorf("config bootstrap failed: %w", err)
		}
		userCfgPath = p
	}

	loadCfg := func() (config.Config, error) {
		raw, err := config.Load(userCfgPath)
		if err != nil {
			return raw, err
		}
		cfg, vr := config.NormalizeAndValidate(raw)
		for _, w := range vr.Warnings {
			log.Warn().Str("path", userCfgPath).Msg(w)
		}
		if !vr.OK() {
			return cfg, fmt.Errorf("invalid config %s: %v", userCfgPath, vr.Errors)
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(cfg)

	logger.Init(cfg.App.LogLevel, cfg.App.Pretty)

	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock data dir: %w", err)
	}
	if !locked {
		return errors.New("another engine is already using " + dataDir)
	}
	defer lock.Unlock()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := events.NewHub()
	sess := session.New(newBuilder(cfg), newResolver(ctx, cfg))
	sess.OnChange = hub.Notify

	// first load happens in the background so /health answers immediately
	go scheduler.Every(ctx, cfg.RefreshInterval(), "refresh", func(ctx context.Context) error {
		_, err := sess.Refresh(ctx)
		return err
	})

	exportDir := cfg.App.DataDir
	if exportDir == "" || exportDir == "." {
		exportDir = dataDir
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Session:     sess,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		BaseCtx:     ctx,
		ExportDir:   exportDir,
	})

	token := os.Getenv("JOBYAARI_SHUTDOWN_TOKEN")
	if token == "" {
		if token, err = randomToken(16); err != nil {
			return err
		}
	}
	mux.HandleFunc("/shutdown", shutdownHandler(token, stop))

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", "http://"+addr).Str("config", userCfgPath).Msg("engine listening")
		log.Debug().Str("token", token).Msg("shutdown token")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
