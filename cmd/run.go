package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
	"github.com/ingyamilmolinar/rangeslider/internal/config"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
	"github.com/ingyamilmolinar/rangeslider/internal/metrics"
	"github.com/ingyamilmolinar/rangeslider/internal/ui"
)

func runCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open a window with the configured sliders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
}

func newLogger(env config.EnvConfig) *game_log.Logger {
	return game_log.NewWithFormat(os.Stderr, game_log.Format(env.LogFormat), game_log.LevelFromString(env.LogLevel))
}

func run(cfg config.AppConfig) error {
	logger := newLogger(cfg.Env)

	defs, err := sliderDefs(cfg.Sliders)
	if err != nil {
		return err
	}

	var hooks ui.HooksFactory
	if cfg.Env.MetricsAddr != "" {
		m := metrics.New("rangeslider")
		hooks = func(name string) rangesel.Hooks { return m.ForSlider(name) }
		srv := &http.Server{
			Addr:              cfg.Env.MetricsAddr,
			Handler:           metricsMux(m),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Infof("[METRICS] listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("[METRICS] server stopped: %v", err)
			}
		}()
		defer srv.Close()
	}

	g, err := ui.New(logger, defs, hooks)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Env.WindowWidth, cfg.Env.WindowHeight)
	ebiten.SetWindowTitle(cfg.Env.WindowTitle)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func metricsMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}
