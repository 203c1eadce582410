package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var (
	apiListen    = ":3005"
	healthListen = ":3006"
	promEnable   = true
	promListen   = ":9000"
)

func init() {
	serveCmd.Flags().StringVarP(&apiListen, "listen", "l", apiListen, "api address to listen on")
	serveCmd.Flags().StringVar(&healthListen, "health-listen", healthListen, "grpc health check address to listen on")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "runs a game driven over http",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		if err := serve(); err != nil {
			log.WithError(err).
				WithField("listen", apiListen).
				Fatal("api server failed")
		}
	},
}

func serve() error {
	s, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore(s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := api.NewHub()
	runner := worker.NewRunner(game.New(ctx, s), hub, config.FrameInterval)
	go runner.Run(ctx)

	health := api.NewHealthServer()
	go func() {
		if err := health.Serve(healthListen); err != nil {
			log.WithError(err).
				WithField("listen", healthListen).
				Error("health server failed")
		}
	}()
	health.SetServing(true)

	srv := api.New(apiListen, runner, hub)
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		health.SetServing(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("api shutdown failed")
		}
		health.Stop()
	}()

	if err := srv.WaitForExit(); err != nil {
		return err
	}
	<-runner.Done()
	return nil
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
