// Package api exposes a running game over HTTP. Players steer it with POST
// requests or websocket messages; spectators watch frames on the websocket.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/battlesnakeio/snake/config"
	"github.com/battlesnakeio/snake/game"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/worker"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Controller is the running game as the API sees it.
type Controller interface {
	Send(context.Context, game.Command) error
	Frame() game.Frame
}

// Server is the HTTP front end of a running game.
type Server struct {
	hs         *http.Server
	controller Controller
	hub        *Hub
	limiter    *rate.Limiter
}

// New builds a server listening on addr. The hub must also be rendering the
// controller's frames for the websocket to receive anything.
func New(addr string, c Controller, hub *Hub) *Server {
	s := &Server{
		controller: c,
		hub:        hub,
		limiter:    rate.NewLimiter(config.ControlRate, config.ControlBurstRate),
	}

	router := httprouter.New()
	router.GET("/healthz", s.healthz)
	router.GET("/game", s.frame)
	router.POST("/game/start", s.command(game.CommandStart))
	router.POST("/game/pause", s.command(game.CommandPause))
	router.POST("/game/direction/:dir", s.direction)
	router.GET("/socket", s.socket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("snake api listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) frame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, s.controller.Frame())
}

func (s *Server) command(c game.Command) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		s.send(w, r, c)
	}
}

func (s *Server) direction(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	d, err := rules.ParseDirection(ps.ByName("dir"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.send(w, r, game.DirectionCommand(d))
}

func (s *Server) send(w http.ResponseWriter, r *http.Request, c game.Command) {
	if !s.limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, errRateLimited)
		return
	}

	err := s.controller.Send(r.Context(), c)
	switch {
	case err == worker.ErrStopped:
		writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		log.WithError(err).WithField("command", c).Warn("unable to queue command")
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]game.Command{"command": c})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
