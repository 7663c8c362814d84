package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"minesweeper/communication"
	"minesweeper/game"
	"minesweeper/gamemaster"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 16

// ServerCommunicator exposes a Communicator over HTTP.
type ServerCommunicator struct {
	master communication.Communicator
}

// NewServerCommunicator initializes and returns a new ServerCommunicator.
func NewServerCommunicator(master communication.Communicator) *ServerCommunicator {
	return &ServerCommunicator{
		master: master,
	}
}

// Routes sets up the HTTP routes.
func (sc *ServerCommunicator) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	r.Route("/games", func(r chi.Router) {
		r.Post("/", sc.handleNewGame)
		r.Get("/{id}", sc.handleGetGame)
		r.Post("/{id}/moves", sc.handleSendMove)
		r.Delete("/{id}", sc.handleEndGame)
	})
	return r
}

// Start serves on addr until ctx is cancelled.
func (sc *ServerCommunicator) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           sc.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (sc *ServerCommunicator) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var params gamemaster.Params
	if err := decode(w, r, &params); err != nil {
		writeError(w, r, err)
		return
	}
	snap, err := sc.master.NewGame(params)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (sc *ServerCommunicator) handleGetGame(w http.ResponseWriter, r *http.Request) {
	snap, err := sc.master.GetGame(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (sc *ServerCommunicator) handleSendMove(w http.ResponseWriter, r *http.Request) {
	var move game.Move
	if err := decode(w, r, &move); err != nil {
		writeError(w, r, err)
		return
	}
	snap, err := sc.master.SendMove(chi.URLParam(r, "id"), move)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (sc *ServerCommunicator) handleEndGame(w http.ResponseWriter, r *http.Request) {
	if err := sc.master.EndGame(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads a JSON body. Errors already classified by the game, such as
// an unknown move type, keep their class; anything else is a bad request.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if err == nil {
		return nil
	}
	if errors.Is(err, game.ErrUnknownMove) {
		return err
	}
	return fmt.Errorf("%w: %v", communication.ErrBadRequest, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, status := communication.Classify(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("request failed")
	}
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error(), Code: code})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
