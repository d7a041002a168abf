// Package http exposes the deskpilot engine over a JSON HTTP API. The route
// surface mirrors the original control panel: direct primitive routes under
// /api plus the free-text /api/task/execute endpoint.
package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Controller defines the interface the HTTP adapter needs from the engine.
type Controller interface {
	Dispatch(ctx context.Context, task string) domain.ActionResult
	Execute(ctx context.Context, action domain.Action) domain.ActionResult
	ReadScreenText(ctx context.Context) (string, error)
	CapturePNG(ctx context.Context) ([]byte, error)
	History(ctx context.Context, n int) ([]domain.Record, error)
	Simulated() bool
	ScreenSize() (int, int)
}

// Server holds the handler state.
type Server struct {
	engine  Controller
	version string
	logger  *slog.Logger
}

// NewHandler builds the HTTP handler for the engine.
func NewHandler(engine Controller, version string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: engine, version: version, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Route("/api", func(r chi.Router) {
		r.Get("/screen/capture", s.captureScreen)
		r.Get("/screen/text", s.readScreenText)
		r.Post("/mouse/move", s.moveMouse)
		r.Post("/mouse/click", s.clickMouse)
		r.Post("/keyboard/type", s.typeText)
		r.Post("/keyboard/hotkey", s.pressHotkey)
		r.Post("/app/open", s.openApp)
		r.Post("/task/execute", s.executeTask)
		r.Get("/history", s.getHistory)
	})
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, _ *http.Request) {
	mode := "real"
	if s.engine.Simulated() {
		mode = "simulation"
	}
	width, height := s.engine.ScreenSize()
	s.respond(w, http.StatusOK, map[string]any{
		"app":           "deskpilot",
		"version":       s.version,
		"mode":          mode,
		"screen_width":  width,
		"screen_height": height,
	})
}

func (s *Server) captureScreen(w http.ResponseWriter, r *http.Request) {
	data, err := s.engine.CapturePNG(r.Context())
	if err != nil {
		s.logger.Error("screen capture failed", "err", err)
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   base64.StdEncoding.EncodeToString(data),
	})
}

func (s *Server) readScreenText(w http.ResponseWriter, r *http.Request) {
	text, err := s.engine.ReadScreenText(r.Context())
	if err != nil {
		s.logger.Error("screen text read failed", "err", err)
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"success": true, "text": text})
}

type coordsRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

func (s *Server) moveMouse(w http.ResponseWriter, r *http.Request) {
	var body coordsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.X == nil || body.Y == nil {
		s.fail(w, http.StatusBadRequest, "missing x or y coordinates")
		return
	}
	s.result(w, s.engine.Execute(r.Context(), domain.Action{
		Kind: domain.KindMove, X: *body.X, Y: *body.Y,
	}))
}

type clickRequest struct {
	X      *int   `json:"x"`
	Y      *int   `json:"y"`
	Button string `json:"button"`
}

func (s *Server) clickMouse(w http.ResponseWriter, r *http.Request) {
	var body clickRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.X == nil || body.Y == nil {
		s.fail(w, http.StatusBadRequest, "missing x or y coordinates")
		return
	}
	if body.Button != "" && body.Button != "left" {
		s.fail(w, http.StatusBadRequest, "only the left button is supported")
		return
	}
	s.result(w, s.engine.Execute(r.Context(), domain.Action{
		Kind: domain.KindClick, X: *body.X, Y: *body.Y,
	}))
}

func (s *Server) typeText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Text == "" {
		s.fail(w, http.StatusBadRequest, "missing text")
		return
	}
	s.result(w, s.engine.Execute(r.Context(), domain.Action{
		Kind: domain.KindTypeText, Text: body.Text,
	}))
}

func (s *Server) pressHotkey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Keys []string `json:"keys"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.Keys) == 0 {
		s.fail(w, http.StatusBadRequest, "invalid or missing keys")
		return
	}
	s.result(w, s.engine.Execute(r.Context(), domain.Action{
		Kind: domain.KindKeyCombo, Keys: body.Keys,
	}))
}

func (s *Server) openApp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AppName string `json:"app_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.AppName == "" {
		s.fail(w, http.StatusBadRequest, "missing application name")
		return
	}
	s.result(w, s.engine.Execute(r.Context(), domain.Action{
		Kind: domain.KindOpenApp, App: body.AppName,
	}))
}

// executeTask is the free-text entry point. The response is the ActionResult
// envelope itself: status, kind, detail, simulated.
func (s *Server) executeTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Task string `json:"task"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Task == "" {
		s.fail(w, http.StatusBadRequest, "missing task description")
		return
	}

	res := s.engine.Dispatch(r.Context(), body.Task)
	code := http.StatusOK
	if res.Status == domain.StatusFailure {
		code = http.StatusInternalServerError
	}
	s.respond(w, code, res)
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	n := 20
	if q := r.URL.Query().Get("n"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed <= 0 {
			s.fail(w, http.StatusBadRequest, "invalid n parameter")
			return
		}
		n = parsed
	}
	records, err := s.engine.History(r.Context(), n)
	if err != nil {
		s.logger.Error("history read failed", "err", err)
		s.fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"success": true, "records": records})
}

// result maps a direct-action envelope onto the success/error JSON shape the
// primitive routes use.
func (s *Server) result(w http.ResponseWriter, res domain.ActionResult) {
	if res.Status == domain.StatusFailure {
		s.fail(w, http.StatusInternalServerError, res.Detail)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   res.Detail,
		"simulated": res.Simulated,
	})
}

func (s *Server) fail(w http.ResponseWriter, code int, msg string) {
	s.respond(w, code, map[string]any{"success": false, "error": msg})
}

func (s *Server) respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
