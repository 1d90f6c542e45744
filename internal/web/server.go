package web

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"TTSConverter/internal/service/tts"
	"TTSConverter/internal/service/tts/catalog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Server — HTTP-фасад конвертера: страница, список голосов, синтез, health.
// Вся доменная работа делегируется Synthesizer и Cache; сервер только
// разбирает запросы и переводит типизированные ошибки в HTTP-статусы.
type Server struct {
	srv     *http.Server
	logger  *zap.SugaredLogger
	synth   tts.Synthesizer
	voices  *catalog.Cache
	running atomic.Bool
}

func NewServer(bindAddr string, synth tts.Synthesizer, voices *catalog.Cache, logger *zap.SugaredLogger) *Server {
	if bindAddr == "" {
		bindAddr = "127.0.0.1:8080"
	}
	s := &Server{logger: logger, synth: synth, voices: voices}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Get("/api/voices", s.handleVoices)
	r.Post("/api/synthesize", s.handleSynthesize)

	s.srv = &http.Server{
		Addr:              bindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      90 * time.Second, // синтез длинного текста укладывается с запасом
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler отдаёт корневой обработчик (используется в тестах через httptest).
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func (s *Server) Addr() string { return s.srv.Addr }

func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	go func() {
		s.logger.Infow("web server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
			s.logger.Errorw("web server stopped with error", "error", err)
		} else {
			s.logger.Infow("web server stopped")
		}
	}()

	// Watch for context cancellation to stop the server
	go func() {
		<-ctx.Done()
		_ = s.Stop(context.WithoutCancel(ctx))
	}()
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeoutCause(ctx, 5*time.Second, errors.New("web server shutdown timeout"))
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warnw("graceful shutdown error", "error", err)
		return s.srv.Close()
	}
	return nil
}
