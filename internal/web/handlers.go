package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"TTSConverter/internal/service/tts"
	"TTSConverter/internal/service/tts/catalog"
)

const downloadFileName = "generated_speech.mp3"

type voicesResponse struct {
	Languages []string                    `json:"languages"`
	Voices    map[string][]catalog.Option `json:"voices"`
}

type synthesizeRequest struct {
	Text         string  `json:"text"`
	Voice        string  `json:"voice"`
	SpeakingRate float64 `json:"speakingRate"`
	Pitch        float64 `json:"pitch"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
	Voices int    `json:"voices"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// handleHealth сообщает состояние без похода к провайдеру: размер каталога
// берётся из кэша, если он уже построен.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	n := 0
	if cat, ok := s.voices.Cached(); ok {
		n = cat.Len()
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Voices: n})
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeoutCause(r.Context(), 30*time.Second, errors.New("voices request timeout"))
	defer cancel()

	cat, err := s.voices.GetOrFetch(ctx)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "could not fetch voices from Google API")
		return
	}
	writeJSON(w, http.StatusOK, voicesResponse{Languages: cat.Languages(), Voices: cat})
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req synthesizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	synthReq := tts.Request{
		Text:         req.Text,
		VoiceName:    req.Voice,
		SpeakingRate: req.SpeakingRate,
		Pitch:        req.Pitch,
	}
	// Локальные предусловия проверяем до любых сетевых вызовов.
	if err := synthReq.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeoutCause(r.Context(), 60*time.Second, errors.New("synthesize request timeout"))
	defer cancel()

	// Имя голоса должно быть известно каталогу — как в исходном UI, где без
	// списка голосов генерация недоступна.
	cat, err := s.voices.GetOrFetch(ctx)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "cannot generate audio because voice list is unavailable")
		return
	}
	if !cat.Has(req.Voice) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown voice: %s", req.Voice))
		return
	}

	audio, err := s.synth.Synthesize(ctx, synthReq)
	if err != nil {
		s.logger.Errorw("synthesize failed", "voice", req.Voice, "error", err)
		switch {
		case errors.Is(err, tts.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, tts.ErrSynthesis):
			writeError(w, http.StatusBadGateway, "API call failed")
		default:
			writeError(w, http.StatusInternalServerError, "synthesis failed")
		}
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
