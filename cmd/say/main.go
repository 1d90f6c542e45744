package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"TTSConverter/internal/config"
	"TTSConverter/internal/service/auth"
	"TTSConverter/internal/service/tts"
	"TTSConverter/internal/service/tts/google"
	"TTSConverter/internal/service/tts/player"

	"go.uber.org/zap"
)

// Утилита: синтезирует одну фразу выбранным голосом и проигрывает её через
// динамики. Текст — аргументы после флагов; голос/скорость/тон из конфига.
func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	text := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(text) == "" {
		text = "Hello! Welcome to the Text-to-Speech demonstration powered by Google Cloud."
	}

	ctx, cancel := context.WithTimeoutCause(context.Background(), 90*time.Second, errors.New("say timeout"))
	defer cancel()

	opts, err := auth.ClientOptions(ctx, cfg.GoogleTTS)
	if err != nil {
		sugar.Errorw("Error setting up Google Cloud credentials", "error", err)
		os.Exit(1)
	}

	client, err := google.New(ctx, sugar, opts...)
	if err != nil {
		sugar.Errorw("failed to create Google TTS client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	audio, err := client.Synthesize(ctx, tts.Request{
		Text:         text,
		VoiceName:    cfg.GoogleTTS.Voice,
		SpeakingRate: cfg.GoogleTTS.SpeakingRate,
		Pitch:        cfg.GoogleTTS.Pitch,
	})
	if err != nil {
		sugar.Errorw("synthesize failed", "voice", cfg.GoogleTTS.Voice, "error", err)
		os.Exit(1)
	}

	if err := player.New().Play(ctx, "mp3", bytes.NewReader(audio)); err != nil {
		sugar.Errorw("playback failed", "error", err)
		os.Exit(1)
	}
}
