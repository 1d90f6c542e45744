package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TTSConverter/internal/config"
	"TTSConverter/internal/service/auth"
	"TTSConverter/internal/service/tts/catalog"
	"TTSConverter/internal/service/tts/google"
	"TTSConverter/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	sugar.Infow("Starting app",
		"DebugMode", cfg.DebugMode,
		"BindAddr", cfg.BindAddr,
	)

	// Учётные данные фатальны: без них ни каталог, ни синтез не заработают.
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
	sugar.Infow("Successfully connected to Google Cloud TTS")

	voices := catalog.NewCache(client, sugar)

	// Прогреваем каталог заранее. Ошибка не фатальна: приложение остаётся
	// интерактивным, просто список голосов будет пуст до следующей попытки.
	warmCtx, cancelWarm := context.WithTimeoutCause(ctx, 30*time.Second, errors.New("voice catalog warm-up timeout"))
	if _, err := voices.GetOrFetch(warmCtx); err != nil {
		sugar.Warnw("voice catalog warm-up failed", "error", err)
	}
	cancelWarm()

	srv := web.NewServer(cfg.BindAddr, client, voices, sugar)
	if err := srv.Start(ctx); err != nil {
		sugar.Errorw("failed to start web server", "error", err)
		os.Exit(1)
	}

	// Graceful shutdown on Ctrl+C / SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	if err := srv.Stop(ctx); err != nil {
		sugar.Warnw("graceful shutdown error", "error", err)
	}
	sugar.Infow("server stopped")
}
