package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"TTSConverter/internal/config"
	"TTSConverter/internal/service/auth"
	"TTSConverter/internal/service/tts/catalog"
	"TTSConverter/internal/service/tts/google"
)

// Небольшая утилита: печатает каталог голосов Google TTS, сгруппированный
// по первому коду языка, в том виде, в котором его отдаёт /api/voices.
func main() {
	cfg := config.NewConfig()

	ctx, cancel := context.WithTimeoutCause(context.Background(), 30*time.Second, errors.New("google tts voices request timeout"))
	defer cancel()

	opts, err := auth.ClientOptions(ctx, cfg.GoogleTTS)
	if err != nil {
		fmt.Fprintln(os.Stderr, "credential setup failed:", err)
		os.Exit(1)
	}

	client, err := google.New(ctx, nil, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create Google TTS client:", err)
		os.Exit(1)
	}
	defer client.Close()

	cat, err := catalog.NewCache(client, nil).GetOrFetch(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to fetch voices:", err)
		os.Exit(1)
	}

	out := struct {
		Languages []string        `json:"languages"`
		Voices    catalog.Catalog `json:"voices"`
	}{cat.Languages(), cat}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode catalog:", err)
		os.Exit(1)
	}
	fmt.Println(string(b))
}
