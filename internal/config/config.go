package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DebugMode bool   `env:"DEBUG_MODE"` // Режим дебага
	BindAddr  string `env:"BIND_ADDR"`  // Адрес HTTP-сервера веб-интерфейса
	GoogleTTS GoogleTTSConfig
}

// GoogleTTSConfig — конфигурация синтеза речи через Google Cloud Text-to-Speech.
type GoogleTTSConfig struct {
	// Учётные данные сервисного аккаунта в виде base64 от JSON-ключа.
	// Приоритетный источник: удобен для окружений без файловой системы с секретами.
	CredentialsB64 string `env:"GOOGLE_CREDENTIALS"`
	// Путь к файлу ключа сервисного аккаунта. Используется, если base64-вариант пуст.
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	// API-ключ. Последний fallback перед ADC.
	APIKey string `env:"GOOGLE_API_KEY"`

	Language     string  `env:"GOOGLE_TTS_LANGUAGE"`      // язык по умолчанию для выбора в UI
	Voice        string  `env:"GOOGLE_TTS_VOICE"`         // голос по умолчанию (cmd/say)
	SpeakingRate float64 `env:"GOOGLE_TTS_SPEAKING_RATE"` // скорость речи, 1.0 — нормальная
	Pitch        float64 `env:"GOOGLE_TTS_PITCH"`         // тон (полутоны), 0.0 — по умолчанию
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		DebugMode: false,
		BindAddr:  "127.0.0.1:8080",
		GoogleTTS: GoogleTTSConfig{
			Language:     "en-US",
			Voice:        "en-US-Wavenet-F",
			SpeakingRate: 1.0,
			Pitch:        0.0,
		},
	}
}

// NewConfig загружает конфигурацию приложения.
func NewConfig() *Config {
	_ = godotenv.Load()

	// Стартуем с дефолтов, затем перекрываем .env/окружением и флагами
	cfg := Defaults()
	_ = env.Parse(cfg)

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага")
	flag.StringVar(&cfg.BindAddr, "bind-addr", cfg.BindAddr, "адрес HTTP-сервера, напр. 127.0.0.1:8080")
	flag.StringVar(&cfg.GoogleTTS.CredentialsB64, "google-credentials-b64", cfg.GoogleTTS.CredentialsB64, "base64 от JSON-ключа сервисного аккаунта (перекрывает ENV GOOGLE_CREDENTIALS)")
	flag.StringVar(&cfg.GoogleTTS.CredentialsPath, "google-credentials", cfg.GoogleTTS.CredentialsPath, "путь к JSON-ключу сервисного аккаунта (также читается из ENV GOOGLE_APPLICATION_CREDENTIALS)")
	flag.StringVar(&cfg.GoogleTTS.APIKey, "google-api-key", cfg.GoogleTTS.APIKey, "API-ключ Google (fallback, если ключ сервисного аккаунта не задан)")
	flag.StringVar(&cfg.GoogleTTS.Language, "google-tts-language", cfg.GoogleTTS.Language, "язык по умолчанию, напр. en-US")
	flag.StringVar(&cfg.GoogleTTS.Voice, "google-tts-voice", cfg.GoogleTTS.Voice, "имя голоса, напр. en-US-Wavenet-F")
	flag.Float64Var(&cfg.GoogleTTS.SpeakingRate, "google-tts-speaking-rate", cfg.GoogleTTS.SpeakingRate, "скорость речи (0.25–4.0, 1.0 по умолчанию)")
	flag.Float64Var(&cfg.GoogleTTS.Pitch, "google-tts-pitch", cfg.GoogleTTS.Pitch, "тон в полутонах (-20.0–20.0, 0.0 по умолчанию)")
	flag.Parse()

	return cfg
}
