package tts

import (
	"context"
	"fmt"
	"strings"
)

// Synthesizer — абстракция синтеза речи. Выполняет ровно один запрос к провайдеру
// и возвращает аудио-байты как есть, без перекодирования.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}

// VoiceLister возвращает полный список голосов провайдера.
type VoiceLister interface {
	ListVoices(ctx context.Context) ([]Voice, error)
}

// Gender — пол голоса в том виде, в котором он попадает в отображаемую подпись.
type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderNeutral     Gender = "Neutral"
	GenderUnspecified Gender = "Unspecified"
)

// Voice — описание одного голоса провайдера. Поля берутся из ответа без изменений.
type Voice struct {
	Name          string
	LanguageCodes []string // первый код считается основным при группировке
	Gender        Gender
}

// Допустимые диапазоны просодии. Провайдер дополнительно проверяет их на своей стороне,
// но мы отклоняем невалидные значения локально, до сетевого вызова.
const (
	MinSpeakingRate = 0.25
	MaxSpeakingRate = 4.0
	MinPitch        = -20.0
	MaxPitch        = 20.0
)

// Request — параметры одного запроса на синтез.
type Request struct {
	Text         string
	VoiceName    string
	SpeakingRate float64
	Pitch        float64
}

// Validate проверяет предусловия запроса локально. Любое нарушение — ErrValidation,
// сетевой вызов при этом не выполняется.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("%w: text is empty", ErrValidation)
	}
	if strings.TrimSpace(r.VoiceName) == "" {
		return fmt.Errorf("%w: voice name is empty", ErrValidation)
	}
	if r.SpeakingRate < MinSpeakingRate || r.SpeakingRate > MaxSpeakingRate {
		return fmt.Errorf("%w: speaking rate %.2f out of range [%.2f, %.2f]", ErrValidation, r.SpeakingRate, MinSpeakingRate, MaxSpeakingRate)
	}
	if r.Pitch < MinPitch || r.Pitch > MaxPitch {
		return fmt.Errorf("%w: pitch %.1f out of range [%.1f, %.1f]", ErrValidation, r.Pitch, MinPitch, MaxPitch)
	}
	return nil
}

// DeriveLanguageCode выводит код языка из имени голоса: первые два сегмента,
// разделённые дефисом ("en-US-Wavenet-F" -> "en-US"). Имя из одного сегмента
// возвращается целиком. Соглашение хрупкое: если зарегистрированный код голоса
// не совпадает с выведенным, провайдер может молча подобрать другой голос.
func DeriveLanguageCode(voiceName string) string {
	parts := strings.Split(voiceName, "-")
	if len(parts) < 2 {
		return voiceName
	}
	return parts[0] + "-" + parts[1]
}
