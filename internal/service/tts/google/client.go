package google

import (
	"context"
	"fmt"
	"time"

	"TTSConverter/internal/service/tts"

	gctts "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// api — подмножество методов SDK-клиента, которое мы используем.
// Выделено в интерфейс ради подмены в тестах.
type api interface {
	ListVoices(ctx context.Context, req *ttspb.ListVoicesRequest, opts ...gax.CallOption) (*ttspb.ListVoicesResponse, error)
	SynthesizeSpeech(ctx context.Context, req *ttspb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*ttspb.SynthesizeSpeechResponse, error)
	Close() error
}

var _ api = (*gctts.Client)(nil)

// Ensure interface compliance
var (
	_ tts.Synthesizer = (*Client)(nil)
	_ tts.VoiceLister = (*Client)(nil)
)

// Client реализует синтез речи и листинг голосов через Google Cloud Text-to-Speech.
type Client struct {
	api    api
	logger *zap.SugaredLogger
}

// New создаёт клиента SDK. Ошибка инициализации — это всегда проблема учётных
// данных или транспорта, поэтому она классифицируется как ErrCredential.
func New(ctx context.Context, logger *zap.SugaredLogger, opts ...option.ClientOption) (*Client, error) {
	c, err := gctts.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tts.ErrCredential, err)
	}
	return &Client{api: c, logger: logger}, nil
}

func (c *Client) Close() error { return c.api.Close() }

// Synthesize выполняет ровно один запрос SynthesizeSpeech. Вход — обычный текст
// (без SSML), кодек фиксирован на MP3, байты ответа возвращаются без изменений.
// Невалидный запрос отклоняется до сетевого вызова.
func (c *Client) Synthesize(ctx context.Context, req tts.Request) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	input := &ttspb.SynthesisInput{
		InputSource: &ttspb.SynthesisInput_Text{Text: req.Text},
	}
	voice := &ttspb.VoiceSelectionParams{
		Name:         req.VoiceName,
		LanguageCode: tts.DeriveLanguageCode(req.VoiceName),
	}
	audio := &ttspb.AudioConfig{
		AudioEncoding: ttspb.AudioEncoding_MP3,
		SpeakingRate:  req.SpeakingRate,
		Pitch:         req.Pitch,
	}

	started := time.Now()
	resp, err := c.api.SynthesizeSpeech(ctx, &ttspb.SynthesizeSpeechRequest{
		Input:       input,
		Voice:       voice,
		AudioConfig: audio,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tts.ErrSynthesis, err)
	}
	if c.logger != nil {
		c.logger.Infow("Google TTS synthesize completed",
			"voice", req.VoiceName,
			"bytes", len(resp.GetAudioContent()),
			"took", time.Since(started).String(),
		)
	}
	return resp.GetAudioContent(), nil
}

// ListVoices запрашивает полный список голосов без фильтра по языку.
func (c *Client) ListVoices(ctx context.Context) ([]tts.Voice, error) {
	resp, err := c.api.ListVoices(ctx, &ttspb.ListVoicesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list voices: %w", err)
	}
	voices := make([]tts.Voice, 0, len(resp.GetVoices()))
	for _, v := range resp.GetVoices() {
		voices = append(voices, tts.Voice{
			Name:          v.GetName(),
			LanguageCodes: v.GetLanguageCodes(),
			Gender:        genderOf(v.GetSsmlGender()),
		})
	}
	return voices, nil
}

func genderOf(g ttspb.SsmlVoiceGender) tts.Gender {
	switch g {
	case ttspb.SsmlVoiceGender_MALE:
		return tts.GenderMale
	case ttspb.SsmlVoiceGender_FEMALE:
		return tts.GenderFemale
	case ttspb.SsmlVoiceGender_NEUTRAL:
		return tts.GenderNeutral
	default:
		return tts.GenderUnspecified
	}
}
