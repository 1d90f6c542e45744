package google

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"TTSConverter/internal/service/tts"

	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
)

var _ api = (*fakeAPI)(nil)

type fakeAPI struct {
	ListVoicesFn       func(ctx context.Context, req *ttspb.ListVoicesRequest) (*ttspb.ListVoicesResponse, error)
	SynthesizeSpeechFn func(ctx context.Context, req *ttspb.SynthesizeSpeechRequest) (*ttspb.SynthesizeSpeechResponse, error)

	synthCalls int
	listCalls  int
}

func (f *fakeAPI) ListVoices(ctx context.Context, req *ttspb.ListVoicesRequest, _ ...gax.CallOption) (*ttspb.ListVoicesResponse, error) {
	f.listCalls++
	return f.ListVoicesFn(ctx, req)
}

func (f *fakeAPI) SynthesizeSpeech(ctx context.Context, req *ttspb.SynthesizeSpeechRequest, _ ...gax.CallOption) (*ttspb.SynthesizeSpeechResponse, error) {
	f.synthCalls++
	return f.SynthesizeSpeechFn(ctx, req)
}

func (f *fakeAPI) Close() error { return nil }

// Ensure a synthesize call issues exactly one provider request with plain-text
// input, MP3 encoding, the derived language code, and returns the provider's
// bytes unmodified.
func TestClient_Synthesize(t *testing.T) {
	audio := []byte{0xff, 0xfb, 0x90, 0x00, 0x01, 0x02}
	var captured *ttspb.SynthesizeSpeechRequest
	f := &fakeAPI{
		SynthesizeSpeechFn: func(ctx context.Context, req *ttspb.SynthesizeSpeechRequest) (*ttspb.SynthesizeSpeechResponse, error) {
			captured = req
			return &ttspb.SynthesizeSpeechResponse{AudioContent: audio}, nil
		},
	}
	c := &Client{api: f}

	got, err := c.Synthesize(context.Background(), tts.Request{
		Text:         "Hello",
		VoiceName:    "en-US-Wavenet-F",
		SpeakingRate: 1.0,
		Pitch:        0.0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, audio) {
		t.Errorf("audio bytes mutated: got %x, want %x", got, audio)
	}
	if f.synthCalls != 1 {
		t.Errorf("provider calls = %d, want 1", f.synthCalls)
	}

	if got := captured.GetInput().GetText(); got != "Hello" {
		t.Errorf("input text = %q, want %q", got, "Hello")
	}
	if got := captured.GetVoice().GetName(); got != "en-US-Wavenet-F" {
		t.Errorf("voice name = %q", got)
	}
	if got := captured.GetVoice().GetLanguageCode(); got != "en-US" {
		t.Errorf("derived language code = %q, want %q", got, "en-US")
	}
	if got := captured.GetAudioConfig().GetAudioEncoding(); got != ttspb.AudioEncoding_MP3 {
		t.Errorf("audio encoding = %v, want MP3", got)
	}
	if got := captured.GetAudioConfig().GetSpeakingRate(); got != 1.0 {
		t.Errorf("speaking rate = %v, want 1.0", got)
	}
	if got := captured.GetAudioConfig().GetPitch(); got != 0.0 {
		t.Errorf("pitch = %v, want 0.0", got)
	}
}

// Ensure an invalid request is rejected locally without a provider call.
func TestClient_Synthesize_ValidationShortCircuit(t *testing.T) {
	f := &fakeAPI{
		SynthesizeSpeechFn: func(ctx context.Context, req *ttspb.SynthesizeSpeechRequest) (*ttspb.SynthesizeSpeechResponse, error) {
			t.Fatal("provider must not be called for an invalid request")
			return nil, nil
		},
	}
	c := &Client{api: f}

	_, err := c.Synthesize(context.Background(), tts.Request{
		Text:         "   ",
		VoiceName:    "en-US-Wavenet-F",
		SpeakingRate: 1.0,
	})
	if !errors.Is(err, tts.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if f.synthCalls != 0 {
		t.Errorf("provider calls = %d, want 0", f.synthCalls)
	}
}

// Ensure provider-side failures are classified as ErrSynthesis.
func TestClient_Synthesize_ProviderError(t *testing.T) {
	f := &fakeAPI{
		SynthesizeSpeechFn: func(ctx context.Context, req *ttspb.SynthesizeSpeechRequest) (*ttspb.SynthesizeSpeechResponse, error) {
			return nil, errors.New("rpc error: quota exceeded")
		},
	}
	c := &Client{api: f}

	_, err := c.Synthesize(context.Background(), tts.Request{
		Text:         "Hello",
		VoiceName:    "en-US-Wavenet-F",
		SpeakingRate: 1.0,
	})
	if !errors.Is(err, tts.ErrSynthesis) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
	if f.synthCalls != 1 {
		t.Errorf("provider calls = %d, want 1", f.synthCalls)
	}
}

// Ensure the voice list is mapped verbatim, including the gender enumerants.
func TestClient_ListVoices(t *testing.T) {
	f := &fakeAPI{
		ListVoicesFn: func(ctx context.Context, req *ttspb.ListVoicesRequest) (*ttspb.ListVoicesResponse, error) {
			if req.GetLanguageCode() != "" {
				t.Errorf("expected unfiltered request, got language %q", req.GetLanguageCode())
			}
			return &ttspb.ListVoicesResponse{Voices: []*ttspb.Voice{
				{Name: "en-US-Wavenet-F", LanguageCodes: []string{"en-US"}, SsmlGender: ttspb.SsmlVoiceGender_FEMALE},
				{Name: "en-US-Wavenet-A", LanguageCodes: []string{"en-US"}, SsmlGender: ttspb.SsmlVoiceGender_MALE},
				{Name: "de-DE-Standard-B", LanguageCodes: []string{"de-DE"}, SsmlGender: ttspb.SsmlVoiceGender_NEUTRAL},
				{Name: "xx-XX-Test-A", LanguageCodes: []string{"xx-XX"}, SsmlGender: ttspb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED},
			}}, nil
		},
	}
	c := &Client{api: f}

	got, err := c.ListVoices(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []tts.Voice{
		{Name: "en-US-Wavenet-F", LanguageCodes: []string{"en-US"}, Gender: tts.GenderFemale},
		{Name: "en-US-Wavenet-A", LanguageCodes: []string{"en-US"}, Gender: tts.GenderMale},
		{Name: "de-DE-Standard-B", LanguageCodes: []string{"de-DE"}, Gender: tts.GenderNeutral},
		{Name: "xx-XX-Test-A", LanguageCodes: []string{"xx-XX"}, Gender: tts.GenderUnspecified},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("voices = %+v, want %+v", got, want)
	}
}

// Ensure a listing failure surfaces as an error for the catalog boundary to classify.
func TestClient_ListVoices_Error(t *testing.T) {
	f := &fakeAPI{
		ListVoicesFn: func(ctx context.Context, req *ttspb.ListVoicesRequest) (*ttspb.ListVoicesResponse, error) {
			return nil, errors.New("network unreachable")
		},
	}
	c := &Client{api: f}

	if _, err := c.ListVoices(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
