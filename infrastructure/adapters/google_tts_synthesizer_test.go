package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/config"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

func ttsTestConfig(apiUrl string) *config.TtsConfig {
	return &config.TtsConfig{
		ApiUrl:       apiUrl,
		ApiKey:       "test-key",
		LanguageCode: "cmn-CN",
		MaleVoice:    "cmn-CN-Wavenet-B",
		FemaleVoice:  "cmn-CN-Wavenet-A",
	}
}

func ttsServer(t *testing.T, audio []byte, gotBody *ttsSynthesizeRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(gotBody); err != nil {
			t.Fatal("Failed to decode request body:", err)
		}
		res := ttsSynthesizeResponse{AudioContent: base64.StdEncoding.EncodeToString(audio)}
		if err := json.NewEncoder(w).Encode(res); err != nil {
			t.Fatal("Failed to encode response:", err)
		}
	}))
}

func TestGoogleTtsSynthesizer_Synthesize(t *testing.T) {
	audio := []byte("fake-mp3-bytes")
	var gotBody ttsSynthesizeRequest
	server := ttsServer(t, audio, &gotBody)
	defer server.Close()

	logger := NewZerologWrapper()
	synthesizer := NewGoogleTtsSynthesizer(NewContentFetcher(logger), ttsTestConfig(server.URL), logger)

	got, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:   "快樂的時光總是過得特別快。",
		Style:  "sad",
		Gender: "MALE",
	})
	if err != nil {
		t.Fatal("Synthesize failed:", err)
	}
	if string(got) != string(audio) {
		t.Fatalf("Audio = %q, want the decoded server bytes", got)
	}

	if gotBody.Voice.Name != "cmn-CN-Wavenet-B" {
		t.Fatalf("Voice = %q, want the male voice", gotBody.Voice.Name)
	}
	if gotBody.Voice.LanguageCode != "cmn-CN" {
		t.Fatalf("LanguageCode = %q, want cmn-CN", gotBody.Voice.LanguageCode)
	}
	if gotBody.AudioConfig.AudioEncoding != "MP3" {
		t.Fatalf("AudioEncoding = %q, want MP3", gotBody.AudioConfig.AudioEncoding)
	}
	for _, fragment := range []string{`rate="85%"`, `pitch="-0.5st"`, "快樂的時光總是過得特別快。", "<speak>"} {
		if !strings.Contains(gotBody.Input.Ssml, fragment) {
			t.Fatalf("SSML is missing %q:\n%s", fragment, gotBody.Input.Ssml)
		}
	}
}

func TestGoogleTtsSynthesizer_NonMaleGendersGetFemaleVoice(t *testing.T) {
	for _, gender := range []string{"FEMALE", "", "male", "OTHER"} {
		var gotBody ttsSynthesizeRequest
		server := ttsServer(t, []byte("x"), &gotBody)

		logger := NewZerologWrapper()
		synthesizer := NewGoogleTtsSynthesizer(NewContentFetcher(logger), ttsTestConfig(server.URL), logger)

		if _, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
			Text:   "歌詞",
			Style:  "calm",
			Gender: gender,
		}); err != nil {
			t.Fatal("Synthesize failed:", err)
		}
		if gotBody.Voice.Name != "cmn-CN-Wavenet-A" {
			t.Fatalf("Voice for gender %q = %q, want the female voice", gender, gotBody.Voice.Name)
		}
		server.Close()
	}
}

func TestGoogleTtsSynthesizer_DefaultStyleGetsBaselineProsody(t *testing.T) {
	var gotBody ttsSynthesizeRequest
	server := ttsServer(t, []byte("x"), &gotBody)
	defer server.Close()

	logger := NewZerologWrapper()
	synthesizer := NewGoogleTtsSynthesizer(NewContentFetcher(logger), ttsTestConfig(server.URL), logger)

	if _, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:  "歌詞",
		Style: domain.DefaultStyle,
	}); err != nil {
		t.Fatal("Synthesize failed:", err)
	}
	if !strings.Contains(gotBody.Input.Ssml, `rate="100%"`) || !strings.Contains(gotBody.Input.Ssml, `pitch="+1st"`) {
		t.Fatalf("Default style should get the neutral baseline:\n%s", gotBody.Input.Ssml)
	}
}

func TestGoogleTtsSynthesizer_MissingKeyFailsBeforeNetwork(t *testing.T) {
	logger := NewZerologWrapper()
	ttsConfig := ttsTestConfig("http://127.0.0.1:1")
	ttsConfig.ApiKey = ""

	synthesizer := NewGoogleTtsSynthesizer(nil, ttsConfig, logger)

	_, err := synthesizer.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{Text: "歌詞"})
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}
