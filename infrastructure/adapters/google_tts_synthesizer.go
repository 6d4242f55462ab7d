package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/config"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

type ttsSynthesizeRequest struct {
	Input       ttsInput       `json:"input"`
	Voice       ttsVoice       `json:"voice"`
	AudioConfig ttsAudioConfig `json:"audioConfig"`
}

type ttsInput struct {
	Ssml string `json:"ssml"`
}

type ttsVoice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

type ttsAudioConfig struct {
	AudioEncoding string `json:"audioEncoding"`
}

type ttsSynthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

type googleTtsSynthesizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.TtsConfig
}

func NewGoogleTtsSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.TtsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &googleTtsSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

func (g *googleTtsSynthesizer) Synthesize(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) ([]byte, error) {
	if g.ttsConfig.ApiKey == "" {
		g.logger.Error(domain.ErrMissingCredential, "TTS API key is not set")
		return nil, domain.ErrMissingCredential
	}

	req, err := g.getRequest(ctx, synthReq)
	if err != nil {
		g.logger.Error(err, "Failed to construct the TTS HTTP request")
		return nil, err
	}

	payload, err := g.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var res ttsSynthesizeResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		g.logger.Error(err, "Failed to unmarshal the TTS response")
		return nil, err
	}

	audio, err := base64.StdEncoding.DecodeString(res.AudioContent)
	if err != nil {
		g.logger.Error(err, "Failed to decode the TTS audio content")
		return nil, err
	}

	return audio, nil
}

func (g *googleTtsSynthesizer) getRequest(ctx context.Context, synthReq outbound.SynthesizeSpeechRequest) (*http.Request, error) {
	reqBody := ttsSynthesizeRequest{
		Input:       ttsInput{Ssml: buildSsml(synthReq.Text, synthReq.Style)},
		Voice:       ttsVoice{LanguageCode: g.ttsConfig.LanguageCode, Name: g.voiceName(synthReq.Gender)},
		AudioConfig: ttsAudioConfig{AudioEncoding: "MP3"},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	apiUrl := fmt.Sprintf("%s/text:synthesize?key=%s", g.ttsConfig.ApiUrl, g.ttsConfig.ApiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", apiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// voiceName is a binary choice: MALE gets the male Wavenet voice, everything
// else, FEMALE or missing included, gets the female one.
func (g *googleTtsSynthesizer) voiceName(gender string) string {
	if gender == "MALE" {
		return g.ttsConfig.MaleVoice
	}
	return g.ttsConfig.FemaleVoice
}

func buildSsml(text string, style string) string {
	prosody := domain.ProsodyForStyle(style)
	return fmt.Sprintf(`<speak><prosody rate="%s" pitch="%s">%s</prosody></speak>`,
		prosody.Rate, prosody.Pitch, text)
}
