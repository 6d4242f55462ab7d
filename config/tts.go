package config

import "os"

const defaultTtsApiUrl = "https://texttospeech.googleapis.com/v1"

type TtsConfig struct {
	ApiUrl       string
	ApiKey       string
	LanguageCode string
	MaleVoice    string
	FemaleVoice  string
}

func GetTtsConfig() *TtsConfig {
	apiUrl := os.Getenv("GOOGLE_TTS_API_URL")
	if apiUrl == "" {
		apiUrl = defaultTtsApiUrl
	}
	apiKey := os.Getenv("GOOGLE_TTS_API_KEY")
	if apiKey == "" {
		// Same GCP project; the Gemini key works for both APIs.
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &TtsConfig{
		ApiUrl:       apiUrl,
		ApiKey:       apiKey,
		LanguageCode: "cmn-CN",
		MaleVoice:    "cmn-CN-Wavenet-B",
		FemaleVoice:  "cmn-CN-Wavenet-A",
	}
}
