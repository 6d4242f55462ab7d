package config

import "os"

const defaultGeminiApiUrl = "https://generativelanguage.googleapis.com/v1beta"
const defaultGeminiModel = "gemini-2.5-flash"

type GeminiConfig struct {
	ApiUrl      string
	ApiKey      string
	Model       string
	Temperature float64
	ProjectID   string
}

// GetGeminiConfig never fails: a missing GEMINI_API_KEY is reported per
// request as a configuration error instead of preventing startup, so the rest
// of the service (static client, history) stays reachable.
func GetGeminiConfig() *GeminiConfig {
	apiUrl := os.Getenv("GEMINI_API_URL")
	if apiUrl == "" {
		apiUrl = defaultGeminiApiUrl
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiConfig{
		ApiUrl:      apiUrl,
		ApiKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       model,
		Temperature: 0.7,
		ProjectID:   os.Getenv("GCP_PROJECT_ID"),
	}
}
