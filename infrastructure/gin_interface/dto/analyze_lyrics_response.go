package dto

import "github.com/cocoWang-19/AI-Lyric-Assistant/domain"

type AnalyzeLyricsResponse struct {
	Success  bool             `json:"success"`
	Analysis *domain.Analysis `json:"analysis,omitempty"`
	Message  string           `json:"message,omitempty"`
}
