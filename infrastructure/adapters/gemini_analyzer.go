package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/config"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

// The instruction template the model is held to: strict JSON, Chinese-only
// 情感, and 語音風格 restricted to the ten labels the style mapper knows. Lyrics
// are interpolated without escaping.
const analysisPromptTemplate = `你是一位專業的音樂理論專家。你的首要任務是輸出嚴格的 JSON 格式。
**輸出規則：'情感' 欄位只允許使用中文描述，嚴禁出現任何英文翻譯或括號。**
JSON 必須包含以下所有欄位：
1. '情感'
2. 'BPM'
3. '和弦'
4. '語音風格'（限以下之一：
['平靜', '悲傷', '緊張', '充滿希望', '敘事', '歡快', '友善', '憤怒', '莊嚴','浪漫'])
請分析以下歌詞："%s"`

type geminiGenerateRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiLyricsAnalyzer struct {
	ContentFetcher
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

func NewGeminiLyricsAnalyzer(contentFetcher ContentFetcher, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.LyricsAnalyzerPort {
	return &geminiLyricsAnalyzer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		geminiConfig:   geminiConfig,
	}
}

func (g *geminiLyricsAnalyzer) Analyze(ctx context.Context, lyrics string) (*domain.Analysis, error) {
	if g.geminiConfig.ApiKey == "" {
		g.logger.Error(domain.ErrMissingCredential, "GEMINI_API_KEY is not set")
		return nil, domain.ErrMissingCredential
	}

	req, err := g.getRequest(ctx, lyrics)
	if err != nil {
		g.logger.Error(err, "Failed to construct the Gemini HTTP request")
		return nil, err
	}

	payload, err := g.FetchContent(req)
	if err != nil {
		return nil, err
	}

	text, err := g.extractText(payload)
	if err != nil {
		return nil, err
	}

	var analysis domain.Analysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &analysis); err != nil {
		g.logger.ErrorWithFields(err, "Model response is not valid JSON", map[string]interface{}{
			"payload": text,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedAnalysis, err)
	}
	if err := analysis.Validate(); err != nil {
		g.logger.ErrorWithFields(err, "Model response is missing required fields", map[string]interface{}{
			"payload": text,
		})
		return nil, err
	}

	return &analysis, nil
}

func (g *geminiLyricsAnalyzer) getRequest(ctx context.Context, lyrics string) (*http.Request, error) {
	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: fmt.Sprintf(analysisPromptTemplate, lyrics)}},
			},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      g.geminiConfig.Temperature,
			ResponseMimeType: "application/json",
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	apiUrl := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.geminiConfig.ApiUrl, g.geminiConfig.Model, g.geminiConfig.ApiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", apiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func (g *geminiLyricsAnalyzer) extractText(payload []byte) (string, error) {
	var res geminiGenerateResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		g.logger.ErrorWithFields(err, "Failed to unmarshal the Gemini response envelope", map[string]interface{}{
			"payload": string(payload),
		})
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedAnalysis, err)
	}
	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		g.logger.ErrorWithFields(nil, "Gemini response contains no candidates", map[string]interface{}{
			"payload": string(payload),
		})
		return "", fmt.Errorf("%w: empty candidates", domain.ErrMalformedAnalysis)
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
