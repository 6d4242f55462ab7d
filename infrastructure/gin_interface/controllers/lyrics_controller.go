package controllers

import (
	"errors"

	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/inbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
	"github.com/cocoWang-19/AI-Lyric-Assistant/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
)

// Every pipeline failure is a 500; only the message distinguishes a
// configuration problem from an upstream one.
const (
	missingCredentialMessage = "配置錯誤：Gemini API Key 未定義。"
	missingBucketMessage     = "配置錯誤：GCS_BUCKET_NAME 環境變數未設置，無法儲存音頻。"
	analysisFailedMessage    = "AI 分析失敗，請檢查 API Key、網路或 Prompt 格式要求。"
)

type LyricsController interface {
	AnalyzeLyrics(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type lyricsController struct {
	logger   outbound.LoggerPort
	pipeline inbound.LyricsPipelinePort
}

func NewLyricsController(logger outbound.LoggerPort, pipeline inbound.LyricsPipelinePort) LyricsController {
	return &lyricsController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (l *lyricsController) AnalyzeLyrics(c *gin.Context) {
	var req dto.AnalyzeLyricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.AbortWithError(400, err); err != nil {
			l.logger.Error(err, "failed to abort with error")
		}
		return
	}

	analysis, err := l.pipeline.AnalyzeLyrics(c.Request.Context(), inbound.AnalyzeLyricsParams{
		Lyrics: req.Lyrics,
		Gender: req.Gender,
	})
	if err != nil {
		c.JSON(500, dto.AnalyzeLyricsResponse{
			Success: false,
			Message: failureMessage(err),
		})
		return
	}

	c.JSON(200, dto.AnalyzeLyricsResponse{
		Success:  true,
		Analysis: analysis,
	})
}

func (l *lyricsController) RegisterRoutes(g *gin.Engine) {
	g.POST("/lyrics", l.AnalyzeLyrics)
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return missingCredentialMessage
	case errors.Is(err, domain.ErrStorageNotConfigured):
		return missingBucketMessage
	default:
		return analysisFailedMessage
	}
}
