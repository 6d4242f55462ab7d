package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/inbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
)

// Empty lyrics are replaced with this sentence rather than rejected.
const placeholderLyrics = "快樂的時光總是過得特別快。"

const unknownGender = "UNKNOWN"

type lyricsPipeline struct {
	logger          outbound.LoggerPort
	workerPool      outbound.TaskDispatcher
	analyzer        outbound.LyricsAnalyzerPort
	synthesizer     outbound.SpeechSynthesizerPort
	artifactStore   outbound.ArtifactStorePort
	historyRecorder outbound.HistoryRecorderPort
}

func NewLyricsPipeline(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher,
	analyzer outbound.LyricsAnalyzerPort, synthesizer outbound.SpeechSynthesizerPort,
	artifactStore outbound.ArtifactStorePort, historyRecorder outbound.HistoryRecorderPort) inbound.LyricsPipelinePort {
	return &lyricsPipeline{
		logger:          logger,
		workerPool:      workerPool,
		analyzer:        analyzer,
		synthesizer:     synthesizer,
		artifactStore:   artifactStore,
		historyRecorder: historyRecorder,
	}
}

// AnalyzeLyrics runs the request pipeline strictly in order: analyze,
// style-map, synthesize, upload, then a best-effort history write that never
// affects the response. Every failing step before the history write aborts
// the request.
func (p *lyricsPipeline) AnalyzeLyrics(ctx context.Context, params inbound.AnalyzeLyricsParams) (*domain.Analysis, error) {
	lyrics := params.Lyrics
	if strings.TrimSpace(lyrics) == "" {
		lyrics = placeholderLyrics
	}

	// Checked before synthesis so no audio is generated that could never be
	// uploaded.
	if err := p.artifactStore.EnsureConfigured(); err != nil {
		p.logger.Error(err, "Object storage bucket is not configured")
		return nil, err
	}

	p.logger.InfoWithFields("Analyzing lyrics", map[string]interface{}{
		"lyrics": truncate(lyrics, 15),
	})

	analysis, err := p.analyzer.Analyze(ctx, lyrics)
	if err != nil {
		return nil, err
	}

	analysis.SynthesisStyle = domain.StyleForEmotion(analysis.VocalStyle)
	p.logger.InfoWithFields("Mapped vocal style", map[string]interface{}{
		"vocalStyle":     analysis.VocalStyle,
		"synthesisStyle": analysis.SynthesisStyle,
	})

	audio, err := p.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:   lyrics,
		Style:  analysis.SynthesisStyle,
		Gender: params.Gender,
	})
	if err != nil {
		return nil, err
	}

	artifact := domain.NewAudioArtifact(audio)
	url, err := p.artifactStore.Save(ctx, artifact)
	if err != nil {
		return nil, err
	}
	analysis.AudioURL = url

	p.recordHistory(lyrics, analysis, params.Gender)

	return analysis, nil
}

// recordHistory is fire-and-forget: a failed insert is logged and the caller
// still gets their analysis and audio URL. This is a documented contract, not
// an oversight.
func (p *lyricsPipeline) recordHistory(lyrics string, analysis *domain.Analysis, gender string) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		p.logger.Error(err, "Failed to serialize analysis for history")
		return
	}
	if gender == "" {
		gender = unknownGender
	}

	record := domain.HistoryRecord{
		InputLyrics:    lyrics,
		OutputAnalysis: string(payload),
		GenderUsed:     gender,
		AudioFileURL:   analysis.AudioURL,
	}

	err = p.workerPool.Submit(func() {
		if err := p.historyRecorder.Record(context.Background(), record); err != nil {
			p.logger.Error(err, "Failed to save analysis history")
		}
	})
	if err != nil {
		p.logger.Error(err, "Failed to submit history write to worker pool")
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
