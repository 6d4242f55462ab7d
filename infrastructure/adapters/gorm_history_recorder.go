package adapters

import (
	"context"

	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/domain"
	"gorm.io/gorm"
)

type analysisHistoryRow struct {
	ID             uint   `gorm:"primaryKey;autoIncrement;column:id"`
	InputLyrics    string `gorm:"column:input_lyrics;type:text"`
	OutputAnalysis string `gorm:"column:output_analysis;type:text"`
	GenderUsed     string `gorm:"column:gender_used;type:varchar(16)"`
	AudioFileURL   string `gorm:"column:audio_file_url;type:varchar(512)"`
}

func (analysisHistoryRow) TableName() string {
	return "analysis_history"
}

type gormHistoryRecorder struct {
	db     *gorm.DB
	logger outbound.LoggerPort
}

// NewGormHistoryRecorder migrates the analysis_history table and returns the
// insert-only recorder.
func NewGormHistoryRecorder(db *gorm.DB, logger outbound.LoggerPort) (outbound.HistoryRecorderPort, error) {
	if err := db.AutoMigrate(&analysisHistoryRow{}); err != nil {
		return nil, err
	}
	return &gormHistoryRecorder{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHistoryRecorder) Record(ctx context.Context, record domain.HistoryRecord) error {
	row := analysisHistoryRow{
		InputLyrics:    record.InputLyrics,
		OutputAnalysis: record.OutputAnalysis,
		GenderUsed:     record.GenderUsed,
		AudioFileURL:   record.AudioFileURL,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error(err, "Failed to insert analysis history row")
		return err
	}

	r.logger.InfoWithFields("Saved analysis history", map[string]interface{}{
		"id": row.ID,
	})

	return nil
}
