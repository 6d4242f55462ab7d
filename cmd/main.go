package main

import (
	"context"
	"fmt"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/cocoWang-19/AI-Lyric-Assistant/application/ports/outbound"
	"github.com/cocoWang-19/AI-Lyric-Assistant/application/services"
	"github.com/cocoWang-19/AI-Lyric-Assistant/config"
	"github.com/cocoWang-19/AI-Lyric-Assistant/infrastructure/adapters"
	"github.com/cocoWang-19/AI-Lyric-Assistant/infrastructure/gin_interface/controllers"
	"github.com/cocoWang-19/AI-Lyric-Assistant/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Best-effort, like the original dotenv loading; deployments set real env.
	_ = godotenv.Load()

	geminiConfig := config.GetGeminiConfig()
	ttsConfig := config.GetTtsConfig()
	storageConfig := config.GetStorageConfig()
	serverConfig := config.GetServerConfig()

	dbConfig, err := config.GetDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get database config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	zeroLogger.InfoWithFields("Configuration summary", map[string]interface{}{
		"gcp_project":           geminiConfig.ProjectID,
		"model":                 geminiConfig.Model,
		"storage_provider":      storageConfig.Provider,
		"bucket_configured":     storageConfig.Bucket != "",
		"gemini_key_configured": geminiConfig.ApiKey != "",
	})

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	db, err := gorm.Open(mysql.Open(dbConfig.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to access the underlying sql.DB")
	}
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	lyricsAnalyzer := adapters.NewGeminiLyricsAnalyzer(contentFetcher, geminiConfig, zeroLogger)
	speechSynthesizer := adapters.NewGoogleTtsSynthesizer(contentFetcher, ttsConfig, zeroLogger)

	var artifactStore outbound.ArtifactStorePort
	switch storageConfig.Provider {
	case config.StorageProviderS3:
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		artifactStore = adapters.NewS3ArtifactStore(s3.New(sess), storageConfig, zeroLogger)
	default:
		gcsClient, err := storage.NewClient(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create GCS client")
		}
		artifactStore = adapters.NewGcsArtifactStore(gcsClient, storageConfig, zeroLogger)
	}

	historyRecorder, err := adapters.NewGormHistoryRecorder(db, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate the analysis_history table")
	}

	lyricsPipeline := services.NewLyricsPipeline(zeroLogger, workerPool,
		lyricsAnalyzer, speechSynthesizer, artifactStore, historyRecorder)

	lyricsController := controllers.NewLyricsController(zeroLogger, lyricsPipeline)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	router.StaticFile("/", filepath.Join(serverConfig.StaticDir, "index.html"))
	router.Static("/static", serverConfig.StaticDir)

	lyricsController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
