package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/argha-paul/youtube-adInsights/domain/repository"
	"github.com/argha-paul/youtube-adInsights/infrastructure/cache"
	geminiclient "github.com/argha-paul/youtube-adInsights/infrastructure/clients/gemini"
	youtubeclient "github.com/argha-paul/youtube-adInsights/infrastructure/clients/youtube"
	"github.com/argha-paul/youtube-adInsights/infrastructure/configuration"
	"github.com/argha-paul/youtube-adInsights/infrastructure/logger"
	"github.com/argha-paul/youtube-adInsights/infrastructure/persistence"
	"github.com/argha-paul/youtube-adInsights/infrastructure/pubsub"
	"github.com/argha-paul/youtube-adInsights/infrastructure/servicebus"
	httpHandler "github.com/argha-paul/youtube-adInsights/interfaces/http"
	"github.com/argha-paul/youtube-adInsights/server"
	"github.com/argha-paul/youtube-adInsights/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	// Metadata cache DB: MSSQL in production, otherwise PostgreSQL. Either
	// may be absent; the pipeline runs without the cache.
	var videoCache repository.IVideoCache
	cacheDb, useMssql, err := initiateCacheDatabase()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache database not available - continuing without metadata cache")
	} else if useMssql {
		if err := persistence.EnsureVideoCacheSchemaMSSQL(cacheDb); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring video cache schema (mssql)")
		}
		videoCache = persistence.NewVideoCacheRepositoryMSSQL(cacheDb)
	} else {
		if err := persistence.EnsureVideoCacheSchema(cacheDb); err != nil {
			logger.GetLogger().WithField("error", err).Error("failed ensuring video cache schema")
		}
		videoCache = persistence.NewVideoCacheRepository(cacheDb)
	}

	mongoDb, err := persistence.NewMongoDB(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("MongoDB is required for the report store")
	}
	logger.GetLogger().Info("MongoDB connected successfully")
	reportStore := persistence.NewReportRepository(mongoDb)

	pubSubClient, err := pubsub.NewPubSub(ctx, configuration.C.Pubsub.ProjectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub not available - continuing without Pub/Sub events")
		pubSubClient = nil
	}

	azServiceBusClient, err := servicebus.NewServiceBus(ctx, configuration.C.ServiceBus.Namespace)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Azure Service Bus not available - continuing without Service Bus events")
		azServiceBusClient = nil
	}

	redisClient, err := cache.NewCache(
		ctx,
		fmt.Sprintf("%s:%s", configuration.C.RedisClient.Host, configuration.C.RedisClient.Port),
		configuration.C.RedisClient.Username,
		configuration.C.RedisClient.Password,
	)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without comment cache")
		redisClient = nil
	}

	ytConfig := configuration.C.YouTube
	youtubeClient, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{
		ClientID:     ytConfig.ClientID,
		ClientSecret: ytConfig.ClientSecret,
		RedirectURL:  ytConfig.RedirectURI,
		APIKey:       ytConfig.APIKey,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("YouTube client is required for analysis")
	}

	geminiClient, err := geminiclient.NewGeminiClient(ctx, configuration.C.Gemini.APIKey, configuration.C.Gemini.Model)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Gemini not available - reports will carry degraded insights")
	}

	analysis := configuration.C.Analysis
	detector := usecase.NewSponsorshipDetector(analysis.IndicatorPhrases)
	calculator := usecase.NewEngagementCalculator(analysis.LikeWeight, analysis.CommentWeight)
	analyzer := usecase.NewSentimentAnalyzer(analysis.AdKeywords, analysis.PositiveThreshold, analysis.NegativeThreshold)
	scorer := usecase.NewEffectivenessScorer(analysis.EngagementWeight, analysis.SentimentWeight)
	composer := usecase.NewInsightComposer(geminiClient, analyzer, scorer, analysis.LongFormSeconds)

	reportUC := usecase.NewReportUseCase(youtubeClient, youtubeClient, reportStore, detector, calculator, analyzer, composer).
		WithLimits(ytConfig.MaxComments, ytConfig.BatchSize)
	if videoCache != nil {
		reportUC = reportUC.WithVideoCache(videoCache, time.Duration(analysis.VideoCacheMinutes)*time.Minute)
	}
	if redisClient != nil {
		reportUC = reportUC.WithCommentCache(cache.NewCommentCache(redisClient), time.Duration(analysis.CommentCacheMinutes)*time.Minute)
	}
	if pubSubClient != nil {
		reportUC = reportUC.WithPublisher(pubsub.NewReportEvents(pubSubClient, configuration.C.Pubsub.TopicID))
	}
	if azServiceBusClient != nil {
		reportUC = reportUC.WithPublisher(servicebus.NewReportEvents(azServiceBusClient, configuration.C.ServiceBus.QueueName))
	}

	reportHandler := httpHandler.NewReportHandler(reportUC)
	analysisHandler := httpHandler.NewAnalysisHandler(reportUC)

	router := server.InitiateRouter(reportHandler, analysisHandler)

	// Background channel refresher (simple ticker loop)
	scheduler := configuration.C.Scheduler
	if scheduler.Enabled && scheduler.ChannelID != "" {
		interval := time.Duration(scheduler.IntervalMinutes) * time.Minute
		if interval <= 0 {
			interval = time.Hour
		}
		g.Go(func() error {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
					result := reportUC.GenerateChannelReports(ctx, scheduler.ChannelID)
					logger.GetLogger().WithFields(map[string]interface{}{
						"channelId": scheduler.ChannelID,
						"total":     result.Total,
						"processed": result.Processed,
						"failed":    result.Failed,
					}).Info("Scheduled channel refresh completed")
				}
			}
		})
	}

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateCacheDatabase picks the metadata cache vendor: MSSQL when
// DB_VENDOR=mssql or in production, PostgreSQL otherwise.
func initiateCacheDatabase() (*sql.DB, bool, error) {
	env := os.Getenv("ENV")
	if os.Getenv("DB_VENDOR") == "mssql" || env == "production" || env == "prod" {
		db, err := persistence.NewMSSQLDB()
		if err != nil {
			return nil, true, err
		}
		return db, true, nil
	}
	db, err := persistence.NewPsqlDB()
	if err != nil {
		return nil, false, err
	}
	return db, false, nil
}
