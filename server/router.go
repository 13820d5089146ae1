package server

import (
	"net/http"
	"time"

	httpHandler "github.com/argha-paul/youtube-adInsights/interfaces/http"
	"github.com/argha-paul/youtube-adInsights/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	reportHandler httpHandler.IReportHandler,
	analysisHandler httpHandler.IAnalysisHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "http://localhost:3000", "https://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Auth())

	reports := api.Group("/reports")
	{
		reports.POST("/videos/:videoId", reportHandler.GenerateVideoReport)
		reports.POST("/channels/:channelId", reportHandler.GenerateChannelReports)
		reports.GET("", reportHandler.ListReports)
		reports.GET("/stats", reportHandler.GetStats)
		reports.GET("/:videoId", reportHandler.GetReport)
	}

	analysis := api.Group("/analysis")
	{
		analysis.POST("/sponsorship", analysisHandler.DetectSponsorship)
		analysis.POST("/engagement", analysisHandler.ComputeEngagement)
		analysis.POST("/sentiment", analysisHandler.AnalyzeSentiment)
	}

	return router
}
