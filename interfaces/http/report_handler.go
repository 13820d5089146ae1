package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/argha-paul/youtube-adInsights/domain/dto"
	"github.com/argha-paul/youtube-adInsights/domain/repository"
	"github.com/argha-paul/youtube-adInsights/usecase"

	"github.com/gin-gonic/gin"
)

// IReportHandler defines the report HTTP handlers
type IReportHandler interface {
	GenerateVideoReport(ctx *gin.Context)
	GenerateChannelReports(ctx *gin.Context)
	ListReports(ctx *gin.Context)
	GetReport(ctx *gin.Context)
	GetStats(ctx *gin.Context)
}

// ReportHandler implements the report HTTP handlers
type ReportHandler struct {
	reportUseCase usecase.IReportUseCase
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportUseCase usecase.IReportUseCase) IReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
	}
}

// GenerateVideoReport handles POST /api/reports/videos/:videoId
func (h *ReportHandler) GenerateVideoReport(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	if videoID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Video ID is required"})
		return
	}

	result := h.reportUseCase.GenerateReport(ctx.Request.Context(), videoID)
	if !result.Success {
		status := http.StatusInternalServerError
		if result.Error == "Video not found" {
			status = http.StatusNotFound
		}
		ctx.JSON(status, result)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GenerateChannelReports handles POST /api/reports/channels/:channelId
func (h *ReportHandler) GenerateChannelReports(ctx *gin.Context) {
	channelID := ctx.Param("channelId")
	if channelID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Channel ID is required"})
		return
	}

	result := h.reportUseCase.GenerateChannelReports(ctx.Request.Context(), channelID)
	if !result.Success {
		status := http.StatusInternalServerError
		switch result.Error {
		case "Channel not found", "No videos found for channel":
			status = http.StatusNotFound
		}
		ctx.JSON(status, result)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(ctx *gin.Context) {
	req := dto.ReportListRequest{
		ChannelID: ctx.Query("channel_id"),
	}
	if v := ctx.Query("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			req.Page = page
		}
	}
	if v := ctx.Query("page_size"); v != "" {
		if pageSize, err := strconv.Atoi(v); err == nil {
			req.PageSize = pageSize
		}
	}

	response, err := h.reportUseCase.ListReports(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list reports",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": response})
}

// GetReport handles GET /api/reports/:videoId
func (h *ReportHandler) GetReport(ctx *gin.Context) {
	videoID := ctx.Param("videoId")
	if videoID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Video ID is required"})
		return
	}

	report, err := h.reportUseCase.GetReport(ctx.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get report",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

// GetStats handles GET /api/reports/stats
func (h *ReportHandler) GetStats(ctx *gin.Context) {
	stats, err := h.reportUseCase.GetStats(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get report stats",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
