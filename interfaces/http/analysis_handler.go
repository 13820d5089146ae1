package http

import (
	"net/http"

	"github.com/argha-paul/youtube-adInsights/domain/dto"
	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/usecase"

	"github.com/gin-gonic/gin"
)

// IAnalysisHandler exposes the analysis primitives directly, without the
// fetch-and-persist pipeline around them
type IAnalysisHandler interface {
	DetectSponsorship(ctx *gin.Context)
	ComputeEngagement(ctx *gin.Context)
	AnalyzeSentiment(ctx *gin.Context)
}

// AnalysisHandler implements the direct analysis HTTP handlers
type AnalysisHandler struct {
	reportUseCase usecase.IReportUseCase
}

// NewAnalysisHandler creates a new analysis handler instance
func NewAnalysisHandler(reportUseCase usecase.IReportUseCase) IAnalysisHandler {
	return &AnalysisHandler{
		reportUseCase: reportUseCase,
	}
}

// DetectSponsorship handles POST /api/analysis/sponsorship
func (h *AnalysisHandler) DetectSponsorship(ctx *gin.Context) {
	var req dto.SponsorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	info := h.reportUseCase.DetectSponsorship(req.Description, req.Tags)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": info})
}

// ComputeEngagement handles POST /api/analysis/engagement
func (h *AnalysisHandler) ComputeEngagement(ctx *gin.Context) {
	var req dto.EngagementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	metrics := h.reportUseCase.ComputeEngagement(req.ViewCount, req.LikeCount, req.CommentCount)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": metrics})
}

// AnalyzeSentiment handles POST /api/analysis/sentiment
func (h *AnalysisHandler) AnalyzeSentiment(ctx *gin.Context) {
	var req dto.SentimentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	comments := make([]model.YouTubeComment, 0, len(req.Comments))
	for _, c := range req.Comments {
		comments = append(comments, model.YouTubeComment{Text: c.Text})
	}

	summary := h.reportUseCase.AnalyzeSentiment(comments)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
