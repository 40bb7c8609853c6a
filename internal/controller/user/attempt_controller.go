package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/controller"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/middleware"
	"github.com/lshigami/mockprep/internal/service"
)

// AttemptController drives the caller's current attempt.
type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(as service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: as}
}

// GetCurrent godoc
// @Summary (User) Current attempt state
// @Description Status, answers and timer of the caller's attempt. An attempt whose time is up is expired before it is returned.
// @Tags User - Current Attempt
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AttemptStateDTO
// @Router /attempts/current [get]
func (c *AttemptController) GetCurrent(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)
	state, err := c.attemptService.GetCurrentAttempt(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get current attempt")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// AnswerQuestion godoc
// @Summary (User) Answer a question
// @Description Stores the answer for the question at index, replacing any earlier answer.
// @Tags User - Current Attempt
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param index path int true "Zero-based question index"
// @Param answer body dto.AnswerRequest true "Answer value"
// @Success 200 {object} dto.AttemptStateDTO
// @Failure 400 {object} dto.ErrorResponse "Index out of range or invalid body"
// @Failure 409 {object} dto.ErrorResponse "No attempt in progress"
// @Router /attempts/current/answers/{index} [put]
func (c *AttemptController) AnswerQuestion(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question index"})
		return
	}
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	userID, _ := middleware.UserID(ctx)

	state, err := c.attemptService.AnswerQuestion(ctx.Request.Context(), userID, index, req.Value)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to record answer")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// Submit godoc
// @Summary (User) Submit the current attempt
// @Tags User - Current Attempt
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ResultDTO
// @Failure 409 {object} dto.ErrorResponse "No attempt in progress"
// @Router /attempts/current/submit [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)
	result, err := c.attemptService.SubmitAttempt(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit attempt")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary (User) Result of the finished attempt
// @Description Score and per-question review. Set explain=true for AI explanations of missed questions.
// @Tags User - Current Attempt
// @Produce json
// @Security BearerAuth
// @Param explain query bool false "Include explanations"
// @Success 200 {object} dto.ResultDTO
// @Failure 409 {object} dto.ErrorResponse "Attempt not finished"
// @Router /attempts/current/result [get]
func (c *AttemptController) GetResult(ctx *gin.Context) {
	explain, _ := strconv.ParseBool(ctx.DefaultQuery("explain", "false"))
	userID, _ := middleware.UserID(ctx)

	result, err := c.attemptService.GetResult(ctx.Request.Context(), userID, explain)
	if err != nil {
		controller.RespondError(ctx, err, "Result is not available")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Reset godoc
// @Summary (User) Discard the finished attempt
// @Description Returns the session to idle so a new attempt can start.
// @Tags User - Current Attempt
// @Security BearerAuth
// @Success 204
// @Failure 409 {object} dto.ErrorResponse "Attempt still in progress"
// @Router /attempts/current [delete]
func (c *AttemptController) Reset(ctx *gin.Context) {
	userID, _ := middleware.UserID(ctx)
	if err := c.attemptService.ResetAttempt(ctx.Request.Context(), userID); err != nil {
		controller.RespondError(ctx, err, "Failed to reset attempt")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetAttemptDetails godoc
// @Summary (User) Get a past attempt
// @Tags User - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.ResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /test-attempts/{attempt_id} [get]
func (c *AttemptController) GetAttemptDetails(ctx *gin.Context) {
	attemptID, err := uuid.Parse(ctx.Param("attempt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}
	userID, _ := middleware.UserID(ctx)

	result, err := c.attemptService.GetAttemptDetails(ctx.Request.Context(), userID, attemptID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get attempt")
		return
	}
	ctx.JSON(http.StatusOK, result)
}
