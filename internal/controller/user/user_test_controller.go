package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockprep/internal/controller"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/middleware"
	"github.com/lshigami/mockprep/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService service.UserTestService
	attemptService  service.AttemptService
}

func NewUserTestController(uts service.UserTestService, as service.AttemptService) *UserTestController {
	return &UserTestController{userTestService: uts, attemptService: as}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Reloads the catalog of published tests. If the reload fails the previously loaded tests are returned with an error notification.
// @Tags User - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CatalogResponse
// @Failure 401 {object} dto.CatalogResponse "Token rejected by the catalog"
// @Failure 502 {object} dto.CatalogResponse "Catalog backend unavailable"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context(), middleware.Token(ctx))
	if err != nil {
		ctx.JSON(controller.StatusFor(err), dto.CatalogResponse{
			Tests:        tests,
			Notification: &dto.Notification{Level: "error", Message: catalogFailureMessage(err)},
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.CatalogResponse{Tests: tests})
}

func catalogFailureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuth):
		return "Your session is no longer valid. Please log in again."
	case errors.Is(err, domain.ErrNetwork):
		return "Could not load mock tests. Please try again later."
	default:
		return "Loading mock tests was interrupted."
	}
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get a published test with its questions. The answer key is not included.
// @Tags User - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.ParseTestID(ctx)
	if !ok {
		return
	}
	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to get test details")
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// StartTestAttempt godoc
// @Summary (User) Start a timed attempt
// @Description Starts an attempt of a published test. The caller must not have another attempt open.
// @Tags User - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "ID of the Test being attempted"
// @Success 201 {object} dto.AttemptStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "An attempt is already open"
// @Router /tests/{test_id}/attempts [post]
func (c *UserTestController) StartTestAttempt(ctx *gin.Context) {
	testID, ok := controller.ParseTestID(ctx)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(ctx)

	state, err := c.attemptService.StartAttempt(ctx.Request.Context(), userID, testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to start attempt")
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetUserTestAttempts godoc
// @Summary (User) Get all attempts by the caller for a specific test
// @Description Retrieve a list of summary information for all finished attempts the caller made on a test.
// @Tags User - Tests & Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/my-attempts [get]
func (c *UserTestController) GetUserTestAttempts(ctx *gin.Context) {
	testID, ok := controller.ParseTestID(ctx)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(ctx)

	attempts, err := c.attemptService.GetUserAttemptsForTest(ctx.Request.Context(), testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("User GetUserTestAttempts: Service error")
		controller.RespondError(ctx, err, "Failed to retrieve attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
