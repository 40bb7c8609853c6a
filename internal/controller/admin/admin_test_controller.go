package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockprep/internal/controller"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Admin) Create a new test
// @Description Admin creates a new draft test with its questions. For multiple-choice questions the correct answer must be one of the options.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO true "Test creation data including all questions"
// @Success 201 {object} dto.AdminTestDTO "Draft test created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Str("title", req.Title).Msg("Admin CreateTest: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create test", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// PublishTest godoc
// @Summary (Admin) Publish a test
// @Description Makes a draft test visible in the student catalog.
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.AdminTestDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{test_id}/publish [post]
func (c *AdminTestController) PublishTest(ctx *gin.Context) {
	testID, ok := controller.ParseTestID(ctx)
	if !ok {
		return
	}
	resp, err := c.adminTestService.PublishTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to publish test")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
