package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockprep/internal/controller"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/middleware"
	"github.com/lshigami/mockprep/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(as service.AuthService) *AuthController {
	return &AuthController{authService: as}
}

// Register godoc
// @Summary Register a student account
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	user, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Registration failed")
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Login failed")
		return
	}
	ctx.JSON(http.StatusOK, token)
}

// Logout godoc
// @Summary Log out and revoke the current token
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	if err := c.authService.Logout(ctx.Request.Context(), claims); err != nil {
		controller.RespondError(ctx, err, "Logout failed")
		return
	}
	ctx.Status(http.StatusNoContent)
}
