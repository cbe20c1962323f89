package http

import (
	errs "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emala/emala-backend/internal/domain/errors"
	"github.com/emala/emala-backend/internal/handlers/dto"
	"github.com/emala/emala-backend/internal/services"
)

// AuthHandler lida com requisições de autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// No login o campo email também carrega o usuário de demonstração,
// então a mensagem de obrigatoriedade é diferente da do CRUD
var loginMessageOverrides = map[string]string{
	"email.required": "validation.login.identifier_required",
}

// Login autentica um usuário e emite um token
// @Summary      Login
// @Description  Authenticates by email and password and returns the user plus a signed token. Missing user and wrong password yield the same message.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  dto.LoginRequest  true  "Credentials"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrors := dto.TranslateValidationErrors(c, err, loginMessageOverrides)
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, fieldErrors))
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.T(c, "error.invalid_credentials")))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.during_login"), err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.T(c, "auth.login_success"), dto.LoginResponse{
		User:  dto.ToUserResponse(user),
		Token: token,
	}))
}

// Me retorna o usuário dono do token apresentado
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token := extractBearerToken(c.GetHeader("Authorization"))

	user, err := h.authService.CurrentUser(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.T(c, "error.not_authenticated")))
		case errs.Is(err, errors.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.T(c, "error.invalid_token")))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.fetching_user"), err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("", dto.ToUserResponse(user)))
}

// Logout encerra a sessão do cliente. Sempre sucede: não há sessão no
// servidor para invalidar.
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	_ = h.authService.Logout(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.T(c, "auth.logout_success"), nil))
}

// extractBearerToken extrai o token do header "Authorization: Bearer <t>"
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
