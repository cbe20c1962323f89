package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emala/emala-backend/internal/domain/entities"
	"github.com/emala/emala-backend/internal/domain/errors"
	"github.com/emala/emala-backend/internal/domain/repositories"
	"github.com/emala/emala-backend/internal/handlers/dto"
	"github.com/emala/emala-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista usuários
// @Summary      List users
// @Description  Returns all users ordered by creation date (newest first), with a count. Passwords are never included.
// @Tags         users
// @Produce      json
// @Param        role  query  string  false  "Filter by role"  Enums(admin, user, manager)
// @Success      200  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := repositories.UserFilters{}

	if roleParam := c.Query("role"); roleParam != "" {
		role := entities.Role(roleParam)
		if !role.IsValid() {
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, []dto.FieldError{
				{Field: "role", Message: dto.T(c, "validation.role.invalid")},
			}))
			return
		}
		filters.Role = &role
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.fetching_users"), err))
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(len(users), dto.ToUserResponses(users)))
}

// GetUser busca um usuário por ID
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.T(c, "error.user_not_found")))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.fetching_user"), err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("", dto.ToUserResponse(user)))
}

// CreateUser cria um novo usuário
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateUserRequest  true  "New user"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrors := dto.TranslateValidationErrors(c, err, nil)
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, fieldErrors))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.T(c, "error.email_already_exists")))
		case errs.Is(err, entities.ErrInvalidUserData):
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, nil))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.creating_user"), err))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.T(c, "user.created"), dto.ToUserResponse(user)))
}

// UpdateUser aplica uma atualização parcial a um usuário
// @Summary      Update user
// @Description  Only supplied fields change; a supplied password is re-hashed. id and created_at are immutable.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path  int                    true  "User ID"
// @Param        request  body  dto.UpdateUserRequest  true  "Fields to change"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrors := dto.TranslateValidationErrors(c, err, nil)
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, fieldErrors))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.T(c, "error.user_not_found")))
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.T(c, "error.email_already_exists")))
		case errs.Is(err, entities.ErrInvalidUserData):
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, nil))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.updating_user"), err))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.T(c, "user.updated"), dto.ToUserResponse(user)))
}

// DeleteUser remove um usuário pelo id. Id inexistente também responde
// sucesso: o gateway não distingue e a API espelha isso.
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "User ID"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewGatewayErrorResponse(dto.T(c, "error.deleting_user"), err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.T(c, "user.deleted"), nil))
}

// parseID valida o path param :id como inteiro; em falha já responde 400
func (h *UserHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(c, []dto.FieldError{
			{Field: "id", Message: dto.T(c, "validation.id.integer")},
		}))
		return 0, false
	}
	return uint(id), true
}
