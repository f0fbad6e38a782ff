package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/middleware"
	"github.com/worldscribe/worldscribe/internal/services"
	"github.com/worldscribe/worldscribe/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles identity routes
type AuthHandler struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Store *assets.Store
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsBody true "Username and password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentialsBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	token, err := services.Register(h.DB, h.Cfg, body.Username, body.Password)
	if err != nil {
		return serviceError(c, err, "auth.register")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token})
}

// Login handles POST /api/auth/login
// @Summary Log in and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body credentialsBody true "Username and password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentialsBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	token, err := services.Login(h.DB, h.Cfg, body.Username, body.Password)
	if err != nil {
		return serviceError(c, err, "auth.login")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// ChangePassword handles PUT /api/auth/password
// @Summary Change the authenticated user's password
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "auth.context")
	}

	var body struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "auth.validation.input")
	}

	token, err := services.ChangePassword(h.DB, h.Cfg, userID, body.OldPassword, body.NewPassword)
	if err != nil {
		return serviceError(c, err, "auth.password")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

// WhoAmI handles GET /api/auth/whoami
// @Summary Identify the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /auth/whoami [get]
func (h *AuthHandler) WhoAmI(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "auth.context")
	}

	username, _ := c.Locals(middleware.CtxUsernameKey).(string)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user_id":  userID,
		"username": username,
	})
}

// DeleteUser handles DELETE /api/auth/user?delete_content=true|false
// @Summary Delete the authenticated user
// @Description With delete_content=true every owned world is cascade-deleted first; without it a user that still owns content is refused.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param delete_content query bool false "Cascade-delete owned content"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/user [delete]
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := actingUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "auth.context")
	}

	deleteContent := c.QueryBool("delete_content", false)
	if err := services.DeleteUser(h.DB, h.Store, userID, deleteContent); err != nil {
		return serviceError(c, err, "auth.delete")
	}

	return utils.MessageResponse(c, "User deleted")
}
