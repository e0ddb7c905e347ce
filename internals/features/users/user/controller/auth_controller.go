// file: internals/features/users/user/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/users/user/dto"
	"schoolku_backend/internals/features/users/user/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	authmw "schoolku_backend/internals/middlewares/auth"
)

type AuthController struct {
	Service   *service.AuthService
	Blacklist *authmw.TokenBlacklist
	Validator *validator.Validate
}

func NewAuthController(svc *service.AuthService, blacklist *authmw.TokenBlacklist, v *validator.Validate) *AuthController {
	return &AuthController{Service: svc, Blacklist: blacklist, Validator: v}
}

/* ==========================================
   POST /api/auth/register
========================================== */

func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	user, err := ctl.Service.Register(c.UserContext(), req.SchoolSlug, req.UserName, req.UserEmail, req.UserPassword)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Account registered", dto.FromModel(user))
}

/* ==========================================
   POST /api/auth/login
========================================== */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	user, token, err := ctl.Service.Login(c.UserContext(), req.UserEmail, req.UserPassword)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Login success", dto.LoginResponseDTO{
		AccessToken: token,
		User:        dto.FromModel(user),
	})
}

/* ==========================================
   POST /api/auth/logout
========================================== */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if ctl.Blacklist != nil {
		if err := ctl.Blacklist.Revoke(c.UserContext(), raw, 24*time.Hour); err != nil {
			return helper.JsonFromError(c, err)
		}
	}
	return helper.JsonOK(c, "Logged out", nil)
}

/* ==========================================
   GET /api/u/me
========================================== */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	principal, err := helperAuth.BuildPrincipal(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", principal)
}
