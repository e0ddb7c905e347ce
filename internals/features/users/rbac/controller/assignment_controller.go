// file: internals/features/users/rbac/controller/assignment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/rbac/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AssignmentController struct {
	Service   *service.AssignmentService
	Validator *validator.Validate
}

func NewAssignmentController(svc *service.AssignmentService, v *validator.Validate) *AssignmentController {
	return &AssignmentController{Service: svc, Validator: v}
}

type assignRoleRequest struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	RoleName string    `json:"role_name" validate:"required,min=2,max=50"`
}

// POST /api/a/role-assignments
func (ctl *AssignmentController) AssignRole(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req assignRoleRequest
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}

	row, err := ctl.Service.AssignRole(c.UserContext(), schoolID, req.UserID, req.RoleName)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Role assigned", row)
}

// GET /api/a/users/:id/roles
func (ctl *AssignmentController) RolesOf(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	roles, err := ctl.Service.RolesOf(c.UserContext(), schoolID, userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"user_id": userID, "roles": roles})
}
