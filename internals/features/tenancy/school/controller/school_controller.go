// file: internals/features/tenancy/school/controller/school_controller.go
package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/tenancy/school/dto"
	"schoolku_backend/internals/features/tenancy/school/model"
	"schoolku_backend/internals/features/tenancy/school/service"
	helper "schoolku_backend/internals/helpers"
)

// SchoolController is the platform surface for the tenant lifecycle. Routes
// mounting it sit behind the system-role gate, never behind a tenant.
type SchoolController struct {
	Service   *service.SchoolService
	Validator *validator.Validate
}

func NewSchoolController(svc *service.SchoolService, v *validator.Validate) *SchoolController {
	return &SchoolController{Service: svc, Validator: v}
}

// POST /api/s/schools
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.SchoolCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	school := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), &school); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "School registered", dto.FromModel(&school))
}

// GET /api/s/schools
func (ctl *SchoolController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Service.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out := make([]dto.SchoolResponseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/s/schools/:id
func (ctl *SchoolController) ByID(c *fiber.Ctx) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid school id")
	}
	school, err := ctl.Service.ByID(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromModel(school))
}

// PATCH /api/s/schools/:id/verify
func (ctl *SchoolController) Verify(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Verify, "School verified")
}

// PATCH /api/s/schools/:id/suspend
func (ctl *SchoolController) Suspend(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Suspend, "School suspended")
}

// PATCH /api/s/schools/:id/reactivate
func (ctl *SchoolController) Reactivate(c *fiber.Ctx) error {
	return ctl.transition(c, ctl.Service.Reactivate, "School reactivated")
}

func (ctl *SchoolController) transition(
	c *fiber.Ctx,
	fn func(ctx context.Context, schoolID uuid.UUID) (*model.SchoolModel, error),
	message string,
) error {
	schoolID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid school id")
	}
	school, err := fn(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, message, dto.FromModel(school))
}
