// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ClassController struct {
	Service   *service.ClassService
	Validator *validator.Validate
}

func NewClassController(svc *service.ClassService, v *validator.Validate) *ClassController {
	return &ClassController{Service: svc, Validator: v}
}

// POST /api/a/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.ClassCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	class := req.ToModel()
	if err := ctl.Service.Create(c.UserContext(), schoolID, class); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Class created", class)
}

// GET /api/u/classes
func (ctl *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classes, err := ctl.Service.List(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", classes)
}

// GET /api/u/classes/:id
func (ctl *ClassController) ByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}
	class, err := ctl.Service.ByID(c.UserContext(), schoolID, classID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", class)
}

// PUT /api/a/classes/:id/teacher
func (ctl *ClassController) ReassignTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}
	var req dto.ReassignTeacherDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}

	next, err := ctl.Service.ReassignTeacher(c.UserContext(), schoolID, classID, req.StaffID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher reassigned", dto.AssignmentFromModel(next))
}

// GET /api/u/classes/:id/teacher
func (ctl *ClassController) CurrentTeacher(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}
	cur, err := ctl.Service.CurrentTeacher(c.UserContext(), schoolID, classID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.AssignmentFromModel(cur))
}

// GET /api/u/classes/:id/teacher/history
func (ctl *ClassController) AssignmentHistory(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}
	rows, err := ctl.Service.AssignmentHistory(c.UserContext(), schoolID, classID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out := make([]*dto.TeacherAssignmentResponseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.AssignmentFromModel(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}
