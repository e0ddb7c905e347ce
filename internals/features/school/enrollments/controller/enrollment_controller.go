// file: internals/features/school/enrollments/controller/enrollment_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/enrollments/dto"
	"schoolku_backend/internals/features/school/enrollments/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	Service   *service.EnrollmentService
	Validator *validator.Validate
}

func NewEnrollmentController(svc *service.EnrollmentService, v *validator.Validate) *EnrollmentController {
	return &EnrollmentController{Service: svc, Validator: v}
}

// POST /api/a/enrollments
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.EnrollRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}

	row, err := ctl.Service.Enroll(c.UserContext(), schoolID, service.EnrollInput{
		StudentID:      req.StudentID,
		ClassID:        req.ClassID,
		AcademicYearID: req.AcademicYearID,
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Student enrolled", dto.FromModel(row))
}

// PATCH /api/a/enrollments/:id/withdraw
func (ctl *EnrollmentController) Withdraw(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	enrollmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid enrollment id")
	}
	row, err := ctl.Service.Withdraw(c.UserContext(), schoolID, enrollmentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Enrollment withdrawn", dto.FromModel(row))
}

// GET /api/u/classes/:id/enrollments
func (ctl *EnrollmentController) ListByClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}
	rows, err := ctl.Service.ListByClass(c.UserContext(), schoolID, classID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out := make([]*dto.EnrollmentResponseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/u/students/:id/enrollments
func (ctl *EnrollmentController) ListByStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}
	rows, err := ctl.Service.ListByStudent(c.UserContext(), schoolID, studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out := make([]*dto.EnrollmentResponseDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}
