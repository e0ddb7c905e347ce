// file: internals/features/school/people/controller/people_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"schoolku_backend/internals/features/school/people/dto"
	"schoolku_backend/internals/features/school/people/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type PeopleController struct {
	Service   *service.PeopleService
	Validator *validator.Validate
}

func NewPeopleController(svc *service.PeopleService, v *validator.Validate) *PeopleController {
	return &PeopleController{Service: svc, Validator: v}
}

// POST /api/a/staff
func (ctl *PeopleController) CreateStaff(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.StaffCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	staff := req.ToModel()
	if err := ctl.Service.CreateStaff(c.UserContext(), schoolID, staff); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Staff created", staff)
}

// GET /api/u/staff
func (ctl *PeopleController) ListStaff(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Service.ListStaff(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/a/students
func (ctl *PeopleController) CreateStudent(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.StudentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	student := req.ToModel()
	if err := ctl.Service.CreateStudent(c.UserContext(), schoolID, student); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Student created", student)
}

// GET /api/u/students
func (ctl *PeopleController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out, err := ctl.Service.ListStudents(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", out)
}
