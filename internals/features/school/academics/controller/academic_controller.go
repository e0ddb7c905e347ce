// file: internals/features/school/academics/controller/academic_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/academics/dto"
	"schoolku_backend/internals/features/school/academics/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AcademicController struct {
	Service   *service.AcademicService
	Validator *validator.Validate
}

func NewAcademicController(svc *service.AcademicService, v *validator.Validate) *AcademicController {
	return &AcademicController{Service: svc, Validator: v}
}

/* ==========================================
   Academic years
========================================== */

// POST /api/a/academic-years
func (ctl *AcademicController) CreateYear(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.AcademicYearCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	year := req.ToModel()
	if err := ctl.Service.CreateYear(c.UserContext(), schoolID, year); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Academic year created", dto.YearFromModel(year))
}

// GET /api/u/academic-years
func (ctl *AcademicController) ListYears(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	years, err := ctl.Service.ListYears(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	out := make([]*dto.AcademicYearResponseDTO, 0, len(years))
	for i := range years {
		out = append(out, dto.YearFromModel(&years[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/u/academic-years/current
func (ctl *AcademicController) CurrentYear(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	year, err := ctl.Service.CurrentYear(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.YearFromModel(year))
}

// PATCH /api/a/academic-years/:id/current
func (ctl *AcademicController) SetCurrentYear(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	yearID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid academic year id")
	}
	year, err := ctl.Service.SetCurrentYear(c.UserContext(), schoolID, yearID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Current academic year set", dto.YearFromModel(year))
}

/* ==========================================
   Terms
========================================== */

// POST /api/a/terms
func (ctl *AcademicController) CreateTerm(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.TermCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &req); err != nil {
		return err
	}
	req.Normalize()

	term := req.ToModel()
	if err := ctl.Service.CreateTerm(c.UserContext(), schoolID, term); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Term created", dto.TermFromModel(term))
}

// GET /api/u/terms/current
func (ctl *AcademicController) CurrentTerm(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	term, err := ctl.Service.CurrentTerm(c.UserContext(), schoolID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.TermFromModel(term))
}

// PATCH /api/a/terms/:id/current
func (ctl *AcademicController) SetCurrentTerm(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetActiveSchoolID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	termID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid term id")
	}
	term, err := ctl.Service.SetCurrentTerm(c.UserContext(), schoolID, termID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Current term set", dto.TermFromModel(term))
}

// PATCH /api/a/terms/:id/lock and /unlock
func (ctl *AcademicController) SetTermLock(locked bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, err := helperAuth.GetActiveSchoolID(c)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		termID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid term id")
		}
		term, err := ctl.Service.SetTermLock(c.UserContext(), schoolID, termID, locked)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		msg := "Term unlocked"
		if locked {
			msg = "Term locked"
		}
		return helper.JsonUpdated(c, msg, dto.TermFromModel(term))
	}
}
