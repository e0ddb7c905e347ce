// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/databases/tenantdb"
	academicsCtl "schoolku_backend/internals/features/school/academics/controller"
	academicsSvc "schoolku_backend/internals/features/school/academics/service"
	classesCtl "schoolku_backend/internals/features/school/classes/controller"
	classesSvc "schoolku_backend/internals/features/school/classes/service"
	enrollCtl "schoolku_backend/internals/features/school/enrollments/controller"
	enrollSvc "schoolku_backend/internals/features/school/enrollments/service"
	peopleCtl "schoolku_backend/internals/features/school/people/controller"
	peopleSvc "schoolku_backend/internals/features/school/people/service"
	schoolCtl "schoolku_backend/internals/features/tenancy/school/controller"
	schoolSvc "schoolku_backend/internals/features/tenancy/school/service"
	"schoolku_backend/internals/features/users/rbac"
	rbacCtl "schoolku_backend/internals/features/users/rbac/controller"
	rbacSvc "schoolku_backend/internals/features/users/rbac/service"
	userCtl "schoolku_backend/internals/features/users/user/controller"
	userSvc "schoolku_backend/internals/features/users/user/service"
	"schoolku_backend/internals/middlewares"
	authmw "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/middlewares/authz"
	"schoolku_backend/internals/middlewares/tenant"
	"schoolku_backend/internals/observability"
)

// Deps is everything the router needs, built once in main.
type Deps struct {
	DB        *gorm.DB
	Gateway   *tenantdb.Gateway
	Guard     *rbac.Guard
	Validator *validator.Validate
	JWTSecret string
	Blacklist *authmw.TokenBlacklist
}

// Setup mounts all route groups. Middleware order per group is jwt (when the
// group needs an identity), then tenant resolution, then the permission gate.
func Setup(app *fiber.App, d Deps) {
	schools := schoolSvc.NewSchoolService(d.DB)
	assignments := rbacSvc.NewAssignmentService(d.DB)
	auth := userSvc.NewAuthService(d.DB, assignments, d.JWTSecret)
	academics := academicsSvc.NewAcademicService(d.Gateway)
	classes := classesSvc.NewClassService(d.Gateway)
	people := peopleSvc.NewPeopleService(d.Gateway)
	enrollments := enrollSvc.NewEnrollmentService(d.Gateway)

	authController := userCtl.NewAuthController(auth, d.Blacklist, d.Validator)
	schoolController := schoolCtl.NewSchoolController(schools, d.Validator)
	assignmentController := rbacCtl.NewAssignmentController(assignments, d.Validator)
	academicController := academicsCtl.NewAcademicController(academics, d.Validator)
	classController := classesCtl.NewClassController(classes, d.Validator)
	peopleController := peopleCtl.NewPeopleController(people, d.Validator)
	enrollmentController := enrollCtl.NewEnrollmentController(enrollments, d.Validator)

	jwt := authmw.AuthJWT(authmw.AuthJWTOpts{
		Secret:              d.JWTSecret,
		BlacklistChecker:    d.Blacklist.Checker(),
		AllowCookieFallback: true,
	})
	tenantCtx := tenant.SchoolContext(tenant.SchoolContextOpts{Schools: schools})

	// public
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", observability.MetricsHandler())

	// platform auth
	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	authGroup.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	authGroup.Post("/logout", jwt, authController.Logout)

	// system surface, platform accounts only
	sys := app.Group("/api/s", jwt, authz.RequireSystem())
	sys.Post("/schools", schoolController.Create)
	sys.Get("/schools", schoolController.List)
	sys.Get("/schools/:id", schoolController.ByID)
	sys.Patch("/schools/:id/verify", schoolController.Verify)
	sys.Patch("/schools/:id/suspend", schoolController.Suspend)
	sys.Patch("/schools/:id/reactivate", schoolController.Reactivate)

	// tenant admin surface
	adm := app.Group("/api/a", jwt, tenantCtx)
	adm.Post("/role-assignments", authz.Require(d.Guard, rbac.PermManageUsers, true), assignmentController.AssignRole)
	adm.Get("/users/:id/roles", authz.Require(d.Guard, rbac.PermViewUsers, false), assignmentController.RolesOf)

	adm.Post("/academic-years", authz.Require(d.Guard, rbac.PermManageCalendar, true), academicController.CreateYear)
	adm.Patch("/academic-years/:id/current", authz.Require(d.Guard, rbac.PermManageCalendar, true), academicController.SetCurrentYear)
	adm.Post("/terms", authz.Require(d.Guard, rbac.PermManageCalendar, true), academicController.CreateTerm)
	adm.Patch("/terms/:id/current", authz.Require(d.Guard, rbac.PermManageCalendar, true), academicController.SetCurrentTerm)
	adm.Patch("/terms/:id/lock", authz.Require(d.Guard, rbac.PermManageCalendar, true), academicController.SetTermLock(true))
	adm.Patch("/terms/:id/unlock", authz.Require(d.Guard, rbac.PermManageCalendar, true), academicController.SetTermLock(false))

	adm.Post("/classes", authz.Require(d.Guard, rbac.PermManageClasses, true), classController.Create)
	adm.Put("/classes/:id/teacher", authz.Require(d.Guard, rbac.PermManageClasses, true), classController.ReassignTeacher)

	adm.Post("/staff", authz.Require(d.Guard, rbac.PermManageStaff, true), peopleController.CreateStaff)
	adm.Post("/students", authz.Require(d.Guard, rbac.PermManageStudents, true), peopleController.CreateStudent)

	adm.Post("/enrollments", authz.Require(d.Guard, rbac.PermManageEnrollments, true), enrollmentController.Enroll)
	adm.Patch("/enrollments/:id/withdraw", authz.Require(d.Guard, rbac.PermManageEnrollments, true), enrollmentController.Withdraw)

	// tenant read surface
	usr := app.Group("/api/u", jwt, tenantCtx)
	usr.Get("/me", authController.Me)

	usr.Get("/academic-years", authz.Require(d.Guard, rbac.PermViewCalendar, false), academicController.ListYears)
	usr.Get("/academic-years/current", authz.Require(d.Guard, rbac.PermViewCalendar, false), academicController.CurrentYear)
	usr.Get("/terms/current", authz.Require(d.Guard, rbac.PermViewCalendar, false), academicController.CurrentTerm)

	usr.Get("/classes", authz.Require(d.Guard, rbac.PermViewClasses, false), classController.List)
	usr.Get("/classes/:id", authz.Require(d.Guard, rbac.PermViewClasses, false), classController.ByID)
	usr.Get("/classes/:id/teacher", authz.Require(d.Guard, rbac.PermViewClasses, false), classController.CurrentTeacher)
	usr.Get("/classes/:id/teacher/history", authz.Require(d.Guard, rbac.PermViewClasses, false), classController.AssignmentHistory)
	usr.Get("/classes/:id/enrollments", authz.Require(d.Guard, rbac.PermViewEnrollments, false), enrollmentController.ListByClass)

	usr.Get("/staff", authz.Require(d.Guard, rbac.PermViewStaff, false), peopleController.ListStaff)
	usr.Get("/students", authz.Require(d.Guard, rbac.PermViewStudents, false), peopleController.ListStudents)
	usr.Get("/students/:id/enrollments", authz.Require(d.Guard, rbac.PermViewEnrollments, false), enrollmentController.ListByStudent)
}
