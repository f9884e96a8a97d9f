package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing
	"github.com/redis/go-redis/v9"

	"github.com/sekolahku/sekolahku-api/internal/config"
	"github.com/sekolahku/sekolahku-api/internal/handler"
	"github.com/sekolahku/sekolahku-api/internal/middleware"
	"github.com/sekolahku/sekolahku-api/internal/model"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Teacher    *handler.TeacherHandler
	Course     *handler.CourseHandler
	Assignment *handler.AssignmentHandler
	Quiz       *handler.QuizHandler
	Attendance *handler.AttendanceHandler
	Grade      *handler.GradeHandler
	Admin      *handler.AdminHandler
}

// Register wires all routes onto the Echo instance.  Everything under /api
// except the login route requires a valid bearer token; role restrictions
// are composed into the routing layer here rather than checked inside
// individual handlers, so an endpoint's required role set is visible in one
// place.  The rdb client may be nil, in which case rate limiting and
// response caching silently disable themselves.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, h Handlers) {
	// Staff role sets.  Headmasters and school admins can see everything
	// their teachers can.
	teacherRoles := []string{model.RoleTeacher, model.RoleAdminSekolah, model.RoleKepalaSekolah}
	adminRoles := []string{model.RoleAdminSekolah, model.RoleAdminLangganan, model.RoleKepalaSekolah}

	cache := middleware.NewDashboardCache(config.LoadCacheConfig(), rdb)
	loginLimit := middleware.NewLoginRateLimit(config.LoadRateLimitConfig(), rdb)

	// Health check for load balancers; no auth.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// The login route is the only unauthenticated API endpoint.  It is the
	// one place worth brute forcing, so it alone is rate limited.
	api.POST("/login", h.Auth.Login, loginLimit)

	// Every other route runs the JWT middleware first.
	auth := api.Group("", middleware.JWTAuth(cfg.JWTSecret))
	auth.GET("/verifikasi-login", h.Auth.VerifySession)

	// Teacher-facing student roster and dashboard.
	teacher := auth.Group("/teacher", middleware.RequireRole(teacherRoles...))
	teacher.GET("/students", h.Teacher.ListStudents)
	teacher.GET("/students/:id", h.Teacher.GetStudent)
	teacher.GET("/dashboard", h.Teacher.Dashboard, cache)

	// Courses: anyone authenticated may browse; only staff may create.
	auth.GET("/courses", h.Course.List)
	auth.GET("/courses/:id", h.Course.Get)
	auth.POST("/courses", h.Course.Create, middleware.RequireRole(teacherRoles...))

	// Assignments and quizzes: browsing and submitting are open to every
	// authenticated role since students submit their own work.
	auth.GET("/assignments", h.Assignment.List)
	auth.GET("/assignments/:id", h.Assignment.Get)
	auth.POST("/assignments/:id/submit", h.Assignment.Submit)

	auth.GET("/quizzes", h.Quiz.List)
	auth.GET("/quizzes/:id", h.Quiz.Get)
	auth.POST("/quizzes/:id/submit", h.Quiz.Submit)

	// Attendance and grades: staff record them, anyone authenticated reads.
	auth.GET("/attendance", h.Attendance.List)
	auth.POST("/attendance", h.Attendance.Mark, middleware.RequireRole(teacherRoles...))
	auth.GET("/attendance/course/:course_id", h.Attendance.ListByCourse)

	auth.GET("/grades", h.Grade.List)
	auth.POST("/grades", h.Grade.Create, middleware.RequireRole(teacherRoles...))
	auth.GET("/grades/student/:student_id", h.Grade.ListByStudent)

	// Administrative listing and dashboard.
	admin := auth.Group("/admin", middleware.RequireRole(adminRoles...))
	admin.GET("/users", h.Admin.ListUsers)
	admin.GET("/dashboard", h.Admin.Dashboard, cache)
}
