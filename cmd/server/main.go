package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sekolahku/sekolahku-api/internal/apperror"
	"github.com/sekolahku/sekolahku-api/internal/config"
	"github.com/sekolahku/sekolahku-api/internal/database"
	"github.com/sekolahku/sekolahku-api/internal/handler"
	"github.com/sekolahku/sekolahku-api/internal/repository"
	"github.com/sekolahku/sekolahku-api/internal/router"
	"github.com/sekolahku/sekolahku-api/internal/service"
)

func main() {
	// A missing .env is fine; the defaults cover local development.
	_ = godotenv.Load()

	cfg := config.Load()

	if err := database.Migrate(cfg.DatabaseDSN); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	events := service.NewEventPublisher(cfg.AMQPURL)

	h := router.Handlers{
		Auth:       handler.NewAuthHandler(cfg, repository.NewUserRepo(db)),
		Teacher:    handler.NewTeacherHandler(repository.NewStudentRepo(db)),
		Course:     handler.NewCourseHandler(repository.NewCourseRepo(db)),
		Assignment: handler.NewAssignmentHandler(repository.NewAssignmentRepo(db), events),
		Quiz:       handler.NewQuizHandler(repository.NewQuizRepo(db), events),
		Attendance: handler.NewAttendanceHandler(repository.NewAttendanceRepo(db), events),
		Grade:      handler.NewGradeHandler(repository.NewGradeRepo(db)),
		Admin:      handler.NewAdminHandler(repository.NewAdminRepo(db)),
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperror.HTTPErrorHandler
	e.Use(echomw.Recover())

	router.Register(e, cfg, rdb, h)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
