package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/trannghia/learnhub/config"
	"github.com/trannghia/learnhub/database"
	_ "github.com/trannghia/learnhub/docs" // Swagger docs - auto-generated
	adminctrl "github.com/trannghia/learnhub/internal/controller/admin"
	authctrl "github.com/trannghia/learnhub/internal/controller/auth"
	studentctrl "github.com/trannghia/learnhub/internal/controller/student"
	teacherctrl "github.com/trannghia/learnhub/internal/controller/teacher"
	"github.com/trannghia/learnhub/internal/auth"
	"github.com/trannghia/learnhub/internal/logger"
	"github.com/trannghia/learnhub/internal/middleware"
	"github.com/trannghia/learnhub/internal/model"
	"github.com/trannghia/learnhub/internal/repository"
	"github.com/trannghia/learnhub/internal/service"
	"github.com/trannghia/learnhub/internal/storage"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title LearnHub API
// @version 1.0
// @description School learning platform: course content, attendance, progress tracking, exams and feedback for students, teachers and admins.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			storage.NewFileStore,
		),

		fx.Provide(
			repository.NewAdminRepository,
			repository.NewStudentRepository,
			repository.NewTeacherRepository,
			repository.NewCourseRepository,
			repository.NewMaterialRepository,
			repository.NewRecordedClassRepository,
			repository.NewLiveClassRepository,
			repository.NewAttendanceRepository,
			repository.NewProgressRepository,
			repository.NewExamRepository,
			repository.NewExamAttemptRepository,
			repository.NewExamResultRepository,
			repository.NewStudentAnswerRepository,
			repository.NewFeedbackRepository,
		),

		fx.Provide(
			service.NewEnrollmentService,
			service.NewAuthService,
			service.NewCourseService,
			service.NewAdminService,
			service.NewContentService,
			service.NewAttendanceService,
			service.NewProgressService,
			service.NewExamService,
			service.NewFeedbackService,
			service.NewDashboardService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			studentctrl.NewStudentController,
			teacherctrl.NewTeacherController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the route tree and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authController *authctrl.AuthController,
	studentController *studentctrl.StudentController,
	teacherController *teacherctrl.TeacherController,
	adminController *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")

	// Public routes
	api.GET("/courses", authController.Courses)
	api.POST("/register/student", authController.RegisterStudent)
	api.POST("/register/teacher", authController.RegisterTeacher)
	api.POST("/login", authController.Login)
	api.POST("/admin/login", authController.AdminLogin)
	api.POST("/change-password", authController.ChangePassword)

	studentGroup := api.Group("/student", middleware.RequireAuth(cfg), middleware.RequireRole(auth.RoleStudent))
	{
		studentGroup.GET("/dashboard", studentController.Dashboard)
		studentGroup.GET("/profile", studentController.Profile)
		studentGroup.PUT("/profile", studentController.UpdateProfile)
		studentGroup.GET("/courses", studentController.Courses)
		studentGroup.POST("/courses/:id/enroll", studentController.EnrollCourse)
		studentGroup.GET("/materials", studentController.Materials)
		studentGroup.GET("/recorded-classes", studentController.RecordedClasses)
		studentGroup.GET("/live-classes", studentController.LiveClasses)
		studentGroup.GET("/exams", studentController.Exams)
		studentGroup.POST("/exams/:id/attend", studentController.AttendExam)
		studentGroup.POST("/exams/:id/submit", studentController.SubmitExam)
		studentGroup.GET("/exams/:id/result", studentController.ExamResult)
		studentGroup.GET("/progress", studentController.Progress)
		studentGroup.POST("/progress", studentController.UpdateProgress)
		studentGroup.GET("/attendance", studentController.Attendance)
		studentGroup.POST("/feedback", studentController.SubmitFeedback)
		studentGroup.GET("/feedback", studentController.Feedbacks)
	}

	teacherGroup := api.Group("/teacher", middleware.RequireAuth(cfg), middleware.RequireRole(auth.RoleTeacher))
	{
		teacherGroup.GET("/dashboard", teacherController.Dashboard)
		teacherGroup.GET("/profile", teacherController.Profile)
		teacherGroup.PUT("/profile", teacherController.UpdateProfile)
		teacherGroup.GET("/students", teacherController.Students)
		teacherGroup.POST("/materials", teacherController.UploadMaterial)
		teacherGroup.GET("/materials", teacherController.Materials)
		teacherGroup.PUT("/materials/:id", teacherController.UpdateMaterial)
		teacherGroup.DELETE("/materials/:id", teacherController.DeleteMaterial)
		teacherGroup.POST("/recorded-classes", teacherController.UploadRecordedClass)
		teacherGroup.GET("/recorded-classes", teacherController.RecordedClasses)
		teacherGroup.PUT("/recorded-classes/:id", teacherController.UpdateRecordedClass)
		teacherGroup.DELETE("/recorded-classes/:id", teacherController.DeleteRecordedClass)
		teacherGroup.POST("/live-classes", teacherController.CreateLiveClass)
		teacherGroup.GET("/live-classes", teacherController.LiveClasses)
		teacherGroup.PUT("/live-classes/:id", teacherController.UpdateLiveClass)
		teacherGroup.DELETE("/live-classes/:id", teacherController.DeleteLiveClass)
		teacherGroup.POST("/exams", teacherController.CreateExam)
		teacherGroup.GET("/exams", teacherController.Exams)
		teacherGroup.GET("/exams/:id", teacherController.Exam)
		teacherGroup.DELETE("/exams/:id", teacherController.DeleteExam)
		teacherGroup.POST("/attendance", teacherController.MarkAttendance)
		teacherGroup.GET("/progress", teacherController.ProgressTable)
		teacherGroup.GET("/progress/:id", teacherController.StudentProgress)
		teacherGroup.GET("/feedback", teacherController.Feedbacks)
		teacherGroup.POST("/feedback/:id/reply", teacherController.ReplyFeedback)
	}

	adminGroup := api.Group("/admin", middleware.RequireAuth(cfg), middleware.RequireRole(auth.RoleAdmin))
	{
		adminGroup.GET("/dashboard", adminController.Dashboard)
		adminGroup.POST("/courses", adminController.CreateCourse)
		adminGroup.GET("/courses", adminController.Courses)
		adminGroup.PUT("/courses/:id", adminController.UpdateCourse)
		adminGroup.DELETE("/courses/:id", adminController.DeleteCourse)
		adminGroup.POST("/courses/undo", adminController.UndoDeleteCourse)
		adminGroup.GET("/students", adminController.Students)
		adminGroup.GET("/students/:id", adminController.Student)
		adminGroup.PUT("/students/:id", adminController.UpdateStudent)
		adminGroup.DELETE("/students/:id", adminController.DeleteStudent)
		adminGroup.GET("/students/:id/progress", adminController.StudentProgress)
		adminGroup.GET("/materials", adminController.Materials)
		adminGroup.GET("/teachers", adminController.Teachers)
		adminGroup.GET("/teachers/:id", adminController.Teacher)
		adminGroup.PUT("/teachers/:id/status", adminController.SetTeacherStatus)
		adminGroup.DELETE("/teachers/:id", adminController.DeleteTeacher)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LearnHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&model.Admin{},
		&model.Student{},
		&model.Teacher{},
		&model.Course{},
		&model.StudyMaterial{},
		&model.RecordedClass{},
		&model.LiveClass{},
		&model.Attendance{},
		&model.Progress{},
		&model.Exam{},
		&model.Question{},
		&model.ExamAttempt{},
		&model.StudentAnswer{},
		&model.ExamResult{},
		&model.Feedback{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to auto-migrate database")
	}
	log.Info().Msg("Database migration completed")
}
