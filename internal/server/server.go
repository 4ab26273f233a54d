package server

import (
	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/metrics"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

// Dependencies are the collaborators NewApp wires into routes.
type Dependencies struct {
	Config          *config.Config
	QuestionService service.QuestionService
	CategoryService service.CategoryService
	QuizService     service.QuizService
	DB              handler.Pinger
	// Cache is nil when Redis is not configured.
	Cache   domain.Cache
	Metrics *metrics.Metrics
}

// NewApp builds the fiber application with middleware and every route registered.
func NewApp(deps Dependencies) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		AppName:      "trivia-api",
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(middleware.RequestLogger(deps.Metrics))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
		MaxAge:       300,
	}))

	questionHandler := handler.NewQuestionHandler(deps.QuestionService)
	categoryHandler := handler.NewCategoryHandler(deps.CategoryService, deps.QuestionService)
	quizHandler := handler.NewQuizHandler(deps.QuizService)
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Cache)

	app.Get("/questions", questionHandler.ListQuestions)
	app.Post("/questions", questionHandler.PostQuestions)
	app.Post("/questions/search", questionHandler.SearchQuestions)
	app.Delete("/questions/:id", questionHandler.DeleteQuestion)

	app.Get("/categories", categoryHandler.GetAllCategories)
	app.Get("/categories/:id/questions", categoryHandler.GetQuestionsByCategory)

	app.Post("/quizzes", quizHandler.PlayQuiz)

	app.Get("/healthz", healthHandler.Health)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
	if cfg.Server.EnableSwagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	return app
}
