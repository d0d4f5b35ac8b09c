package main

import (
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"HABITS_COLLECTION",
		"SESSIONS_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
	initRedis()
}

// initRedis wires the session cache and token blacklist when REDIS_URL is
// set. Both are optional; without Redis the app runs against Mongo alone
// and logout falls back to session deactivation only.
func initRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, running without session cache and token blacklist")
		return
	}

	if err := services.InitSessionCache(redisURL); err != nil {
		log.Printf("Session cache unavailable: %v", err)
	}
	if err := services.InitTokenBlacklist(redisURL); err != nil {
		log.Printf("Token blacklist unavailable: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	userRepo := repository.GetUserRepo(utils.MongoClient)
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)

	userService := &usecase.UserService{UsersRepo: userRepo}
	habitsService := usecase.NewHabitsService(habitsRepo)

	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", handler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, userService)
			})
			user.POST("/change-password", func(c *gin.Context) {
				handler.ChangePasswordHandler(c, userService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteUserHandler(c, userService, habitsService, sessionRepo)
			})
			user.GET("/stats", func(c *gin.Context) {
				handler.UserStatsHandler(c, userService, habitsService, sessionRepo)
			})
		}

		twoFactor := protected.Group("/user/2fa")
		{
			twoFactor.POST("/setup", func(c *gin.Context) {
				handler.Setup2FAHandler(c, userService)
			})
			twoFactor.POST("/enable", func(c *gin.Context) {
				handler.Enable2FAHandler(c, userService)
			})
			twoFactor.POST("/disable", func(c *gin.Context) {
				handler.Disable2FAHandler(c, userService)
			})
			twoFactor.POST("/recovery-codes", func(c *gin.Context) {
				handler.RegenerateRecoveryCodesHandler(c, userService)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, sessionRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.EndSessionHandler(c, sessionRepo)
			})
		}

		habits := protected.Group("/habits")
		{
			habits.GET("", func(c *gin.Context) {
				handler.GetUserHabitsHandler(c, habitsService)
			})
			habits.POST("", func(c *gin.Context) {
				handler.CreateHabitHandler(c, habitsService)
			})
			habits.GET("/:id", func(c *gin.Context) {
				handler.GetHabitHandler(c, habitsService)
			})
			habits.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteHabitHandler(c, habitsService)
			})
			habits.POST("/:id/toggle", func(c *gin.Context) {
				handler.ToggleCompletionHandler(c, habitsService)
			})
			habits.GET("/:id/progress", func(c *gin.Context) {
				handler.HabitProgressHandler(c, habitsService)
			})
		}

		overview := protected.Group("/overview")
		overview.Use(middleware.CacheControlMiddleware("30"))
		{
			overview.GET("/day", func(c *gin.Context) {
				handler.DayOverviewHandler(c, habitsService)
			})
			overview.GET("/week", func(c *gin.Context) {
				handler.WeekOverviewHandler(c, habitsService)
			})
			overview.GET("/month", func(c *gin.Context) {
				handler.MonthOverviewHandler(c, habitsService)
			})
			overview.GET("/sprint", func(c *gin.Context) {
				handler.SprintOverviewHandler(c, habitsService)
			})
			overview.GET("/year", func(c *gin.Context) {
				handler.YearOverviewHandler(c, habitsService)
			})
		}
	}

	return router
}

func main() {
	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Failed to create indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
