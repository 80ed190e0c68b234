package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/jnmnltrnz/workforce-management-api/internal/config"
	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/database"
	"github.com/jnmnltrnz/workforce-management-api/internal/handlers"
	"github.com/jnmnltrnz/workforce-management-api/internal/logger"
	"github.com/jnmnltrnz/workforce-management-api/internal/middleware"
	"github.com/jnmnltrnz/workforce-management-api/internal/repository"
	"github.com/jnmnltrnz/workforce-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	if err := logger.Init(cfg.GinMode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Ensure the built-in admin exists
	if err := database.SeedAdmin(); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	auditRepo := repository.NewAuditRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	assocRepo := repository.NewAssociationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	feedRepo := repository.NewTaskFeedRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	// Initialize services
	auditService := services.NewAuditService(auditRepo)
	accountService := services.NewAccountService(accountRepo, auditService)
	employeeService := services.NewEmployeeService(employeeRepo, accountRepo, documentRepo, assocRepo, auditService)
	projectService := services.NewProjectService(projectRepo, employeeRepo, auditService)
	taskService := services.NewTaskService(taskRepo, projectRepo, auditService)
	feedService := services.NewTaskFeedService(feedRepo, taskRepo, auditService)
	meetingService := services.NewMeetingService(meetingRepo, employeeRepo, auditService)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	feedHandler := handlers.NewTaskFeedHandler(feedService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Workforce Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", accountHandler.Login)
			auth.POST("/logout", middleware.RequireAuth(), accountHandler.Logout)
		}

		// Account routes (protected)
		accounts := api.Group("/accounts")
		accounts.Use(middleware.RequireAuth())
		{
			accounts.GET("", accountHandler.ListAccounts)
			accounts.GET("/:id", accountHandler.GetAccount)
			accounts.PUT("/:id/password", accountHandler.UpdatePassword)
			accounts.POST("/:id/reset-password", accountHandler.ResetPassword)
		}

		// Employee routes (protected)
		employees := api.Group("/employees")
		employees.Use(middleware.RequireAuth())
		{
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)

			employees.POST("/:id/documents", employeeHandler.UploadDocument)
			employees.GET("/:id/documents", employeeHandler.ListDocuments)

			employees.POST("/:id/profile-image", employeeHandler.UploadProfileImage)
			employees.GET("/:id/profile-image", employeeHandler.GetProfileImage)
			employees.DELETE("/:id/profile-image", employeeHandler.DeleteProfileImage)

			employees.GET("/:id/projects", projectHandler.ListProjectsByEmployee)
			employees.GET("/:id/meetings", meetingHandler.ListMeetingsByEmployee)
		}

		// Document routes (protected)
		documents := api.Group("/documents")
		documents.Use(middleware.RequireAuth())
		{
			documents.GET("/:documentId", employeeHandler.DownloadDocument)
			documents.DELETE("/:documentId", employeeHandler.DeleteDocument)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:projectId", projectHandler.GetProject)
			projects.PUT("/:projectId", projectHandler.UpdateProject)
			projects.DELETE("/:projectId", projectHandler.DeleteProject)
			projects.POST("/:projectId/employees", projectHandler.AssignEmployees)
			projects.DELETE("/:projectId/employees", projectHandler.RemoveEmployees)

			projects.POST("/:projectId/tasks", taskHandler.CreateTask)
			projects.GET("/:projectId/tasks", taskHandler.ListTasksByProject)
			projects.GET("/:projectId/tasks/overdue", taskHandler.ListOverdueTasks)
			projects.GET("/:projectId/tasks/due-soon", taskHandler.ListTasksDueSoon)
			projects.GET("/:projectId/tasks/statistics", taskHandler.GetStatistics)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
			tasks.PATCH("/:id/progress", taskHandler.UpdateProgress)
			tasks.PATCH("/:id/state", taskHandler.UpdateStatusAndProgress)
			tasks.POST("/:id/assign", taskHandler.AssignTask)

			tasks.POST("/:id/files", taskHandler.UploadFile)
			tasks.GET("/:id/files", taskHandler.ListFiles)

			tasks.POST("/:id/posts", feedHandler.CreatePost)
			tasks.GET("/:id/posts", feedHandler.ListPosts)
			tasks.GET("/:id/posts/count", feedHandler.CountPosts)
		}

		// Task file routes (protected)
		files := api.Group("/task-files")
		files.Use(middleware.RequireAuth())
		{
			files.GET("/:fileId", taskHandler.DownloadFile)
			files.DELETE("/:fileId", taskHandler.DeleteFile)
		}

		// Feed post routes (protected)
		posts := api.Group("/posts")
		posts.Use(middleware.RequireAuth())
		{
			posts.PUT("/:postId", feedHandler.UpdatePost)
			posts.DELETE("/:postId", feedHandler.DeletePost)
			posts.POST("/:postId/comments", feedHandler.CreateComment)
			posts.GET("/:postId/comments", feedHandler.ListComments)
			posts.GET("/:postId/comments/count", feedHandler.CountComments)
		}

		// Comment routes (protected)
		comments := api.Group("/comments")
		comments.Use(middleware.RequireAuth())
		{
			comments.PUT("/:commentId", feedHandler.UpdateComment)
			comments.DELETE("/:commentId", feedHandler.DeleteComment)
		}

		// Meeting routes (protected)
		meetings := api.Group("/meetings")
		meetings.Use(middleware.RequireAuth())
		{
			meetings.POST("", meetingHandler.CreateMeeting)
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.PUT("/:id", meetingHandler.UpdateMeeting)
			meetings.PATCH("/:id/status", meetingHandler.UpdateMeetingStatus)
			meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
		}

		// Audit trail routes (protected, read-only)
		audit := api.Group("/audit-trails")
		audit.Use(middleware.RequireAuth())
		{
			audit.GET("", auditHandler.ListAuditTrails)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
