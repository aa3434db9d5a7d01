package connection

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authcontroller "taskflow/controller/auth"
	"taskflow/controller/dashboard"
	projectcontroller "taskflow/controller/project"
	statuscontroller "taskflow/controller/status"
	taskcontroller "taskflow/controller/task"
	"taskflow/services"
	"taskflow/store"
)

// StartServer wires the Firestore store into the services and mounts every
// controller. Blocks until the listener stops.
func StartServer() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	fb, err := FBConnection(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize firestore client", zap.Error(err))
	}
	defer fb.Close()

	documents := store.NewFirestoreStore(fb, log)
	authService := services.NewAuthService(documents, log)
	projectService := services.NewProjectService(documents, log)
	membershipService := services.NewMembershipService(documents, log)
	taskService := services.NewTaskService(documents, log)
	statusService := services.NewStatusFeedService(documents, log)

	router := gin.Default()
	router.Use(corsConfig())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "api is running"})
	})

	authcontroller.SignUpController(router, authService)
	authcontroller.SignInController(router, authService)
	authcontroller.SignOutController(router, authService)
	authcontroller.MeController(router, authService)
	authcontroller.ProfileController(router, authService)

	projectcontroller.CreateProjectController(router, projectService, authService)
	projectcontroller.GetProjectController(router, projectService)
	projectcontroller.UpdateProjectController(router, projectService)
	projectcontroller.InviteController(router, membershipService)
	projectcontroller.JoinController(router, membershipService, authService)

	taskcontroller.TaskController(router, taskService, authService)
	statuscontroller.StatusController(router, statusService, authService)
	dashboard.StreamController(router, documents, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func corsConfig() gin.HandlerFunc {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		return cors.Default()
	}
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}
