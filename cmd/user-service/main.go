package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dmoralesg/MicroTweet-Back/internal/auth"
	"github.com/dmoralesg/MicroTweet-Back/internal/cognito"
	"github.com/dmoralesg/MicroTweet-Back/internal/config"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
	"github.com/dmoralesg/MicroTweet-Back/internal/middleware"
	"github.com/dmoralesg/MicroTweet-Back/internal/storage"
	"github.com/dmoralesg/MicroTweet-Back/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL no definido")
	}

	logs.Init("user-service")
	database.Connect(cfg.DBUrl, &user.User{})

	if err := cognito.Init(); err != nil {
		panic(err)
	}
	if err := storage.InitS3(); err != nil {
		panic(err)
	}

	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Todo /api/auth es público: el proveedor decide si las credenciales valen
	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", auth.RegisterUser)
	authRoutes.POST("/verify", auth.VerifyUser)
	authRoutes.POST("/login", auth.LoginUser)
	authRoutes.POST("/login/check", auth.CheckUser)
	authRoutes.POST("/login/authenticate", auth.AuthenticateUser)
	authRoutes.POST("/refresh", auth.RefreshToken)

	users := api.Group("/users")
	users.GET("", user.GetAllUsers)
	users.GET("/username/:username", user.GetUserByUsername)
	users.GET("/me", middleware.AuthMiddleware(), user.GetMe)
	users.POST("/me/picture", middleware.AuthMiddleware(), user.UploadProfilePicture)
	users.GET("/:id", user.GetUserByID)
	users.PUT("/:id", middleware.AuthMiddleware(), user.UpdateUser)

	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
