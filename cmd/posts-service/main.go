package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dmoralesg/MicroTweet-Back/internal/config"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
	"github.com/dmoralesg/MicroTweet-Back/internal/middleware"
	"github.com/dmoralesg/MicroTweet-Back/internal/post"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL no definido")
	}

	logs.Init("posts-service")
	database.Connect(cfg.DBUrl, &post.Post{})

	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	posts := api.Group("/posts")

	// Lectura pública
	posts.GET("", middleware.OptionalAuthMiddleware(), post.GetAllPosts)
	posts.GET("/public", post.GetAllPosts)
	posts.GET("/user/:userId", post.GetPostsByUser)
	posts.GET("/count/user/:userId", post.GetPostCountByUser)
	posts.GET("/:id", post.GetPostByID)
	// Like sin autenticación: incrementa sin más
	posts.POST("/:id/like", post.LikePost)

	// Mutaciones con identidad del token
	posts.POST("", middleware.AuthMiddleware(), post.CreatePost)
	posts.GET("/my-posts", middleware.AuthMiddleware(), post.GetMyPosts)
	posts.PUT("/:id", middleware.AuthMiddleware(), post.UpdatePost)
	posts.DELETE("/:id", middleware.AuthMiddleware(), post.DeletePost)

	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
