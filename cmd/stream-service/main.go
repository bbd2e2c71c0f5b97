package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dmoralesg/MicroTweet-Back/internal/config"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
	"github.com/dmoralesg/MicroTweet-Back/internal/middleware"
	"github.com/dmoralesg/MicroTweet-Back/internal/stream"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.DBUrl == "" {
		panic("DATABASE_URL no definido")
	}

	logs.Init("stream-service")
	database.Connect(cfg.DBUrl, &stream.Stream{}, &stream.Post{})

	r := gin.Default()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	streams := api.Group("/streams")
	streams.POST("", stream.CreateStream)
	streams.GET("", stream.GetAllStreams)
	streams.GET("/public", stream.GetAllStreams)
	streams.GET("/:name", stream.GetStreamByName)

	// Copia propia de posts de este servicio, sin relación con posts-service
	posts := api.Group("/posts")
	posts.GET("", stream.GetAllStreamPosts)
	posts.GET("/public", stream.GetAllStreamPosts)
	posts.GET("/user/:userId", stream.GetStreamPostsByUser)
	posts.GET("/:id", stream.GetStreamPostByID)
	posts.POST("", middleware.AuthMiddleware(), stream.CreateStreamPost)
	posts.GET("/my-posts", middleware.AuthMiddleware(), stream.GetMyStreamPosts)
	posts.DELETE("/:id", middleware.AuthMiddleware(), stream.DeleteStreamPost)

	if err := r.Run(":" + cfg.Port); err != nil {
		logs.LogJSON("FATAL", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
