package stream

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
)

type postRequest struct {
	Content string `json:"content"`
}

// CreateStreamPost POST /api/posts (tabla propia del stream-service)
func CreateStreamPost(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}
	username := c.GetString("username")

	var input postRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Petición inválida"})
		return
	}

	newPost, err := CreatePost(input.Content, userID, username)
	if err != nil {
		status := apperror.Status(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Error al crear el post: " + message
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, newPost)
}

// GetAllStreamPosts GET /api/posts y GET /api/posts/public
func GetAllStreamPosts(c *gin.Context) {
	posts, err := AllPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetStreamPostsByUser GET /api/posts/user/:userId
func GetStreamPostsByUser(c *gin.Context) {
	posts, err := PostsByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetMyStreamPosts GET /api/posts/my-posts
func GetMyStreamPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	posts, err := PostsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetStreamPostByID GET /api/posts/:id
func GetStreamPostByID(c *gin.Context) {
	found, err := PostByID(c.Param("id"))
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// DeleteStreamPost DELETE /api/posts/:id
func DeleteStreamPost(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	if err := DeletePost(c.Param("id"), userID); err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post eliminado exitosamente"})
}
