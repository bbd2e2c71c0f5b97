package post

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
)

type postRequest struct {
	Content string `json:"content"`
}

// CreatePost POST /api/posts
func CreatePost(c *gin.Context) {
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

	newPost, err := Create(input.Content, userID, username)
	if err != nil {
		status := apperror.Status(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Error al crear el post: " + message
		}
		c.JSON(status, gin.H{"error": message})
		logs.LogJSON("WARN", "Post creation failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, newPost)
	logs.LogJSON("INFO", "Post created", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": userID,
		"postID": newPost.ID,
	})
}

// GetAllPosts GET /api/posts y GET /api/posts/public
func GetAllPosts(c *gin.Context) {
	posts, err := All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostsByUser GET /api/posts/user/:userId
func GetPostsByUser(c *gin.Context) {
	posts, err := ByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetMyPosts GET /api/posts/my-posts
func GetMyPosts(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	posts, err := ByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostByID GET /api/posts/:id
func GetPostByID(c *gin.Context) {
	found, err := ByID(c.Param("id"))
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdatePost PUT /api/posts/:id
func UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var input postRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Petición inválida"})
		return
	}

	updated, err := Update(c.Param("id"), input.Content, userID)
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Post update rejected", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
			"postID": c.Param("id"),
		})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePost DELETE /api/posts/:id
func DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	if err := Delete(c.Param("id"), userID); err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Post deletion rejected", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
			"postID": c.Param("id"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post eliminado exitosamente"})
}

// LikePost POST /api/posts/:id/like
// Público a propósito: cualquier caller incrementa el contador.
func LikePost(c *gin.Context) {
	liked, err := Like(c.Param("id"))
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, liked)
}

// GetPostCountByUser GET /api/posts/count/user/:userId
func GetPostCountByUser(c *gin.Context) {
	count, err := CountByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al contar los posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
