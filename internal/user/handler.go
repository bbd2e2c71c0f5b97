package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
)

// GetAllUsers GET /api/users
func GetAllUsers(c *gin.Context) {
	users, err := All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID GET /api/users/:id
func GetUserByID(c *gin.Context) {
	found, err := ByID(c.Param("id"))
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetUserByUsername GET /api/users/username/:username
func GetUserByUsername(c *gin.Context) {
	found, err := ByUsername(c.Param("username"))
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// GetMe GET /api/users/me
// La identidad sale del token: el username se resuelve con la cadena de
// claims del middleware.
func GetMe(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to get user info: no username claim"})
		return
	}

	found, err := ByUsername(username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to get user info: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateUser PUT /api/users/:id
// Solo el propio usuario puede tocar su perfil: la identidad del token se
// resuelve a un registro local y se compara con el id de la ruta.
func UpdateUser(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to get user info: no username claim"})
		return
	}

	currentUser, err := ByUsername(username)
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	if currentUser.ID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own profile"})
		logs.LogJSON("WARN", "Profile update rejected", map[string]interface{}{
			"route":    c.FullPath(),
			"userID":   currentUser.ID,
			"targetID": id,
		})
		return
	}

	var patch ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated, err := UpdateProfile(id, patch)
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
	logs.LogJSON("INFO", "Profile updated", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": id,
	})
}
