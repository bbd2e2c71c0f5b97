package user

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/storage"
)

var validExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
	".gif": true, ".webp": true,
}

// UploadProfilePicture POST /api/users/me/picture
// Sube la imagen a S3 y guarda la URL resultante en el perfil. Si había una
// imagen anterior se elimina del bucket.
func UploadProfilePicture(c *gin.Context) {
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

	file, header, err := c.Request.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No picture provided"})
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !validExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file extension"})
		return
	}

	if currentUser.ProfilePicture != "" {
		oldKey := "avatars/" + filepath.Base(currentUser.ProfilePicture)
		// Un fallo aquí no bloquea la subida nueva.
		_ = storage.DeleteFromS3(oldKey)
	}

	filename := fmt.Sprintf("user_%s%s", currentUser.ID, ext)
	url, err := storage.UploadToS3(file, filename, header.Header.Get("Content-Type"), "avatars")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "details": err.Error()})
		return
	}

	updated, err := UpdateProfile(currentUser.ID, ProfilePatch{ProfilePicture: &url})
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}
