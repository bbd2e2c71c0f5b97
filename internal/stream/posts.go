package stream

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
)

const maxContentLength = 140

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return apperror.Validation("El contenido del post no puede estar vacío")
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return apperror.Validation("El post no puede exceder 140 caracteres")
	}
	return nil
}

func CreatePost(content, userID, username string) (*Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	newPost := &Post{
		ID:        uuid.New().String(),
		Content:   content,
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}

	if err := database.DB.Create(newPost).Error; err != nil {
		return nil, err
	}
	return newPost, nil
}

func AllPosts() ([]Post, error) {
	posts := []Post{}
	if err := database.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func PostsByUser(userID string) ([]Post, error) {
	posts := []Post{}
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func PostByID(id string) (*Post, error) {
	var found Post
	if err := database.DB.First(&found, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Post no encontrado")
		}
		return nil, err
	}
	return &found, nil
}

func DeletePost(id, callerID string) error {
	found, err := PostByID(id)
	if err != nil {
		return err
	}

	if found.UserID != callerID {
		return apperror.Forbidden("No tienes permiso para eliminar este post")
	}

	return database.DB.Delete(found).Error
}
