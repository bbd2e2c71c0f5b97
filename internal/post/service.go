package post

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

func Create(content, userID, username string) (*Post, error) {
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

func All() ([]Post, error) {
	posts := []Post{}
	if err := database.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func ByUser(userID string) ([]Post, error) {
	posts := []Post{}
	if err := database.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func ByID(id string) (*Post, error) {
	var found Post
	if err := database.DB.First(&found, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Post no encontrado")
		}
		return nil, err
	}
	return &found, nil
}

// Update sustituye el contenido del post. El autor nunca cambia: solo se
// escribe la columna content.
func Update(id, content, callerID string) (*Post, error) {
	found, err := ByID(id)
	if err != nil {
		return nil, err
	}

	if found.UserID != callerID {
		return nil, apperror.Forbidden("No tienes permiso para actualizar este post")
	}

	if err := validateContent(content); err != nil {
		return nil, err
	}

	if err := database.DB.Model(found).Update("content", content).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func Delete(id, callerID string) error {
	found, err := ByID(id)
	if err != nil {
		return err
	}

	if found.UserID != callerID {
		return apperror.Forbidden("No tienes permiso para eliminar este post")
	}

	return database.DB.Delete(found).Error
}

// Like incrementa el contador sin autenticación ni idempotencia. Es un
// read-modify-write: dos likes simultáneos sobre el mismo post pueden
// perderse entre sí.
func Like(id string) (*Post, error) {
	found, err := ByID(id)
	if err != nil {
		return nil, err
	}

	found.LikeCount++
	if err := database.DB.Save(found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func CountByUser(userID string) (int64, error) {
	var count int64
	if err := database.DB.Model(&Post{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
