package stream

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
)

func Create(name, description string) (*Stream, error) {
	if name == "" {
		return nil, apperror.Validation("El nombre del stream es obligatorio")
	}

	var existing Stream
	err := database.DB.First(&existing, "name = ?", name).Error
	if err == nil {
		return nil, apperror.Conflict("Ya existe un stream con ese nombre")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newStream := &Stream{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
		Posts:       []Post{},
	}

	if err := database.DB.Create(newStream).Error; err != nil {
		// La comprobación previa no es atómica: un INSERT concurrente con el
		// mismo nombre llega hasta el índice único y también es un conflicto.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("Ya existe un stream con ese nombre")
		}
		return nil, err
	}
	return newStream, nil
}

func ByName(name string) (*Stream, error) {
	var found Stream
	err := database.DB.Preload("Posts", newestFirst).First(&found, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Stream no encontrado")
		}
		return nil, err
	}
	if found.Posts == nil {
		found.Posts = []Post{}
	}
	return &found, nil
}

func All() ([]Stream, error) {
	streams := []Stream{}
	if err := database.DB.Preload("Posts", newestFirst).Find(&streams).Error; err != nil {
		return nil, err
	}
	for i := range streams {
		if streams[i].Posts == nil {
			streams[i].Posts = []Post{}
		}
	}
	return streams, nil
}

// newestFirst ordena los posts embebidos de cada stream del más reciente al
// más antiguo.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}
