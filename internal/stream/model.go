package stream

import "time"

type Stream struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Posts       []Post    `gorm:"foreignKey:StreamID;constraint:OnDelete:CASCADE" json:"posts"`
}

// Post es la copia propia de este servicio, sin relación con la tabla del
// posts-service. Un post puede existir sin stream asignado (StreamID nulo).
type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	StreamID  *string   `gorm:"index" json:"-"`
	Content   string    `gorm:"size:140;not null" json:"content"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	Username  string    `gorm:"not null" json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
