package post

import "time"

type Post struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"size:140;not null" json:"content"`
	UserID       string    `gorm:"not null;index" json:"userId"`
	Username     string    `gorm:"not null" json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
}
