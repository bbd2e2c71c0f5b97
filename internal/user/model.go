package user

import "time"

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	// Referencia opaca a la cuenta del pool. Cognito es la fuente de verdad
	// de credenciales; esta tabla solo guarda el perfil.
	CognitoID string    `gorm:"column:cognito_id" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
