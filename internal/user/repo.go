package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
)

func ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := database.DB.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := database.DB.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ByID(id string) (*User, error) {
	var found User
	if err := database.DB.First(&found, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return &found, nil
}

func ByUsername(username string) (*User, error) {
	var found User
	if err := database.DB.First(&found, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return &found, nil
}

func ByEmail(email string) (*User, error) {
	var found User
	if err := database.DB.First(&found, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return &found, nil
}

// ByIdentifier resuelve un identificador libre (username o email) al registro
// local, probando primero como username.
func ByIdentifier(identifier string) (*User, error) {
	found, err := ByUsername(identifier)
	if err == nil {
		return found, nil
	}
	if !apperror.Is(err, apperror.KindNotFound) {
		return nil, err
	}
	return ByEmail(identifier)
}

func All() ([]User, error) {
	users := []User{}
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ProfilePatch distingue "campo ausente" (nil) de "campo enviado": solo los
// campos presentes se escriben.
type ProfilePatch struct {
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
}

func UpdateProfile(id string, patch ProfilePatch) (*User, error) {
	found, err := ByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.ProfilePicture != nil {
		updates["profile_picture"] = *patch.ProfilePicture
	}

	if len(updates) == 0 {
		return found, nil
	}

	if err := database.DB.Model(found).Updates(updates).Error; err != nil {
		return nil, err
	}
	return found, nil
}
