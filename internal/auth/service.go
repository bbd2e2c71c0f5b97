package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/cognito"
	"github.com/dmoralesg/MicroTweet-Back/internal/database"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
	"github.com/dmoralesg/MicroTweet-Back/internal/user"
)

// Register da de alta la cuenta: unicidad local primero (sin tocar Cognito en
// ese camino), después el alta en el proveedor, y solo con el sub en mano se
// inserta la fila local.
func Register(username, email, password string) (*user.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperror.Validation("Missing required fields")
	}

	taken, err := user.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("Username already exists")
	}
	taken, err = user.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("Email already exists")
	}

	cognitoID, err := cognito.SignUp(username, email, password)
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		CognitoID: cognitoID,
		CreatedAt: time.Now(),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(newUser).Error
	})
	if err != nil {
		// La cuenta ya existe en Cognito y aquí no hay fila local. No se
		// compensa con un borrado remoto; queda registrado para operación.
		logs.LogJSON("ERROR", "Local insert failed after Cognito signup", map[string]interface{}{
			"error":     err.Error(),
			"username":  username,
			"cognitoID": cognitoID,
		})
		return nil, err
	}

	return newUser, nil
}

// CheckExists es el paso 1 del login en dos fases: identificar al usuario
// antes de pedirle la contraseña.
func CheckExists(identifier string) (bool, error) {
	_, err := user.ByIdentifier(identifier)
	if err == nil {
		return true, nil
	}
	if apperror.Is(err, apperror.KindNotFound) {
		return false, nil
	}
	return false, err
}

// LoginWithPassword es el paso 2: resuelve el identificador al username
// canónico y autentica contra Cognito con un secret hash recién calculado.
func LoginWithPassword(identifier, password string) (*cognito.Tokens, error) {
	found, err := user.ByIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return cognito.Authenticate(found.Username, password)
}

// Login clásico en una fase, mantenido por compatibilidad.
func Login(username, password string) (*cognito.Tokens, error) {
	if _, err := user.ByUsername(username); err != nil {
		return nil, err
	}
	return cognito.Authenticate(username, password)
}

func Confirm(username, code string) error {
	if _, err := user.ByUsername(username); err != nil {
		return err
	}
	return cognito.Confirm(username, code)
}

func Refresh(refreshToken, username string) (*cognito.Tokens, error) {
	if _, err := user.ByUsername(username); err != nil {
		return nil, err
	}
	return cognito.Refresh(refreshToken, username)
}
