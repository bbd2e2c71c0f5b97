package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
)

type registrationRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identifierRequest struct {
	Identifier string `json:"identifier"`
}

type passwordRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUser POST /api/auth/register
func RegisterUser(c *gin.Context) {
	var input registrationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	newUser, err := Register(input.Username, input.Email, input.Password)
	if err != nil {
		status := apperror.Status(err)
		if status == http.StatusInternalServerError {
			// El original devolvía 400 para cualquier fallo de registro,
			// incluidos los del proveedor.
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Registration failed", map[string]interface{}{
			"error":    err.Error(),
			"route":    c.FullPath(),
			"username": input.Username,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please check your email to confirm.",
		"user":    newUser,
	})
	logs.LogJSON("INFO", "User registered", map[string]interface{}{
		"route":    c.FullPath(),
		"username": newUser.Username,
	})
}

// CheckUser POST /api/auth/login/check — paso 1 del login en dos fases.
func CheckUser(c *gin.Context) {
	var input identifierRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	exists, err := CheckExists(input.Identifier)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"exists": false,
			"error":  "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exists":     true,
		"message":    "User found. Please enter your password.",
		"identifier": input.Identifier,
	})
}

// AuthenticateUser POST /api/auth/login/authenticate — paso 2.
func AuthenticateUser(c *gin.Context) {
	var input passwordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tokens, err := LoginWithPassword(input.Identifier, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		logs.LogJSON("WARN", "Authentication failed", map[string]interface{}{
			"error":      err.Error(),
			"route":      c.FullPath(),
			"identifier": input.Identifier,
		})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// LoginUser POST /api/auth/login — login clásico en una fase.
func LoginUser(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tokens, err := Login(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// VerifyUser POST /api/auth/verify
func VerifyUser(c *gin.Context) {
	var input struct {
		Username         string `json:"username"`
		ConfirmationCode string `json:"confirmationCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := Confirm(input.Username, input.ConfirmationCode); err != nil {
		status := apperror.Status(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User confirmed successfully"})
}

// RefreshToken POST /api/auth/refresh
func RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
		Username     string `json:"username"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tokens, err := Refresh(input.RefreshToken, input.Username)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}
