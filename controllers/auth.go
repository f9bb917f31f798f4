// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"acme-dashboard-backend/repository"
	"acme-dashboard-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	users *repository.UserRepository
}

func NewAuthController(users *repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// Login validates the form fields, checks the credentials and issues a
// session token. Wrong password and unknown user deliberately collapse to the
// same generic message.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if fieldErrs := utils.ValidateLoginForm(input.Email, input.Password); fieldErrs != nil {
		utils.RespondWithFieldErrors(c, http.StatusUnprocessableEntity, fieldErrs,
			"Incompleted Submission. Failed to login.")
		return
	}

	email := strings.TrimSpace(input.Email)
	user, err := ac.users.FindByEmail(email)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials. Failed to login.")
		return
	}

	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		log.Error().Err(err).Msg("generate token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	if err := ac.users.TouchLastLogin(user.ID); err != nil {
		log.Warn().Err(err).Msg("update last login")
	}

	expiryHours := 24
	maxAge := expiryHours * 3600

	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)

	c.Header("Location", "/dashboard")
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Logout terminates the session by expiring the cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)

	c.Header("Location", "/")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	id, err := parseUserID(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid user ID")
		return
	}

	user, err := ac.users.FindByID(id)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

func parseUserID(v interface{}) (uuid.UUID, error) {
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, errors.New("user id claim is not a string")
	}
	return uuid.Parse(s)
}
