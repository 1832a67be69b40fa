package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-desk/services"
	"hotel-desk/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. The fixed admin pair yields an admin
// session; any other non-empty username yields a regular one.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	token, user, err := ac.Auth.Login(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}

// Guest handles POST /api/auth/guest, starting a non-admin "Guest" session.
func (ac *AuthController) Guest(c *gin.Context) {
	token, user, err := ac.Auth.Guest()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "guest login failed")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
}
