package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"pulse/globals"
	"pulse/middleware"
	"pulse/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler checks the env-configured admin credentials and issues a
// short-lived token for the admin API. There is no self-service signup;
// operators set ADMIN_USER and ADMIN_PASSWORD_HASH (bcrypt) at deploy time.
func loginHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	adminUser := os.Getenv("ADMIN_USER")
	if adminUser == "" {
		adminUser = "admin"
	}

	storedHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if storedHash == "" {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "Admin login is not configured")
		return
	}

	if creds.Username != adminUser {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(creds.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	// Generate JWT
	claims := &middleware.Claims{
		Username: creds.Username,
		UserID:   creds.Username,
		Role:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    utils.M{"token": tokenString},
	})
}
