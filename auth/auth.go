// Package auth exchanges the single configured admin credential for a
// signed session token.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"sharee/config"
	"sharee/middleware"
	"sharee/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	cfg   *config.Config
	guard *middleware.AdminGuard
}

func NewHandler(cfg *config.Config, guard *middleware.AdminGuard) *Handler {
	return &Handler{cfg: cfg, guard: guard}
}

// Login checks the credentials against the configured admin pair and on
// success sets the token cookie and returns the token in the body, so both
// the server-rendered admin pages and API clients can use it.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if !h.credentialsMatch(input.Email, input.Password) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Wrong email or password")
		return
	}

	token, err := h.guard.IssueToken()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.guard.TTL().Seconds()),
	})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token})
}

// Logout expires the token cookie. The token itself stays valid until its
// expiry; there is no server-side session state to revoke.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func (h *Handler) credentialsMatch(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(h.cfg.AdminEmail)) == 1

	var passwordOK bool
	if h.cfg.AdminPasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
	}
	return emailOK && passwordOK
}
