package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/models"
	"backend/storage"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// adminCredentials reads the single admin account from the environment. When
// no hash is configured a development default is hashed at startup.
func adminCredentials() (email, passwordHash string) {
	email = os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@constructioninnovation.local"
	}
	passwordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	if passwordHash == "" {
		h, err := utils.HashPassword("password")
		if err != nil {
			log.Fatal("Failed to hash default admin password:", err)
		}
		passwordHash = h
		log.Println("ADMIN_PASSWORD_HASH not set, using default credentials")
	}
	return email, passwordHash
}

// Login godoc
// @Summary      Log in as the admin account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  models.LoginResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      401   {object}  models.ErrorResponse
// @Router       /api/login [post]
func Login(db *sql.DB) gin.HandlerFunc {
	adminEmail, adminHash := adminCredentials()
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		if req.Email != adminEmail || !utils.ValidatePassword(adminHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := utils.GenerateJWT(req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token", "details": err.Error()})
			return
		}

		session := &models.Session{
			SessionID: uuid.New().String(),
			Email:     req.Email,
			HostName:  c.Request.Host,
			IPAddress: c.ClientIP(),
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
			ExpiresAt: time.Now().Add(15 * 24 * time.Hour).UTC().Format(time.RFC3339),
		}
		if err := storage.SaveSession(db, session); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session", "details": err.Error()})
			return
		}

		// Refresh token is bound to this session (device); it lives as long
		// as the session row does.
		refreshToken, err := utils.GenerateRefreshToken(req.Email, session.SessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate refresh token", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "User successfully logged in",
			"access_token":  token,
			"refresh_token": refreshToken,
			"session_id":    session.SessionID,
			"email":         req.Email,
		})
	}
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.RefreshRequest  true  "Refresh token"
// @Success      200   {object}  models.RefreshResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      401   {object}  models.ErrorResponse
// @Router       /api/refresh-token [post]
func RefreshToken(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
			return
		}

		parsed, err := utils.ValidateJWT(req.RefreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			return
		}
		claims, ok := parsed.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims structure"})
			return
		}
		if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token type"})
			return
		}
		sessionID, _ := claims["sessionId"].(string)
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session information missing in refresh token"})
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email claim missing or invalid"})
			return
		}

		// The session row is the revocation point. Logout deletes it, and
		// GetSessionByID hides expired rows, so either case lands here.
		session, err := storage.GetSessionByID(db, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session", "details": err.Error()})
			return
		}
		if session == nil || session.Email != email {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session not found or expired"})
			return
		}

		token, err := utils.GenerateJWT(email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate access token", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Token refreshed",
			"access_token": token,
			"session_id":   sessionID,
		})
	}
}

// Logout godoc
// @Summary      Log out and invalidate the session
// @Tags         auth
// @Param        session_id  header    string  true  "Session ID"
// @Success      200         {object}  models.MessageResponse
// @Failure      400         {object}  models.ErrorResponse
// @Router       /api/logout [post]
func Logout(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id header is missing"})
			return
		}
		if err := storage.DeleteSession(db, sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// AuthMiddleware guards mutating routes with a bearer token. Set AUTH_DISABLED
// to run open, matching the single-user desktop deployments.
func AuthMiddleware() gin.HandlerFunc {
	disabled := os.Getenv("AUTH_DISABLED") != ""
	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if _, err := utils.ValidateJWT(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}
		c.Next()
	}
}
