package handlers

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"backend/storage"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func TestLoginFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB: %v", err)
	}
	defer db.Close()

	r := gin.New()
	r.POST("/api/login", Login(db))
	r.POST("/api/refresh-token", RefreshToken(db))
	r.POST("/api/logout", Logout(db))

	// wrong password
	w := doJSON(r, "POST", "/api/login", `{"email":"admin@constructioninnovation.local","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}

	// default development credentials
	w = doJSON(r, "POST", "/api/login", `{"email":"admin@constructioninnovation.local","password":"password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		SessionID    string `json:"session_id"`
		Email        string `json:"email"`
	}
	decode(t, w, &resp)
	if resp.AccessToken == "" || resp.RefreshToken == "" || resp.SessionID == "" {
		t.Fatalf("resp = %+v", resp)
	}
	if _, err := utils.ValidateJWT(resp.AccessToken); err != nil {
		t.Errorf("issued token does not validate: %v", err)
	}

	// the session landed in storage
	sess, err := storage.GetSessionByID(db, resp.SessionID)
	if err != nil || sess == nil {
		t.Fatalf("session lookup: %v / %v", sess, err)
	}

	// the refresh token buys a fresh access token while the session lives
	w = doJSON(r, "POST", "/api/refresh-token", `{"refresh_token":"`+resp.RefreshToken+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: %d: %s", w.Code, w.Body.String())
	}
	var refreshed struct {
		AccessToken string `json:"access_token"`
		SessionID   string `json:"session_id"`
	}
	decode(t, w, &refreshed)
	if refreshed.SessionID != resp.SessionID {
		t.Errorf("refresh session = %s, want %s", refreshed.SessionID, resp.SessionID)
	}
	if _, err := utils.ValidateJWT(refreshed.AccessToken); err != nil {
		t.Errorf("refreshed token does not validate: %v", err)
	}

	// an access token is not accepted in its place
	w = doJSON(r, "POST", "/api/refresh-token", `{"refresh_token":"`+resp.AccessToken+`"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("access token as refresh: expected 401, got %d", w.Code)
	}

	// logout removes it
	req := httptest.NewRequest("POST", "/api/logout", nil)
	req.Header.Set("session_id", resp.SessionID)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("logout: %d", w2.Code)
	}
	if sess, _ := storage.GetSessionByID(db, resp.SessionID); sess != nil {
		t.Error("session should be gone after logout")
	}

	// a refresh token dies with its session
	w = doJSON(r, "POST", "/api/refresh-token", `{"refresh_token":"`+resp.RefreshToken+`"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("refresh after logout: expected 401, got %d", w.Code)
	}

	// logout without the header is a 400
	w = doJSON(r, "POST", "/api/logout", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without session_id header, got %d", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("AUTH_DISABLED", "")

	r := gin.New()
	r.POST("/guarded", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	if w := doJSON(r, "POST", "/guarded", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: expected 401, got %d", w.Code)
	}

	req := httptest.NewRequest("POST", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bogus token: expected 401, got %d", w.Code)
	}

	token, err := utils.GenerateJWT("admin@constructioninnovation.local")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	req = httptest.NewRequest("POST", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "true") {
		t.Errorf("valid token: %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("AUTH_DISABLED", "1")

	r := gin.New()
	r.POST("/guarded", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	if w := doJSON(r, "POST", "/guarded", ""); w.Code != http.StatusOK {
		t.Errorf("AUTH_DISABLED should bypass the check, got %d", w.Code)
	}
}
