package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/config"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/fetch"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/ocr"
	"github.com/CxxxxDxxxF/gotlockz-bot/pkg/teams"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	// They also need a Tesseract install since /analyze runs the real engines.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	jwtSecret = []byte("integration-test-secret")

	cfg := config.Default()
	registry := teams.NewRegistry()
	selector := ocr.NewSelector(ocr.BuildEngines(cfg.Engines), cfg.AcceptFloor)
	analyzer = ocr.NewAnalyzer(selector, registry, cfg.SanityFloor, t.TempDir())
	fetcher = fetch.New(5*time.Second, cfg.MaxImageBytes)
	resultCache = nil // exercise the no-Redis path

	initDB()
	r := gin.Default()
	setupRoutes(r)
	return r
}

// slipPNG renders a flat image; content does not matter for the flow, the
// pipeline never fails outright on unreadable slips.
func slipPNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestFullFlow(t *testing.T) {
	r := setupTestServer(t)

	// 1. Register user
	regBody, _ := json.Marshal(map[string]string{"username": "slipuser1", "password": "pass123"})
	resp := performRequest(r, http.MethodPost, "/register", bytes.NewBuffer(regBody), "", "application/json")
	if resp.Code != 200 && resp.Code != 409 {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 2. Login
	loginBody, _ := json.Marshal(map[string]string{"username": "slipuser1", "password": "pass123"})
	resp = performRequest(r, http.MethodPost, "/login", bytes.NewBuffer(loginBody), "", "application/json")
	if resp.Code != 200 {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}
	refresh, _ := loginResp["refresh_token"].(string)
	if refresh == "" {
		t.Fatalf("empty refresh token in login response: %+v", loginResp)
	}

	// 3. Analyze a slip upload (multipart)
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	w, _ := mw.CreateFormFile("image", "slip.png")
	_, _ = w.Write(slipPNG(t))
	_ = mw.Close()
	resp = performRequest(r, http.MethodPost, "/analyze", buf, token, mw.FormDataContentType())
	if resp.Code != 200 {
		t.Fatalf("analyze failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var analyzeResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &analyzeResp)
	if _, ok := analyzeResp["result"]; !ok {
		t.Fatalf("analyze response missing result: %s", resp.Body.String())
	}

	// 4. List stored slips
	resp = performRequest(r, http.MethodGet, "/slips", nil, token, "")
	if resp.Code != 200 {
		t.Fatalf("list slips failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 5. Refresh token rotation
	refBody, _ := json.Marshal(map[string]string{"refresh_token": refresh})
	resp = performRequest(r, http.MethodPost, "/refresh", bytes.NewBuffer(refBody), "", "application/json")
	if resp.Code != 200 {
		t.Fatalf("refresh failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 6. Reusing the rotated refresh token must fail
	resp = performRequest(r, http.MethodPost, "/refresh", bytes.NewBuffer(refBody), "", "application/json")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for reused refresh token got %d", resp.Code)
	}

	// 7. Unauthorized access to protected endpoint should be 401
	unauth := performRequest(r, http.MethodGet, "/slips", nil, "", "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthorized list slips got %d", unauth.Code)
	}
}

func TestMigrateCommand(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	initDB()
}
