package api

import (
	"bitwise74/budget-api/model"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingMailer stands in for the SMTP mailer. Tests read the token
// out of it the way a user would read it out of their inbox
type recordingMailer struct {
	confirmations []string
	resets        []string
}

func (m *recordingMailer) SendConfirmation(name, email, token string) error {
	m.confirmations = append(m.confirmations, token)
	return nil
}

func (m *recordingMailer) SendPasswordReset(name, email, token string) error {
	m.resets = append(m.resets, token)
	return nil
}

func (m *recordingMailer) lastConfirmation(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, m.confirmations, "no confirmation mail was sent")
	return m.confirmations[len(m.confirmations)-1]
}

func (m *recordingMailer) lastReset(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, m.resets, "no reset mail was sent")
	return m.resets[len(m.resets)-1]
}

func newTestAPI(t *testing.T) (*API, *recordingMailer) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")
	viper.Set("host.frontend_origin", "http://localhost:5173")
	viper.Set("ratelimit.rps", 10000)
	viper.Set("ratelimit.burst", 10000)

	// Every test gets its own named in-memory database. Shared cache
	// keeps it alive across the pooled connections gorm opens
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, d.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, d.AutoMigrate(model.User{}, model.Budget{}, model.Expense{}))

	mailer := &recordingMailer{}

	a, err := NewRouter(d, mailer)
	require.NoError(t, err)

	return a, mailer
}

func doRequest(a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndConfirm walks a user through the whole signup flow over
// the HTTP surface and returns a session token for them
func registerAndConfirm(t *testing.T, a *API, mailer *recordingMailer, name, email, password string) string {
	t.Helper()

	w := doRequest(a, http.MethodPost, "/api/auth/create-account", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(a, http.MethodPost, "/api/auth/confirm-account", "", gin.H{
		"token": mailer.lastConfirmation(t),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return decodeBody(t, w)["token"].(string)
}

func createBudget(t *testing.T, a *API, token, name string, amount float64) uint {
	t.Helper()

	w := doRequest(a, http.MethodPost, "/api/budget", token, gin.H{
		"name":   name,
		"amount": amount,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	budget := decodeBody(t, w)["budget"].(map[string]any)
	return uint(budget["id"].(float64))
}
