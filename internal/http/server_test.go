package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"records-service/internal/auth"
	"records-service/internal/config"
	"records-service/internal/domain/account"
	"records-service/internal/domain/record"
	"records-service/internal/rbac"
	apperrors "records-service/pkg/errors"
	"records-service/pkg/password"
)

const testSecret = "server-test-secret-0123456789abcdef"

type memAccountRepo struct {
	nextID   int64
	accounts map[int64]*account.Account
}

func (r *memAccountRepo) Create(_ context.Context, input account.CreateAccountInput) (*account.Account, error) {
	for _, a := range r.accounts {
		if a.Email == input.Email || a.Username == input.Username {
			return nil, apperrors.Conflict("account exists")
		}
	}
	r.nextID++
	a := &account.Account{
		ID: r.nextID, FirstName: input.FirstName, LastName: input.LastName,
		Username: input.Username, Email: input.Email, PasswordHash: input.PasswordHash,
		Role: input.Role, PermissionLevel: input.PermissionLevel,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	r.accounts[a.ID] = a
	return a, nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id int64) (*account.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, apperrors.NotFound("account not found")
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.NotFound("account not found")
}

func (r *memAccountRepo) UpdatePermissionLevel(_ context.Context, id int64, level rbac.Level) (*account.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.NotFound("account not found")
	}
	a.PermissionLevel = level
	return a, nil
}

type memRecordRepo struct {
	nextID  int64
	records map[int64]*record.Record
}

func (r *memRecordRepo) List(_ context.Context) ([]*record.Record, error) {
	out := []*record.Record{}
	for id := int64(1); id <= r.nextID; id++ {
		if rec, ok := r.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memRecordRepo) Create(_ context.Context, input record.CreateRecordInput) (*record.Record, error) {
	for _, rec := range r.records {
		if rec.Email == input.Email {
			return nil, apperrors.Conflict("record exists")
		}
	}
	r.nextID++
	rec := &record.Record{
		ID: r.nextID, FirstName: input.FirstName, LastName: input.LastName,
		Email: input.Email, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *memRecordRepo) Update(_ context.Context, id int64, input record.UpdateRecordInput) (*record.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, apperrors.NotFound("record not found")
	}
	rec.FirstName, rec.LastName, rec.Email = input.FirstName, input.LastName, input.Email
	return rec, nil
}

func (r *memRecordRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return apperrors.NotFound("record not found")
	}
	delete(r.records, id)
	return nil
}

func newTestServer() *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         "0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		JWT:  config.JWTConfig{Secret: testSecret, ExpiryDuration: time.Hour},
		Auth: config.AuthConfig{BcryptCost: password.MinCost},
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)

	return NewServer(&ServerDependencies{
		Config:         cfg,
		AccountRepo:    &memAccountRepo{accounts: make(map[int64]*account.Account)},
		RecordRepo:     &memRecordRepo{records: make(map[int64]*record.Record)},
		JWTService:     jwtService,
		AuthMiddleware: auth.NewMiddleware(jwtService),
	})
}

func do(s *Server, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, s *Server, email, pass string) string {
	t.Helper()

	rec := do(s, http.MethodPost, "/auth/login", "", `{"email":"`+email+`","password":"`+pass+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestServer_HealthEndpoint(t *testing.T) {
	s := newTestServer()

	rec := do(s, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RecordsRequireAuth(t *testing.T) {
	s := newTestServer()

	rec := do(s, http.MethodGet, "/records", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(s, http.MethodDelete, "/records/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/records", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	s.echo.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServer_FullFlow(t *testing.T) {
	s := newTestServer()

	// Register an admin and a plain user
	rec := do(s, http.MethodPost, "/auth/register", "",
		`{"firstname":"Ada","lastname":"Root","username":"ada","email":"ada@example.com","password":"super-secret","role":"admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(s, http.MethodPost, "/auth/register", "",
		`{"firstname":"Bob","lastname":"Plain","username":"bob","email":"bob@example.com","password":"super-secret","role":"user"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	adminToken := loginToken(t, s, "ada@example.com", "super-secret")
	userToken := loginToken(t, s, "bob@example.com", "super-secret")

	// Reader can list but not create
	rec = do(s, http.MethodGet, "/records", userToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodPost, "/records", userToken,
		`{"firstname":"Jane","lastname":"Doe","email":"jane@example.com"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin can create, update, delete
	rec = do(s, http.MethodPost, "/records", adminToken,
		`{"firstname":"Jane","lastname":"Doe","email":"jane@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(s, http.MethodPut, "/records/1", adminToken,
		`{"firstname":"Janet","lastname":"Doe","email":"jane@example.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(s, http.MethodDelete, "/records/1", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Only admins may change permissions
	rec = do(s, http.MethodPut, "/auth/permissions/2", userToken, `{"permission_level":2}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(s, http.MethodPut, "/auth/permissions/2", adminToken, `{"permission_level":1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The change shows up in the next-issued token, not the old one
	newUserToken := loginToken(t, s, "bob@example.com", "super-secret")
	rec = do(s, http.MethodPost, "/records", newUserToken,
		`{"firstname":"New","lastname":"Entry","email":"new@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(s, http.MethodPost, "/records", userToken,
		`{"firstname":"Old","lastname":"Token","email":"old@example.com"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
