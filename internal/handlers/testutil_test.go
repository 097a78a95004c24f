package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
	"github.com/SallahBoussettah/portfolio-api/internal/services"
)

const testAdminPassword = "correct-horse"

// testEnv wires the full router against an in-memory database so handler
// tests exercise the real middleware chain.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *services.AuthService
}

type requireT interface {
	require.TestingT
}

func newTestEnv(t requireT, uploadDir string) *testEnv {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Project{},
		&models.Art{},
		&models.Education{},
		&models.Experience{},
		&models.TechStack{},
		&models.Setting{},
		&models.Contact{},
		&models.PasswordReset{},
	)
	require.NoError(t, err)

	cfg := &config.Config{
		GinMode:        gin.TestMode,
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
		AdminUsername:  "admin",
		AdminPassword:  testAdminPassword,
		AdminEmail:     "admin@example.com",
		CORSOrigins:    []string{"http://localhost:3000"},
		UploadDir:      uploadDir,
		UploadBaseURL:  "http://localhost:8080",
	}

	mailer := &nopTestMailer{}
	auth := services.NewAuthService(repository.NewAdminRepository(db), mailer, cfg)
	require.NoError(t, auth.Bootstrap())

	svc := Services{
		Auth:       auth,
		Project:    services.NewProjectService(repository.NewProjectRepository(db)),
		Art:        services.NewArtService(repository.NewArtRepository(db)),
		Education:  services.NewEducationService(repository.NewEducationRepository(db)),
		Experience: services.NewExperienceService(repository.NewExperienceRepository(db)),
		TechStack:  services.NewTechStackService(repository.NewTechStackRepository(db)),
		Setting:    services.NewSettingService(repository.NewSettingRepository(db)),
		Contact:    services.NewContactService(repository.NewContactRepository(db), mailer),
		Upload:     services.NewUploadService(cfg),
	}

	return &testEnv{
		db:     db,
		router: NewRouter(cfg, svc),
		auth:   auth,
	}
}

func (e *testEnv) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// login returns a valid bearer token for the bootstrapped admin.
func (e *testEnv) login(t requireT) string {
	token, _, err := e.auth.Login(testAdminPassword)
	require.NoError(t, err)
	return token
}

// request performs an HTTP request against the router. A non-nil body is
// JSON-encoded; a non-empty token is sent as a bearer token.
func (e *testEnv) request(method, url string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t requireT, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// nopTestMailer drops all outgoing mail in handler tests.
type nopTestMailer struct{}

func (n *nopTestMailer) SendContactNotification(*models.Contact) {}
func (n *nopTestMailer) SendAutoReply(*models.Contact)           {}
func (n *nopTestMailer) SendResetCode(string, string)            {}
