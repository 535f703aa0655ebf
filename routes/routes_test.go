package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statutesync/config"
	"statutesync/database/engine"
	"statutesync/database/repository"
	"statutesync/handlers"
	"statutesync/models"
	"statutesync/services/admin"
	"statutesync/services/assistant"
	ai "statutesync/services/intelligence"
	"statutesync/services/library"
	"statutesync/services/marketplace"
	"statutesync/services/user"
	"statutesync/services/verification"
	"statutesync/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type failingAI struct{}

func (failingAI) Name() string { return "failing" }

func (failingAI) Verify(context.Context, []byte, string, string) (*models.Verdict, error) {
	return nil, fmt.Errorf("%w: quota exceeded", ai.ErrUnavailable)
}

func (failingAI) Advise(context.Context, string) (string, error) {
	return "", ai.ErrUnavailable
}

// conflictingEngine loses every write race on one key.
type conflictingEngine struct {
	engine.Engine
	key string
}

func (e conflictingEngine) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	if key == e.key {
		return 0, engine.ErrRevisionMismatch
	}
	return e.Engine.Put(ctx, key, value, expected)
}

type server struct {
	router *gin.Engine
	store  *repository.Store
}

func newServer(t *testing.T, eng engine.Engine, aiSvc ai.AIService) *server {
	t.Helper()
	store := repository.NewStore(eng, repository.Options{}, utils.SessionTokenIssuer())
	require.NoError(t, store.Seed(context.Background()))

	bundle := handlers.NewHandlerBundle(handlers.Services{
		Sessions:    &user.DefaultSessionService{Repo: store.Session, Verifier: utils.ExtractSubject},
		Library:     &library.DefaultLibraryService{Repo: store.Documents},
		Marketplace: &marketplace.DefaultMarketplaceService{Professionals: store.Professionals, Bookings: store.Bookings},
		Verification: &verification.DefaultVerificationService{
			Repo:     store.Verifications,
			Verifier: aiSvc,
			Timeout:  time.Second,
		},
		Assistant: &assistant.DefaultAssistantService{
			Advisor: aiSvc,
			Store:   ai.NewMemoryContextStore(time.Hour),
			Timeout: time.Second,
		},
		Admin:          &admin.DefaultAdminService{Store: store},
		Health:         utils.NewHealthMonitor(eng, aiSvc.Name(), time.Minute),
		MaxUploadBytes: 1 << 20,
	})

	r := gin.New()
	r.Use(utils.ErrorHandler())
	RegisterRoutes(r, bundle)
	return &server{router: r, store: store}
}

func (s *server) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) upload(t *testing.T, token, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/verifications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) login(t *testing.T, email string, role models.Role) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: email, Password: "x", Role: role})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp user.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// A minimal PDF header is enough for content sniffing.
var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

func TestHealth(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"engine":"memory"`)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/documents", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/documents", "bogus", nil).Code)

	token := s.login(t, "a@b.c", models.RoleUser)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/documents", token, nil).Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/auth/logout", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/documents", token, nil).Code)
}

func TestLoginAsAdmin(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "demo@x.com", models.RoleAdmin)

	profile := decode[models.UserProfile](t, s.do(t, http.MethodGet, "/api/profile", token, nil))
	assert.Equal(t, "demo", profile.Name)
	assert.Equal(t, models.RoleAdmin, profile.Role)
	assert.Equal(t, "https://i.pravatar.cc/150?u=demo%40x.com", profile.Avatar)

	status := decode[user.AuthStatus](t, s.do(t, http.MethodGet, "/api/auth/status", "", nil))
	assert.True(t, status.Authenticated)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "x@y.z", "role": "ROOT"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	w := s.do(t, http.MethodPut, "/api/profile", token, gin.H{"name": "Ada"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada", decode[models.UserProfile](t, w).Name)

	w = s.do(t, http.MethodPut, "/api/profile", token, gin.H{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, "/api/profile", token, gin.H{"avatar": "https://example.org/a.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	profile := decode[models.UserProfile](t, s.do(t, http.MethodGet, "/api/profile", token, nil))
	assert.Equal(t, "Ada", profile.Name)
}

func TestRotatedSecretEndsSession(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/documents", token, nil).Code)

	previous := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "rotated-secret"
	t.Cleanup(func() { config.AppConfig.JWTSecret = previous })

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/documents", token, nil).Code)
}

func TestDocumentLibrary(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "demo@x.com", models.RoleAdmin)

	docs := decode[[]models.LegalDocument](t, s.do(t, http.MethodGet, "/api/documents", token, nil))
	assert.Len(t, docs, 3)

	docs = decode[[]models.LegalDocument](t, s.do(t, http.MethodGet, "/api/documents?q=NDA", token, nil))
	require.Len(t, docs, 1)
	assert.Equal(t, "1", docs[0].ID)

	w := s.do(t, http.MethodPost, "/api/documents", token, models.NewDocument{Title: "Lease", Category: "Real Estate", Format: models.FormatDOCX})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	added := decode[models.LegalDocument](t, w)

	docs = decode[[]models.LegalDocument](t, s.do(t, http.MethodGet, "/api/documents", token, nil))
	require.Len(t, docs, 4)
	assert.Equal(t, added, docs[0])

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/documents/"+added.ID, token, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/documents/"+added.ID, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/documents/"+added.ID, token, nil).Code)

	w = s.do(t, http.MethodPost, "/api/documents", token, gin.H{"title": "Bad", "format": "XLS"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(t, http.MethodPost, "/api/documents", token, gin.H{"category": "HR"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNonAdminCannotMutate(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/documents", token, models.NewDocument{Title: "x"}).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, "/api/professionals/p1", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/admin/stats", token, nil).Code)
}

func TestMarketplace(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "demo@x.com", models.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/professionals", token, gin.H{"name": "Jane", "rating": 1.0, "online": false})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	pro := decode[models.LegalProfessional](t, w)
	assert.Equal(t, 5.0, pro.Rating)
	assert.True(t, pro.Online)

	pros := decode[[]models.LegalProfessional](t, s.do(t, http.MethodGet, "/api/professionals", token, nil))
	assert.Len(t, pros, 3)

	detail := decode[models.LegalProfessional](t, s.do(t, http.MethodGet, "/api/professionals/p1", token, nil))
	assert.Equal(t, "Sarah Jenkins", detail.Name)

	w = s.do(t, http.MethodPost, "/api/professionals/p1/book", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode[models.Booking](t, w)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, "Sarah Jenkins", booking.ProName)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/professionals/ghost/book", token, nil).Code)

	bookings := decode[[]models.Booking](t, s.do(t, http.MethodGet, "/api/bookings", token, nil))
	assert.Equal(t, []models.Booking{booking}, bookings)
}

func TestVerificationFlow(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	w := s.upload(t, token, "contract.pdf", pdfBytes)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	result := decode[models.VerificationResult](t, w)
	assert.Equal(t, "contract.pdf", result.FileName)
	assert.True(t, result.IsAuthentic)

	history := decode[models.History](t, s.do(t, http.MethodGet, "/api/history", token, nil))
	assert.Equal(t, []models.VerificationResult{result}, history.Verifications)
	assert.Empty(t, history.Bookings)

	w = s.upload(t, token, "notes.txt", []byte("just some text"))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = s.do(t, http.MethodPost, "/api/verifications", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerificationRejectsOversizedUploads(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	// Just over the file limit but within the multipart allowance.
	w := s.upload(t, token, "big.pdf", append(pdfBytes, make([]byte, 1<<20)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())

	w = s.upload(t, token, "huge.pdf", append(pdfBytes, make([]byte, 2<<20)...))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())

	results := decode[[]models.VerificationResult](t, s.do(t, http.MethodGet, "/api/verifications", token, nil))
	assert.Empty(t, results)
}

func TestVerificationSaveConflict(t *testing.T) {
	mem := engine.NewMemory()
	s := newServer(t, mem, ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	s.router = newServer(t, conflictingEngine{Engine: mem, key: "statutesync_verifications"}, ai.NewLocalClient()).router
	w := s.upload(t, token, "contract.pdf", pdfBytes)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Verification history changed while saving. Please try again.", decode[utils.ErrorResponse](t, w).Message)
}

func TestVerificationFailurePersistsNothing(t *testing.T) {
	s := newServer(t, engine.NewMemory(), failingAI{})
	token := s.login(t, "a@b.c", models.RoleUser)

	w := s.upload(t, token, "contract.pdf", pdfBytes)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Verification failed. Please try again.", decode[utils.ErrorResponse](t, w).Message)

	results := decode[[]models.VerificationResult](t, s.do(t, http.MethodGet, "/api/verifications", token, nil))
	assert.Empty(t, results)
}

func TestAssistantChat(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	transcript := decode[map[string][]models.ChatMessage](t, s.do(t, http.MethodGet, "/api/assistant/chat", token, nil))
	require.Len(t, transcript["messages"], 1)
	assert.Equal(t, assistant.Greeting, transcript["messages"][0].Content)

	w := s.do(t, http.MethodPost, "/api/assistant/chat", token, handlers.ChatRequest{Message: "Can my landlord keep my deposit?"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	reply := decode[assistant.ChatReply](t, w)
	assert.Contains(t, reply.Reply, "not professional legal advice")
	assert.Len(t, reply.Messages, 3)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/assistant/chat", token, gin.H{}).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/assistant/chat", token, nil).Code)
}

func TestAssistantApologisesWhenAdvisorFails(t *testing.T) {
	s := newServer(t, engine.NewMemory(), failingAI{})
	token := s.login(t, "a@b.c", models.RoleUser)

	w := s.do(t, http.MethodPost, "/api/assistant/chat", token, handlers.ChatRequest{Message: "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, assistant.ErrorReply, decode[assistant.ChatReply](t, w).Reply)
}

func TestAdminStatsAndReset(t *testing.T) {
	s := newServer(t, engine.NewMemory(), ai.NewLocalClient())
	token := s.login(t, "demo@x.com", models.RoleAdmin)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, "/api/professionals/p2", token, nil).Code)
	stats := decode[models.AdminStats](t, s.do(t, http.MethodGet, "/api/admin/stats", token, nil))
	assert.Equal(t, 3, stats.Documents)
	assert.Equal(t, 1, stats.Professionals)

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodPost, "/api/admin/reset/professionals", token, nil).Code)
	stats = decode[models.AdminStats](t, s.do(t, http.MethodGet, "/api/admin/stats", token, nil))
	assert.Equal(t, 2, stats.Professionals)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/admin/reset/users", token, nil).Code)
}

func TestConflictMapsTo409(t *testing.T) {
	mem := engine.NewMemory()
	s := newServer(t, mem, ai.NewLocalClient())
	token := s.login(t, "demo@x.com", models.RoleAdmin)

	s.router = newServer(t, conflictingEngine{Engine: mem, key: "statutesync_documents"}, ai.NewLocalClient()).router
	w := s.do(t, http.MethodPost, "/api/documents", token, models.NewDocument{Title: "Racy"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCorruptSnapshotMapsTo500(t *testing.T) {
	mem := engine.NewMemory()
	s := newServer(t, mem, ai.NewLocalClient())
	token := s.login(t, "a@b.c", models.RoleUser)

	entry, _, err := mem.Get(context.Background(), "statutesync_documents")
	require.NoError(t, err)
	_, err = mem.Put(context.Background(), "statutesync_documents", []byte("{oops"), entry.Revision)
	require.NoError(t, err)

	w := s.do(t, http.MethodGet, "/api/documents", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode[utils.ErrorResponse](t, w).Details, "corrupt")
}
