package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/bohoja-backend/internal/app/model"
	"github.com/ikkim/bohoja-backend/internal/app/service"
	"github.com/ikkim/bohoja-backend/internal/app/store"
	"github.com/ikkim/bohoja-backend/internal/metrics"
	"github.com/ikkim/bohoja-backend/internal/middleware"
	"github.com/ikkim/bohoja-backend/internal/storage"
	"github.com/ikkim/bohoja-backend/internal/websocket"
	"github.com/ikkim/bohoja-backend/pkg/redis"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

type fakeGenerator struct {
	answer string
	err    error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.answer, f.err
}

type fakePresigner struct{}

func (fakePresigner) PresignUpload(ctx context.Context, folder, filename, contentType string) (*storage.PresignedURLResponse, error) {
	if err := storage.ValidateUpload(folder, contentType); err != nil {
		return nil, err
	}
	if filename == "fail.png" {
		return nil, errors.New("presign failed")
	}
	key := folder + "/test.png"
	return &storage.PresignedURLResponse{
		UploadURL: "https://upload.test/" + key,
		FileURL:   "https://cdn.test/" + key,
		Key:       key,
	}, nil
}

type testEnv struct {
	router    *gin.Engine
	store     *store.UserStore
	generator *fakeGenerator
}

// setupControllerTest wires every controller against a fresh store fixed at 2026-10-25
func setupControllerTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, 10, 25, 9, 0, 0, 0, time.UTC)
	userStore := store.NewUserStore(store.WithClock(func() time.Time { return now }))
	m := metrics.New()
	blacklist := redis.NewMemoryBlacklist()
	generator := &fakeGenerator{answer: "재가급여를 먼저 신청해보세요."}

	notificationService := service.NewNotificationService(userStore, websocket.NewHub(), m)
	signupCtrl := NewSignupController(service.NewSignupService(userStore, notificationService, m))
	authCtrl := NewAuthController(service.NewAuthService(userStore, blacklist, m, testJWTSecret, time.Hour))
	benefitCtrl := NewBenefitController(service.NewBenefitService(userStore, m))
	recommendationCtrl := NewRecommendationController(service.NewRecommendationService(userStore, m))
	historyCtrl := NewHistoryController(service.NewHistoryService(userStore, 4500000))
	prescriptionCtrl := NewPrescriptionController(service.NewPrescriptionService(userStore))
	facilityCtrl := NewFacilityController(service.NewFacilityService())
	chatCtrl := NewChatController(service.NewChatService(userStore, generator, m))
	notificationCtrl := NewNotificationController(notificationService, websocket.NewHub(), nil)
	uploadCtrl := NewUploadController(fakePresigner{})

	auth := middleware.NewAuthMiddleware(testJWTSecret, blacklist, userStore).Authenticate()

	r := gin.New()
	r.Use(middleware.LoggingMiddleware())
	r.POST("/signup", signupCtrl.Start)
	r.GET("/signup/options", signupCtrl.Options)
	r.GET("/signup/:id", signupCtrl.Get)
	r.PUT("/signup/:id/credentials", signupCtrl.SubmitCredentials)
	r.PUT("/signup/:id/guardian", signupCtrl.SubmitGuardian)
	r.PUT("/signup/:id/patient", signupCtrl.SubmitPatient)
	r.POST("/signup/:id/complete", signupCtrl.Complete)
	r.POST("/signup/:id/back", signupCtrl.Back)
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/auth/logout", auth, authCtrl.Logout)
	r.GET("/auth/me", auth, authCtrl.Me)
	r.GET("/benefits", benefitCtrl.List)
	r.GET("/benefits/categories", benefitCtrl.Categories)
	r.GET("/benefits/:id", benefitCtrl.Detail)
	r.POST("/benefits/:id/apply", auth, benefitCtrl.Apply)
	r.GET("/recommendations", auth, recommendationCtrl.Get)
	r.POST("/recommendations/apply", auth, recommendationCtrl.Apply)
	r.GET("/history", auth, historyCtrl.GetHistory)
	r.GET("/history/export", auth, historyCtrl.Export)
	r.GET("/expenditure", auth, historyCtrl.GetExpenditure)
	r.GET("/prescriptions", auth, prescriptionCtrl.List)
	r.POST("/prescriptions", auth, prescriptionCtrl.Add)
	r.GET("/facilities", facilityCtrl.List)
	r.GET("/facilities/types", facilityCtrl.Types)
	r.GET("/facilities/:id", facilityCtrl.Detail)
	r.POST("/chat", auth, chatCtrl.Send)
	r.GET("/chat/messages", auth, chatCtrl.Messages)
	r.GET("/notifications", auth, notificationCtrl.GetNotifications)
	r.POST("/upload/presigned-url", uploadCtrl.GeneratePresignedURL)

	return &testEnv{router: r, store: userStore, generator: generator}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
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
	e.router.ServeHTTP(w, req)
	return w
}

// register stores the guardian 010-1234-5678 / secret1 with a patient
func (e *testEnv) register(t *testing.T) {
	t.Helper()
	require.NoError(t, e.store.Register(store.Registration{
		Guardian: model.GuardianInfo{
			PhoneNumber:   "010-1234-5678",
			Password:      "secret1",
			GuardianName:  "김보호",
			GuardianPhone: "010-1234-5678",
			Relationship:  "자녀",
			Region:        "경상남도",
		},
		Patient: model.PatientInfo{
			PatientName:         "김환자",
			BirthDate:           "1950-03-01",
			PatientRelationship: "부모",
			PatientRegion:       "경상남도",
			Diseases:            "뇌졸중",
		},
	}))
}

// login registers and logs in, returning the access token
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	e.register(t)

	w := e.do(t, http.MethodPost, "/auth/login", LoginRequest{PhoneNumber: "01012345678", Password: "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token struct {
			AccessToken string `json:"access_token"`
		} `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token.AccessToken)
	return resp.Token.AccessToken
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
