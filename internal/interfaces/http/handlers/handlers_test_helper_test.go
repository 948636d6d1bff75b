package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parts-market.backend/internal/domain/entities"
	"parts-market.backend/internal/infrastructure/models"
	"parts-market.backend/internal/infrastructure/repositories"
	"parts-market.backend/internal/interfaces/http/middleware"
	"parts-market.backend/internal/usecases"
	"parts-market.backend/pkg/redis"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.AutoPart{},
		&models.PartImage{},
		&models.BuyerInquiry{},
		&models.FinancingOption{},
		&models.FinancingApplication{},
	))

	userRepo := repositories.NewUserRepository(db)
	partRepo := repositories.NewAutoPartRepository(db)
	imageRepo := repositories.NewPartImageRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	optionRepo := repositories.NewFinancingOptionRepository(db)
	appRepo := repositories.NewFinancingApplicationRepository(db)

	userUsecase := usecases.NewUserUsecase(userRepo)
	partUsecase := usecases.NewPartUsecase(partRepo, imageRepo, userRepo)
	inquiryUsecase := usecases.NewInquiryUsecase(inquiryRepo, partRepo)
	financingUsecase := usecases.NewFinancingUsecase(optionRepo, appRepo, partRepo, userRepo)

	userHandler := NewUserHandler(userUsecase)
	partHandler := NewPartHandler(partUsecase)
	inquiryHandler := NewInquiryHandler(inquiryUsecase)
	financingHandler := NewFinancingHandler(financingUsecase)
	sessionHandler := NewSessionHandler(userUsecase, redis.NewCurrentUserStore(time.Minute))

	r := gin.New()
	r.Use(middleware.ActorMiddleware())

	v1 := r.Group("/api/v1")
	v1.POST("/users", userHandler.CreateUser)
	v1.GET("/users", userHandler.ListUsers)
	v1.POST("/parts", partHandler.CreatePart)
	v1.GET("/parts", partHandler.ListParts)
	v1.GET("/parts/search", partHandler.SearchParts)
	v1.PATCH("/parts/:id", partHandler.UpdatePart)
	v1.POST("/parts/:id/images", partHandler.CreatePartImage)
	v1.GET("/parts/:id/images", partHandler.ListPartImages)
	v1.POST("/inquiries", inquiryHandler.CreateInquiry)
	v1.GET("/inquiries/buyer/:userId", inquiryHandler.ListBuyerInquiries)
	v1.GET("/inquiries/seller/:userId", inquiryHandler.ListSellerInquiries)
	v1.PATCH("/inquiries/:id/status", inquiryHandler.UpdateInquiryStatus)
	v1.POST("/financing-options", financingHandler.CreateOption)
	v1.GET("/financing-options", financingHandler.ListOptions)
	v1.GET("/financing-options/:id/estimate", financingHandler.EstimatePayment)
	v1.POST("/financing-applications", financingHandler.CreateApplication)
	v1.GET("/financing-applications", financingHandler.ListApplications)
	v1.PATCH("/financing-applications/:id/status", financingHandler.UpdateApplicationStatus)
	v1.PUT("/session/current-user", sessionHandler.SetCurrentUser)
	v1.GET("/session/current-user", sessionHandler.GetCurrentUser)

	return r
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createTestUser(t *testing.T, r *gin.Engine, email string, userType entities.UserType) int64 {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"email":     email,
		"password":  "password123",
		"firstName": "Test",
		"lastName":  "User",
		"userType":  string(userType),
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decodeBody(t, w)["id"].(float64))
}

func createTestPart(t *testing.T, r *gin.Engine, sellerID int64) int64 {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/parts", gin.H{
		"sellerId":    sellerID,
		"title":       "Brake caliper",
		"description": "Front left",
		"category":    "brakes",
		"condition":   "used_good",
		"price":       250.50,
		"make":        "Toyota",
		"model":       "Camry",
		"year":        2018,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decodeBody(t, w)["id"].(float64))
}

func createTestOption(t *testing.T, r *gin.Engine, providerID int64) int64 {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/financing-options", gin.H{
		"providerId":   providerID,
		"name":         "Standard plan",
		"description":  "up to 36 months",
		"minAmount":    500,
		"maxAmount":    5000,
		"interestRate": 7.99,
		"termMonths":   24,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decodeBody(t, w)["id"].(float64))
}
