package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"symptotrack/internal/controllers"
	"symptotrack/internal/models"
	"symptotrack/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupAuthControllerWithMock() (*controllers.AuthController, *mocks.MockAccountRepository) {
	mockRepo := new(mocks.MockAccountRepository)
	controller := controllers.NewAuthController(mockRepo)
	return controller, mockRepo
}

func performJSONRequest(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body []byte
	switch v := payload.(type) {
	case nil:
		body = []byte("invalid json")
	case []byte:
		body = v
	default:
		body, _ = json.Marshal(v)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockAccountRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful registration",
			requestBody: map[string]interface{}{
				"username": "clinic_a",
				"password": "pass123!",
			},
			setupMock: func(m *mocks.MockAccountRepository) {
				m.On("UsernameExists", "clinic_a").Return(false, nil)
				m.On("Create", mock.AnythingOfType("*models.Account")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Account registered successfully",
		},
		{
			name: "duplicate username",
			requestBody: map[string]interface{}{
				"username": "clinic_a",
				"password": "pass123!",
			},
			setupMock: func(m *mocks.MockAccountRepository) {
				m.On("UsernameExists", "clinic_a").Return(true, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Username already exists",
		},
		{
			name: "duplicate caught by unique index",
			requestBody: map[string]interface{}{
				"username": "clinic_a",
				"password": "pass123!",
			},
			setupMock: func(m *mocks.MockAccountRepository) {
				m.On("UsernameExists", "clinic_a").Return(false, nil)
				m.On("Create", mock.AnythingOfType("*models.Account")).
					Return(errors.New(`duplicate key value violates unique constraint "idx_accounts_username"`))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Username already exists",
		},
		{
			name: "missing password",
			requestBody: map[string]interface{}{
				"username": "clinic_a",
			},
			setupMock:      func(m *mocks.MockAccountRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mocks.MockAccountRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupAuthControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/register", controller.Register)

			var payload interface{}
			if tt.requestBody != nil {
				payload = tt.requestBody
			}
			w := performJSONRequest(router, "POST", "/auth/register", payload)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRegisterPasswordIsHashed(t *testing.T) {
	controller, mockRepo := setupAuthControllerWithMock()

	var created *models.Account
	mockRepo.On("UsernameExists", "clinic_a").Return(false, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.Account")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Account)
		}).Return(nil)

	router := setupTestRouter()
	router.POST("/auth/register", controller.Register)

	w := performJSONRequest(router, "POST", "/auth/register", map[string]interface{}{
		"username": "clinic_a",
		"password": "pass123!",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotNil(t, created)
	assert.NotEqual(t, "pass123!", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pass123!")))
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123!"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	account := &models.Account{Username: "clinic_a", Password: string(hash)}
	account.ID = 7

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockAccountRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful login",
			requestBody: map[string]interface{}{
				"username": "clinic_a",
				"password": "pass123!",
			},
			setupMock: func(m *mocks.MockAccountRepository) {
				m.On("FindByUsername", "clinic_a").Return(account, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Login successful",
		},
		{
			name: "wrong password",
			requestBody: map[string]interface{}{
				"username": "clinic_a",
				"password": "wrongpass",
			},
			setupMock: func(m *mocks.MockAccountRepository) {
				m.On("FindByUsername", "clinic_a").Return(account, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
		{
			name: "unknown username",
			requestBody: map[string]interface{}{
				"username": "nobody",
				"password": "pass123!",
			},
			setupMock: func(m *mocks.MockAccountRepository) {
				m.On("FindByUsername", "nobody").Return(nil, errors.New("record not found"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "test-secret")

			controller, mockRepo := setupAuthControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/auth/login", controller.Login)

			w := performJSONRequest(router, "POST", "/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			if tt.expectedStatus == http.StatusOK {
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
