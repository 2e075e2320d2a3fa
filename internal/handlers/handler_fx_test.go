package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
	"github.com/blance-app/blance_backend/internal/handlers"
	"github.com/blance-app/blance_backend/internal/middleware"
)

// --- Mock FxService ---
type MockFxHandlerService struct {
	mock.Mock
}

func (m *MockFxHandlerService) EnsureDailyRates(ctx context.Context, base string) (*domain.FxRateRow, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRateRow), args.Error(1)
}

func (m *MockFxHandlerService) ConvertMinor(ctx context.Context, amountMinor int64, from, to string) (int64, string, error) {
	args := m.Called(ctx, amountMinor, from, to)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.FxSvcFacade = (*MockFxHandlerService)(nil)

// --- Test Suite ---
type FxHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockFxService *MockFxHandlerService
	jwtSecret     string
}

func (suite *FxHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockFxService = new(MockFxHandlerService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterFxRoutes(v1, suite.mockFxService)
}

func (suite *FxHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *FxHandlerTestSuite) doRequest(url string, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *FxHandlerTestSuite) TestGetRates_Success() {
	row := &domain.FxRateRow{
		Provider: "frankfurter",
		RateDate: "2026-08-28",
		Base:     "EUR",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(1.08),
		},
	}
	suite.mockFxService.On("EnsureDailyRates", mock.Anything, "EUR").Return(row, nil).Once()

	w := suite.doRequest("/api/v1/fx/rates?base=EUR", suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.FxRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("frankfurter", body.Provider)
	suite.Equal("2026-08-28", body.RateDate)
	suite.Equal("EUR", body.Base)
	suite.True(body.Rates["USD"].Equal(decimal.NewFromFloat(1.08)))
	suite.mockFxService.AssertExpectations(suite.T())
}

func (suite *FxHandlerTestSuite) TestGetRates_MissingToken() {
	w := suite.doRequest("/api/v1/fx/rates", "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockFxService.AssertNotCalled(suite.T(), "EnsureDailyRates")
}

func (suite *FxHandlerTestSuite) TestConvert_Success() {
	suite.mockFxService.On("ConvertMinor", mock.Anything, int64(1080), "USD", "EUR").
		Return(int64(1000), "2026-08-28", nil).Once()

	url := fmt.Sprintf("/api/v1/fx/convert?amountMinor=%d&from=USD&to=EUR", 1080)
	w := suite.doRequest(url, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(int64(1080), body.AmountMinor)
	suite.Equal(int64(1000), body.ConvertedMinor)
	suite.Equal("2026-08-28", body.RateDate)
	suite.mockFxService.AssertExpectations(suite.T())
}

func (suite *FxHandlerTestSuite) TestConvert_InvalidCurrencyCode() {
	w := suite.doRequest("/api/v1/fx/convert?amountMinor=100&from=usd&to=EUR", suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFxService.AssertNotCalled(suite.T(), "ConvertMinor")
}

func (suite *FxHandlerTestSuite) TestConvert_ProviderUnavailable() {
	suite.mockFxService.On("ConvertMinor", mock.Anything, int64(100), "USD", "EUR").
		Return(int64(0), "", apperrors.NewAppError(http.StatusBadGateway, "rate provider unavailable", nil)).Once()

	w := suite.doRequest("/api/v1/fx/convert?amountMinor=100&from=USD&to=EUR", suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusBadGateway, w.Code)
}

// --- Run Test Suite ---
func TestFxHandler(t *testing.T) {
	suite.Run(t, new(FxHandlerTestSuite))
}
