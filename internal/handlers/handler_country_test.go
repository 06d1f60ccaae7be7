package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/country-insights/country_insights_app/internal/apperrors"
	"github.com/country-insights/country_insights_app/internal/core/domain"
	portssvc "github.com/country-insights/country_insights_app/internal/core/ports/services"
	"github.com/country-insights/country_insights_app/internal/dto"
	"github.com/country-insights/country_insights_app/internal/handlers"
	"github.com/country-insights/country_insights_app/internal/platform/config"
	"github.com/country-insights/country_insights_app/internal/summaryimage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CountryService ---
type MockCountryService struct {
	mock.Mock
}

func (m *MockCountryService) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryService) ListCountries(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryService) DeleteCountryByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

var _ portssvc.CountrySvcFacade = (*MockCountryService)(nil)

// --- Mock RefreshService ---
type MockRefreshService struct {
	mock.Mock
}

func (m *MockRefreshService) RefreshCountries(ctx context.Context) (*dto.RefreshResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RefreshResult), args.Error(1)
}

var _ portssvc.RefreshSvc = (*MockRefreshService)(nil)

// --- Mock StatusService ---
type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) GetSystemStatus(ctx context.Context) (dto.StatusResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(dto.StatusResponse), args.Error(1)
}

var _ portssvc.StatusSvc = (*MockStatusService)(nil)

// --- Test Suite ---
type CountryHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	countryService *MockCountryService
	refreshService *MockRefreshService
	statusService  *MockStatusService
	cacheDir       string
}

func (suite *CountryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.countryService = new(MockCountryService)
	suite.refreshService = new(MockRefreshService)
	suite.statusService = new(MockStatusService)
	suite.cacheDir = suite.T().TempDir()

	cfg := &config.Config{CacheDir: suite.cacheDir}
	container := &portssvc.ServiceContainer{
		Country: suite.countryService,
		Refresh: suite.refreshService,
		Status:  suite.statusService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *CountryHandlerTestSuite) serve(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *CountryHandlerTestSuite) TestRefresh_Success() {
	refreshedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.refreshService.On("RefreshCountries", mock.Anything).
		Return(&dto.RefreshResult{TotalCountries: 250, LastRefreshedAt: refreshedAt}, nil).Once()

	rec := suite.serve(http.MethodPost, "/countries/refresh")

	suite.Equal(http.StatusOK, rec.Code)
	var body dto.RefreshResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal(int64(250), body.TotalCountries)
	suite.Equal("2025-06-01T12:00:00Z", body.LastRefreshedAt)
	suite.Equal("Countries data refreshed successfully", body.Message)
	suite.refreshService.AssertExpectations(suite.T())
}

func (suite *CountryHandlerTestSuite) TestRefresh_SourceUnavailableIs503() {
	sourceErr := apperrors.NewSourceTimeout("restcountries.com", context.DeadlineExceeded)
	suite.refreshService.On("RefreshCountries", mock.Anything).Return(nil, sourceErr).Once()

	rec := suite.serve(http.MethodPost, "/countries/refresh")

	suite.Equal(http.StatusServiceUnavailable, rec.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("External data source unavailable", body["error"])
	suite.Contains(body["details"], "restcountries.com")
}

func (suite *CountryHandlerTestSuite) TestRefresh_InternalErrorIs500() {
	suite.refreshService.On("RefreshCountries", mock.Anything).Return(nil, context.Canceled).Once()

	rec := suite.serve(http.MethodPost, "/countries/refresh")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("Internal server error", body["error"])
}

func (suite *CountryHandlerTestSuite) TestListCountries_FilterAndSort() {
	expectedFilter := domain.ListFilter{Region: "Europe", CurrencyCode: "EUR", Sort: domain.SortGDPDesc}
	suite.countryService.On("ListCountries", mock.Anything, expectedFilter).
		Return([]domain.Country{{Name: "Aland", LastRefreshedAt: time.Now()}}, nil).Once()

	rec := suite.serve(http.MethodGet, "/countries?region=Europe&currency=EUR&sort=gdp_desc")

	suite.Equal(http.StatusOK, rec.Code)
	var body []dto.CountryResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal("Aland", body[0].Name)
	suite.countryService.AssertExpectations(suite.T())
}

func (suite *CountryHandlerTestSuite) TestListCountries_InvalidSortIs400() {
	rec := suite.serve(http.MethodGet, "/countries?sort=alphabetical")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.countryService.AssertNotCalled(suite.T(), "ListCountries", mock.Anything, mock.Anything)
}

func (suite *CountryHandlerTestSuite) TestGetCountryByName_AbsentGDPIsNull() {
	code := "XXX"
	suite.countryService.On("GetCountryByName", mock.Anything, "Narnia").
		Return(&domain.Country{
			Name:         "Narnia",
			CurrencyCode: &code,
			EstimatedGDP: domain.AbsentGDP(),
		}, nil).Once()

	rec := suite.serve(http.MethodGet, "/countries/Narnia")

	suite.Equal(http.StatusOK, rec.Code)
	var body map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("null", string(body["estimated_gdp"]))
}

func (suite *CountryHandlerTestSuite) TestGetCountryByName_NotFound() {
	suite.countryService.On("GetCountryByName", mock.Anything, "Atlantis").
		Return(nil, apperrors.ErrNotFound).Once()

	rec := suite.serve(http.MethodGet, "/countries/Atlantis")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *CountryHandlerTestSuite) TestDeleteCountryByName() {
	suite.countryService.On("DeleteCountryByName", mock.Anything, "Aland").Return(nil).Once()
	rec := suite.serve(http.MethodDelete, "/countries/Aland")
	suite.Equal(http.StatusNoContent, rec.Code)

	suite.countryService.On("DeleteCountryByName", mock.Anything, "Atlantis").Return(apperrors.ErrNotFound).Once()
	rec = suite.serve(http.MethodDelete, "/countries/Atlantis")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *CountryHandlerTestSuite) TestGetSystemStatus() {
	refreshedAt := "2025-06-01T12:00:00Z"
	suite.statusService.On("GetSystemStatus", mock.Anything).
		Return(dto.StatusResponse{TotalCountries: 250, LastRefreshedAt: &refreshedAt}, nil).Once()

	rec := suite.serve(http.MethodGet, "/status")

	suite.Equal(http.StatusOK, rec.Code)
	var body dto.StatusResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal(int64(250), body.TotalCountries)
	suite.Require().NotNil(body.LastRefreshedAt)
	suite.Equal(refreshedAt, *body.LastRefreshedAt)
}

func (suite *CountryHandlerTestSuite) TestGetSummaryImage_NotFoundBeforeFirstRender() {
	rec := suite.serve(http.MethodGet, "/countries/image")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *CountryHandlerTestSuite) TestGetSummaryImage_ServesFile() {
	imagePath := filepath.Join(suite.cacheDir, summaryimage.FileName)
	suite.Require().NoError(os.WriteFile(imagePath, []byte("png-bytes"), 0o644))

	rec := suite.serve(http.MethodGet, "/countries/image")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("image/png", rec.Header().Get("Content-Type"))
	suite.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))
	suite.Equal("png-bytes", rec.Body.String())
}

func TestCountryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CountryHandlerTestSuite))
}
