package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-ats-backend/internal/delivery/http/middleware"
	v1 "go-ats-backend/internal/delivery/http/v1"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterCandidateValidators(v); err != nil {
			panic(err)
		}
	}
	os.Exit(m.Run())
}

// Mock Usecase
type MockCandidateUsecase struct {
	mock.Mock
}

func (m *MockCandidateUsecase) List(ctx context.Context, q domain.ListQuery) ([]domain.Candidate, domain.Pagination, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, domain.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]domain.Candidate), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *MockCandidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) Create(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateUsecase) Update(ctx context.Context, id string, patch *domain.CandidatePatch) (*domain.Candidate, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) UpdateStatus(ctx context.Context, id string, status string) (*domain.Candidate, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateUsecase) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCandidateUsecase) ListByStatus(ctx context.Context, status string, page, limit int) ([]domain.Candidate, domain.Pagination, error) {
	args := m.Called(ctx, status, page, limit)
	if args.Get(0) == nil {
		return nil, domain.Pagination{}, args.Error(2)
	}
	return args.Get(0).([]domain.Candidate), args.Get(1).(domain.Pagination), args.Error(2)
}

func (m *MockCandidateUsecase) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsOverview), args.Error(1)
}

func (m *MockCandidateUsecase) ExperienceByRole(ctx context.Context) ([]domain.RoleExperience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleExperience), args.Error(1)
}

func setupRouter(uc domain.CandidateUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	v1.NewCandidateHandler(api, uc)
	return r
}

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Error      string             `json:"error"`
	Messages   []string           `json:"messages"`
	Pagination *domain.Pagination `json:"pagination"`
	RequestID  string             `json:"requestId"`
}

func perform(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
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
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func sampleCandidate() *domain.Candidate {
	return &domain.Candidate{
		ID:          uuid.New(),
		Name:        "Grace Hopper",
		Role:        "Backend Engineer",
		Experience:  7,
		ResumeLink:  "https://example.com/grace.pdf",
		Status:      domain.StatusInterview,
		AppliedDate: time.Date(2025, 8, 4, 12, 0, 0, 0, time.UTC),
		Skills:      []string{"Go", "PostgreSQL"},
	}
}

func TestListCandidates(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := setupRouter(mockUC)

	mockUC.On("List", mock.Anything, mock.AnythingOfType("domain.ListQuery")).
		Return([]domain.Candidate{*sampleCandidate()}, domain.Pagination{Page: 1, Limit: 50, Total: 1, Pages: 1}, nil)

	w, env := perform(t, r, http.MethodGet, "/api/candidates?status=interview&search=grace", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Page)
	assert.Equal(t, int64(1), env.Pagination.Total)
	assert.NotEmpty(t, env.RequestID)

	query := mockUC.Calls[0].Arguments.Get(1).(domain.ListQuery)
	assert.Equal(t, "interview", query.Status)
	assert.Equal(t, "grace", query.Search)
	assert.Equal(t, "appliedDate", query.SortBy)
	assert.Equal(t, "desc", query.SortOrder)
}

func TestGetCandidate(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		candidate := sampleCandidate()
		mockUC.On("GetByID", mock.Anything, candidate.ID.String()).Return(candidate, nil)

		w, env := perform(t, r, http.MethodGet, "/api/candidates/"+candidate.ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Grace Hopper", data["name"])
		assert.Equal(t, "Interview", data["statusDisplay"])
		assert.Equal(t, "8/4/2025", data["formattedAppliedDate"])
	})

	t.Run("not found", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		mockUC.On("GetByID", mock.Anything, "missing").Return(nil, apperror.NotFound("Candidate not found"))

		w, env := perform(t, r, http.MethodGet, "/api/candidates/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Candidate not found", env.Error)
	})
}

func TestCreateCandidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		mockUC.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).
			Return(nil).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*domain.Candidate)
				c.ID = uuid.New()
				c.Status = domain.StatusApplied
				c.AppliedDate = time.Now()
			})

		body := gin.H{
			"name":       "Grace Hopper",
			"role":       "Backend Engineer",
			"experience": 7,
			"resumeLink": "https://example.com/grace.pdf",
		}
		w, env := perform(t, r, http.MethodPost, "/api/candidates", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Candidate created successfully", env.Message)

		var data map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "applied", data["status"])
		assert.NotEmpty(t, data["id"])
	})

	t.Run("zero experience is accepted", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		mockUC.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

		body := gin.H{
			"name":       "New Grad",
			"role":       "Junior Engineer",
			"experience": 0,
			"resumeLink": "https://example.com/cv.pdf",
		}
		w, _ := perform(t, r, http.MethodPost, "/api/candidates", body)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid payload reports each field", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		body := gin.H{
			"name":       "Grace Hopper",
			"role":       "Backend Engineer",
			"experience": 60,
			"resumeLink": "not-a-url",
		}
		w, env := perform(t, r, http.MethodPost, "/api/candidates", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Validation Error", env.Error)
		assert.Contains(t, env.Messages, "Experience cannot be more than 50")
		assert.Contains(t, env.Messages, "Resume link must be a valid URL")
		mockUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing experience is rejected", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		body := gin.H{
			"name":       "Grace Hopper",
			"role":       "Backend Engineer",
			"resumeLink": "https://example.com/grace.pdf",
		}
		w, env := perform(t, r, http.MethodPost, "/api/candidates", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Messages, "Experience is required")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		req := httptest.NewRequest(http.MethodPost, "/api/candidates", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateCandidate(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := setupRouter(mockUC)

	updated := sampleCandidate()
	updated.Role = "Staff Engineer"
	mockUC.On("Update", mock.Anything, updated.ID.String(), mock.AnythingOfType("*domain.CandidatePatch")).
		Return(updated, nil)

	w, env := perform(t, r, http.MethodPut, "/api/candidates/"+updated.ID.String(), gin.H{"role": "Staff Engineer"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Candidate updated successfully", env.Message)

	patch := mockUC.Calls[0].Arguments.Get(2).(*domain.CandidatePatch)
	require.NotNil(t, patch.Role)
	assert.Equal(t, "Staff Engineer", *patch.Role)
	assert.Nil(t, patch.Name)
}

func TestUpdateCandidateStatus(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		moved := sampleCandidate()
		moved.Status = domain.StatusOffer
		mockUC.On("UpdateStatus", mock.Anything, moved.ID.String(), "offer").Return(moved, nil)

		w, env := perform(t, r, http.MethodPatch, "/api/candidates/"+moved.ID.String()+"/status", gin.H{"status": "offer"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Candidate status updated to offer", env.Message)
	})

	t.Run("invalid status", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		id := uuid.NewString()
		mockUC.On("UpdateStatus", mock.Anything, id, "withdrawn").
			Return(nil, apperror.BadRequest("Invalid status. Must be one of: "+domain.StatusList()))

		w, env := perform(t, r, http.MethodPatch, "/api/candidates/"+id+"/status", gin.H{"status": "withdrawn"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Error, "Invalid status")
	})
}

func TestDeleteCandidate(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		id := uuid.NewString()
		mockUC.On("Delete", mock.Anything, id).Return(nil)

		w, env := perform(t, r, http.MethodDelete, "/api/candidates/"+id, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Candidate deleted successfully", env.Message)
	})

	t.Run("not found", func(t *testing.T) {
		mockUC := new(MockCandidateUsecase)
		r := setupRouter(mockUC)

		id := uuid.NewString()
		mockUC.On("Delete", mock.Anything, id).Return(apperror.NotFound("Candidate not found"))

		w, env := perform(t, r, http.MethodDelete, "/api/candidates/"+id, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
	})
}

func TestListByStatusRoute(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := setupRouter(mockUC)

	mockUC.On("ListByStatus", mock.Anything, "offer", 2, 10).
		Return([]domain.Candidate{}, domain.Pagination{Page: 2, Limit: 10, Total: 11, Pages: 2}, nil)

	w, env := perform(t, r, http.MethodGet, "/api/candidates/status/offer?page=2&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Pages)
}

func TestAnalyticsOverviewRoute(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := setupRouter(mockUC)

	mockUC.On("Overview", mock.Anything).Return(&domain.AnalyticsOverview{
		TotalCandidates: 42,
		AvgExperience:   5.2,
		RecentActivity:  9,
		StatusDistribution: []domain.StatusCount{
			{Status: domain.StatusApplied, Count: 30, AvgExperience: 4.1},
		},
		RoleDistribution: []domain.RoleCount{
			{Role: "Backend Engineer", Count: 18},
		},
	}, nil)

	w, env := perform(t, r, http.MethodGet, "/api/candidates/analytics/overview", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, float64(42), data["totalCandidates"])
	assert.Equal(t, 5.2, data["avgExperience"])
	assert.Equal(t, float64(9), data["recentActivity"])
}

func TestAnalyticsExperienceRoute(t *testing.T) {
	mockUC := new(MockCandidateUsecase)
	r := setupRouter(mockUC)

	mockUC.On("ExperienceByRole", mock.Anything).Return([]domain.RoleExperience{
		{
			Role:  "Backend Engineer",
			Count: 6,
			Distribution: []domain.ExperienceBucket{
				{Range: "0-2", Count: 1},
				{Range: "3-5", Count: 2},
				{Range: "6+", Count: 3},
			},
		},
	}, nil)

	w, env := perform(t, r, http.MethodGet, "/api/candidates/analytics/experience", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var data []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Backend Engineer", data[0]["role"])
}
