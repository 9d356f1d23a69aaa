package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(api *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := api.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/analytics/overview", handler.AnalyticsOverview)
		candidates.GET("/analytics/experience", handler.AnalyticsExperience)
		candidates.GET("/status/:status", handler.ListByStatus)
		candidates.GET("/:id", handler.Get)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.PATCH("/:id/status", handler.UpdateStatus)
		candidates.DELETE("/:id", handler.Delete)
	}
}

type CreateCandidateRequest struct {
	Name        string     `json:"name" binding:"required,max=100"`
	Role        string     `json:"role" binding:"required,max=100"`
	Experience  *int       `json:"experience" binding:"required,min=0,max=50"`
	ResumeLink  string     `json:"resumeLink" binding:"required,resume_link"`
	Status      string     `json:"status" binding:"omitempty,candidate_status"`
	AppliedDate *time.Time `json:"appliedDate"`
	Notes       string     `json:"notes" binding:"max=1000"`
	Email       string     `json:"email" binding:"omitempty,basic_email"`
	Phone       string     `json:"phone" binding:"max=20"`
	Location    string     `json:"location" binding:"max=100"`
	Skills      []string   `json:"skills" binding:"dive,max=50"`
	Salary      *float64   `json:"salary" binding:"omitempty,gte=0"`
	Source      string     `json:"source" binding:"max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CandidateResponse adds the derived display fields. They are computed here,
// at the response boundary, so the persisted record stays canonical.
type CandidateResponse struct {
	domain.Candidate
	FormattedAppliedDate string `json:"formattedAppliedDate"`
	StatusDisplay        string `json:"statusDisplay"`
}

func shapeCandidate(c domain.Candidate) CandidateResponse {
	return CandidateResponse{
		Candidate:            c,
		FormattedAppliedDate: c.AppliedDate.Format("1/2/2006"),
		StatusDisplay:        c.Status.Display(),
	}
}

func shapeCandidates(candidates []domain.Candidate) []CandidateResponse {
	shaped := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		shaped = append(shaped, shapeCandidate(c))
	}
	return shaped
}

func bindError(c *gin.Context, err error) {
	if ve, ok := err.(validator.ValidationErrors); ok {
		c.Error(apperror.Validation(validation.FormatValidationErrors(ve)))
		return
	}
	c.Error(apperror.BadRequest("Invalid request body"))
}

// List godoc
// @Summary      List candidates
// @Description  Get candidates with filtering, searching, sorting and pagination
// @Tags         candidates
// @Produce      json
// @Param        status     query     string  false  "Filter by status (applied/interview/offer/rejected, or all)"
// @Param        search     query     string  false  "Case-insensitive substring search over name, role and email"
// @Param        sortBy     query     string  false  "Sort field (default appliedDate)"
// @Param        sortOrder  query     string  false  "asc or desc (default desc)"
// @Param        page       query     int     false  "Page number (1-indexed)"
// @Param        limit      query     int     false  "Page size (default 50)"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	query := domain.ListQuery{
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "appliedDate"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		Limit:     limit,
	}

	candidates, pagination, err := h.candidateUC.List(c, query)
	if err != nil {
		c.Error(err)
		return
	}

	response.Page(c, http.StatusOK, shapeCandidates(candidates), pagination)
}

// Get godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.GetByID(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", shapeCandidate(*candidate))
}

// Create godoc
// @Summary      Create a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      CreateCandidateRequest  true  "Candidate JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	candidate := &domain.Candidate{
		Name:       req.Name,
		Role:       req.Role,
		Experience: *req.Experience,
		ResumeLink: req.ResumeLink,
		Status:     domain.Status(req.Status),
		Notes:      req.Notes,
		Email:      req.Email,
		Phone:      req.Phone,
		Location:   req.Location,
		Skills:     req.Skills,
		Salary:     req.Salary,
		Source:     req.Source,
	}
	if req.AppliedDate != nil {
		candidate.AppliedDate = *req.AppliedDate
	}

	if err := h.candidateUC.Create(c, candidate); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidate created successfully", shapeCandidate(*candidate))
}

// Update godoc
// @Summary      Update a candidate
// @Description  Apply a full or partial update; the merged record is re-validated
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      string                true  "Candidate ID"
// @Param        candidate  body      domain.CandidatePatch  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		bindError(c, err)
		return
	}

	candidate, err := h.candidateUC.Update(c, c.Param("id"), &patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate updated successfully", shapeCandidate(*candidate))
}

// UpdateStatus godoc
// @Summary      Update candidate status
// @Description  Move a candidate to another pipeline stage
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Candidate ID"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/status [patch]
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	candidate, err := h.candidateUC.UpdateStatus(c, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate status updated to "+req.Status, shapeCandidate(*candidate))
}

// Delete godoc
// @Summary      Delete a candidate
// @Description  Permanently remove a candidate (hard delete)
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted successfully", nil)
}

// ListByStatus godoc
// @Summary      List candidates in one pipeline stage
// @Tags         candidates
// @Produce      json
// @Param        status  path      string  true   "applied, interview, offer or rejected"
// @Param        page    query     int     false  "Page number (1-indexed)"
// @Param        limit   query     int     false  "Page size (default 50)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /candidates/status/{status} [get]
func (h *CandidateHandler) ListByStatus(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	candidates, pagination, err := h.candidateUC.ListByStatus(c, c.Param("status"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Page(c, http.StatusOK, shapeCandidates(candidates), pagination)
}

// AnalyticsOverview godoc
// @Summary      Dashboard analytics
// @Description  Totals, average experience, 30-day activity, status and role distributions
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /candidates/analytics/overview [get]
func (h *CandidateHandler) AnalyticsOverview(c *gin.Context) {
	overview, err := h.candidateUC.Overview(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", overview)
}

// AnalyticsExperience godoc
// @Summary      Experience distribution by role
// @Description  Per-role candidate counts bucketed by years of experience
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /candidates/analytics/experience [get]
func (h *CandidateHandler) AnalyticsExperience(c *gin.Context) {
	distribution, err := h.candidateUC.ExperienceByRole(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", distribution)
}
