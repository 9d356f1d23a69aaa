package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/logger"
	rediscache "go-ats-backend/pkg/redis"
	"go-ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 50
	topRolesLimit    = 10

	overviewCacheKey = "ats:analytics:overview"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
	cacheTTL time.Duration
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate, cacheTTL time.Duration) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
		cacheTTL: cacheTTL,
	}
}

// normalize trims free-text fields and lowercases email, mirroring what the
// persisted record is expected to look like.
func normalize(c *domain.Candidate) {
	c.Name = strings.TrimSpace(c.Name)
	c.Role = strings.TrimSpace(c.Role)
	c.ResumeLink = strings.TrimSpace(c.ResumeLink)
	c.Notes = strings.TrimSpace(c.Notes)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Location = strings.TrimSpace(c.Location)
	c.Source = strings.TrimSpace(c.Source)
	for i, s := range c.Skills {
		c.Skills[i] = strings.TrimSpace(s)
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
}

func (u *candidateUsecase) Create(ctx context.Context, c *domain.Candidate) error {
	now := time.Now()

	if c.Status == "" {
		c.Status = domain.StatusApplied
	}
	if c.AppliedDate.IsZero() {
		c.AppliedDate = now
	}
	normalize(c)

	if err := u.validate.Struct(c); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := u.repo.Create(ctx, c); err != nil {
		return err
	}
	u.invalidateOverview(ctx)
	return nil
}

func (u *candidateUsecase) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	// A malformed identifier is a NotFound, never a crash
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	c, err := u.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return c, nil
}

func (u *candidateUsecase) List(ctx context.Context, q domain.ListQuery) ([]domain.Candidate, domain.Pagination, error) {
	page, limit := normalizePage(q.Page, q.Limit)

	filter := domain.CandidateFilter{
		Search:    strings.TrimSpace(q.Search),
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	// "all" is the frontend's no-filter sentinel
	if q.Status != "" && q.Status != "all" {
		filter.Status = domain.Status(q.Status)
	}

	candidates, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return candidates, paginate(page, limit, total), nil
}

func (u *candidateUsecase) ListByStatus(ctx context.Context, status string, page, limit int) ([]domain.Candidate, domain.Pagination, error) {
	if !domain.Status(status).Valid() {
		return nil, domain.Pagination{}, apperror.BadRequest("Invalid status. Must be one of: " + domain.StatusList())
	}

	page, limit = normalizePage(page, limit)
	filter := domain.CandidateFilter{
		Status:    domain.Status(status),
		SortBy:    "appliedDate",
		SortOrder: "desc",
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	candidates, total, err := u.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return candidates, paginate(page, limit, total), nil
}

func (u *candidateUsecase) Update(ctx context.Context, id string, patch *domain.CandidatePatch) (*domain.Candidate, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	existing, err := u.repo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}

	applyPatch(existing, patch)
	normalize(existing)

	if err := u.validate.Struct(existing); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	existing.UpdatedAt = time.Now()
	if err := u.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	u.invalidateOverview(ctx)
	return existing, nil
}

func applyPatch(c *domain.Candidate, p *domain.CandidatePatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Role != nil {
		c.Role = *p.Role
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
	if p.ResumeLink != nil {
		c.ResumeLink = *p.ResumeLink
	}
	if p.Status != nil {
		c.Status = domain.Status(*p.Status)
	}
	if p.AppliedDate != nil {
		c.AppliedDate = *p.AppliedDate
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Skills != nil {
		c.Skills = *p.Skills
	}
	if p.Salary != nil {
		c.Salary = p.Salary
	}
	if p.Source != nil {
		c.Source = *p.Source
	}
}

func (u *candidateUsecase) UpdateStatus(ctx context.Context, id string, status string) (*domain.Candidate, error) {
	if !domain.Status(status).Valid() {
		return nil, apperror.BadRequest("Invalid status. Must be one of: " + domain.StatusList())
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound("Candidate not found")
	}

	c, err := u.repo.UpdateStatus(ctx, uid, domain.Status(status))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	u.invalidateOverview(ctx)
	return c, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.NotFound("Candidate not found")
	}

	if err := u.repo.Delete(ctx, uid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return err
	}
	u.invalidateOverview(ctx)
	return nil
}

func (u *candidateUsecase) Overview(ctx context.Context) (*domain.AnalyticsOverview, error) {
	if cached := u.cachedOverview(ctx); cached != nil {
		return cached, nil
	}

	total, err := u.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := u.repo.AverageExperience(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.repo.CountSince(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	byStatus, err := u.repo.AggregateByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := u.repo.AggregateByRole(ctx, topRolesLimit)
	if err != nil {
		return nil, err
	}

	overview := &domain.AnalyticsOverview{
		TotalCandidates:    total,
		AvgExperience:      avg,
		RecentActivity:     recent,
		StatusDistribution: byStatus,
		RoleDistribution:   byRole,
	}
	u.storeOverview(ctx, overview)
	return overview, nil
}

func (u *candidateUsecase) ExperienceByRole(ctx context.Context) ([]domain.RoleExperience, error) {
	return u.repo.AggregateExperienceByRole(ctx, topRolesLimit)
}

// Overview cache is best-effort: a missing or failing Redis never blocks the
// request, the aggregates are simply recomputed from Postgres.

func (u *candidateUsecase) cachedOverview(ctx context.Context) *domain.AnalyticsOverview {
	client := rediscache.Client()
	if client == nil {
		return nil
	}

	raw, err := client.Get(ctx, overviewCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var overview domain.AnalyticsOverview
	if err := json.Unmarshal(raw, &overview); err != nil {
		return nil
	}
	return &overview
}

func (u *candidateUsecase) storeOverview(ctx context.Context, overview *domain.AnalyticsOverview) {
	client := rediscache.Client()
	if client == nil {
		return
	}

	raw, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := client.Set(ctx, overviewCacheKey, raw, u.cacheTTL).Err(); err != nil {
		logger.Log.Warn("Failed to cache analytics overview", "error", err)
	}
}

func (u *candidateUsecase) invalidateOverview(ctx context.Context) {
	client := rediscache.Client()
	if client == nil {
		return
	}
	if err := client.Del(ctx, overviewCacheKey).Err(); err != nil {
		logger.Log.Warn("Failed to invalidate analytics overview cache", "error", err)
	}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

func paginate(page, limit int, total int64) domain.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return domain.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
