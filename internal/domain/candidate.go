package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Status is the pipeline stage of a candidate. It is the single source of
// truth for the enum; store validation, handler validation and response
// shaping all consume it.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// Statuses returns all allowed status values in pipeline order.
func Statuses() []Status {
	return []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}
}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Display returns the human-readable label for the status.
func (s Status) Display() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusInterview:
		return "Interview"
	case StatusOffer:
		return "Offer"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// StatusList renders the allowed set for error messages.
func StatusList() string {
	parts := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}

type Candidate struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Role        string    `json:"role" validate:"required,max=100"`
	Experience  int       `json:"experience" validate:"min=0,max=50"`
	ResumeLink  string    `json:"resumeLink" validate:"required,resume_link"`
	Status      Status    `json:"status" validate:"required,candidate_status"`
	AppliedDate time.Time `json:"appliedDate"`
	Notes       string    `json:"notes,omitempty" validate:"max=1000"`
	Email       string    `json:"email,omitempty" validate:"omitempty,basic_email"`
	Phone       string    `json:"phone,omitempty" validate:"max=20"`
	Location    string    `json:"location,omitempty" validate:"max=100"`
	Skills      []string  `json:"skills" validate:"dive,max=50"`
	Salary      *float64  `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Source      string    `json:"source,omitempty" validate:"max=100"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CandidatePatch is a partial update. Nil fields keep their stored value;
// the merged record is re-validated before it is written.
type CandidatePatch struct {
	Name        *string    `json:"name"`
	Role        *string    `json:"role"`
	Experience  *int       `json:"experience"`
	ResumeLink  *string    `json:"resumeLink"`
	Status      *string    `json:"status"`
	AppliedDate *time.Time `json:"appliedDate"`
	Notes       *string    `json:"notes"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Location    *string    `json:"location"`
	Skills      *[]string  `json:"skills"`
	Salary      *float64   `json:"salary"`
	Source      *string    `json:"source"`
}

// CandidateFilter describes one store query: exact-match status filter,
// case-insensitive substring search over name/role/email, single-field sort
// and an offset/limit pagination window.
type CandidateFilter struct {
	Status    Status // empty = all statuses
	Search    string
	SortBy    string // JSON field name, whitelisted by the repository
	SortOrder string // "asc" or "desc" (default desc)
	Limit     int
	Offset    int
}

// ListQuery is the HTTP-level listing input before normalization.
type ListQuery struct {
	Status    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status        Status  `json:"status"`
	Count         int64   `json:"count"`
	AvgExperience float64 `json:"avgExperience"`
}

// RoleCount is one row of the per-role aggregation.
type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// ExperienceBucket is a count of candidates within an experience range.
type ExperienceBucket struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// RoleExperience carries the per-role experience distribution.
type RoleExperience struct {
	Role         string             `json:"role"`
	Count        int64              `json:"count"`
	Distribution []ExperienceBucket `json:"experienceDistribution"`
}

type AnalyticsOverview struct {
	TotalCandidates    int64         `json:"totalCandidates"`
	AvgExperience      float64       `json:"avgExperience"`
	RecentActivity     int64         `json:"recentActivity"`
	StatusDistribution []StatusCount `json:"statusDistribution"`
	RoleDistribution   []RoleCount   `json:"roleDistribution"`
}

type CandidateRepository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*Candidate, error)
	Fetch(ctx context.Context, filter CandidateFilter) ([]Candidate, int64, error)
	Update(ctx context.Context, c *Candidate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AggregateByStatus(ctx context.Context) ([]StatusCount, error)
	AggregateByRole(ctx context.Context, limit int) ([]RoleCount, error)
	AggregateExperienceByRole(ctx context.Context, limit int) ([]RoleExperience, error)
	CountAll(ctx context.Context) (int64, error)
	AverageExperience(ctx context.Context) (float64, error)
	CountSince(ctx context.Context, t time.Time) (int64, error)
}

type CandidateUsecase interface {
	List(ctx context.Context, q ListQuery) ([]Candidate, Pagination, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	Create(ctx context.Context, c *Candidate) error
	Update(ctx context.Context, id string, patch *CandidatePatch) (*Candidate, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Candidate, error)
	Delete(ctx context.Context, id string) error
	ListByStatus(ctx context.Context, status string, page, limit int) ([]Candidate, Pagination, error)
	Overview(ctx context.Context) (*AnalyticsOverview, error)
	ExperienceByRole(ctx context.Context) ([]RoleExperience, error)
}
