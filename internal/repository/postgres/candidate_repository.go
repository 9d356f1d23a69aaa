package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-ats-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const candidateColumns = `id, name, role, experience, resume_link, status, applied_date, notes, email, phone, location, skills, salary, source, created_at, updated_at`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Role, &c.Experience, &c.ResumeLink, &c.Status,
		&c.AppliedDate, &c.Notes, &c.Email, &c.Phone, &c.Location,
		pq.Array(&c.Skills), &c.Salary, &c.Source, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return &c, nil
}

func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	query := `INSERT INTO candidates (` + candidateColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Role, c.Experience, c.ResumeLink, c.Status,
		c.AppliedDate, c.Notes, c.Email, c.Phone, c.Location,
		pq.Array(c.Skills), c.Salary, c.Source, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *candidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, id))
}

// sortColumns whitelists the sortable fields by their JSON names. Anything
// else falls back to applied_date.
var sortColumns = map[string]string{
	"name":        "name",
	"role":        "role",
	"experience":  "experience",
	"status":      "status",
	"appliedDate": "applied_date",
	"email":       "email",
	"location":    "location",
	"salary":      "salary",
	"source":      "source",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

func buildWhere(filter domain.CandidateFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR role ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "applied_date"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", col, dir)
}

// escapeLike neutralizes LIKE metacharacters so search terms match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *candidateRepository) Fetch(ctx context.Context, filter domain.CandidateFilter) ([]domain.Candidate, int64, error) {
	where, args := buildWhere(filter)

	query := `SELECT ` + candidateColumns + ` FROM candidates` + where +
		orderClause(filter.SortBy, filter.SortOrder) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	// Total matches, independent of the pagination window
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

func (r *candidateRepository) Update(ctx context.Context, c *domain.Candidate) error {
	query := `UPDATE candidates SET
		name = $2,
		role = $3,
		experience = $4,
		resume_link = $5,
		status = $6,
		applied_date = $7,
		notes = $8,
		email = $9,
		phone = $10,
		location = $11,
		skills = $12,
		salary = $13,
		source = $14,
		updated_at = $15
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Role, c.Experience, c.ResumeLink, c.Status,
		c.AppliedDate, c.Notes, c.Email, c.Phone, c.Location,
		pq.Array(c.Skills), c.Salary, c.Source, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Candidate, error) {
	query := `UPDATE candidates SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + candidateColumns
	return scanCandidate(r.db.QueryRow(ctx, query, id, string(status)))
}

func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepository) AggregateByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	query := `SELECT status, COUNT(*), ROUND(AVG(experience)::numeric, 1)::float8
	          FROM candidates GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count, &sc.AvgExperience); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *candidateRepository) AggregateByRole(ctx context.Context, limit int) ([]domain.RoleCount, error) {
	// MIN(created_at) breaks count ties deterministically, stable on
	// insertion order
	query := `SELECT role, COUNT(*) AS cnt
	          FROM candidates
	          GROUP BY role
	          ORDER BY cnt DESC, MIN(created_at) ASC
	          LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []domain.RoleCount{}
	for rows.Next() {
		var rc domain.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}

func (r *candidateRepository) AggregateExperienceByRole(ctx context.Context, limit int) ([]domain.RoleExperience, error) {
	query := `SELECT role,
	                 COUNT(*) AS cnt,
	                 COUNT(*) FILTER (WHERE experience <= 2),
	                 COUNT(*) FILTER (WHERE experience BETWEEN 3 AND 5),
	                 COUNT(*) FILTER (WHERE experience >= 6)
	          FROM candidates
	          GROUP BY role
	          ORDER BY cnt DESC, MIN(created_at) ASC
	          LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.RoleExperience{}
	for rows.Next() {
		var re domain.RoleExperience
		var junior, mid, senior int64
		if err := rows.Scan(&re.Role, &re.Count, &junior, &mid, &senior); err != nil {
			return nil, err
		}
		re.Distribution = []domain.ExperienceBucket{
			{Range: "0-2", Count: junior},
			{Range: "3-5", Count: mid},
			{Range: "6+", Count: senior},
		}
		result = append(result, re)
	}
	return result, rows.Err()
}

func (r *candidateRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total)
	return total, err
}

func (r *candidateRepository) AverageExperience(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(ROUND(AVG(experience)::numeric, 1), 0)::float8 FROM candidates`).Scan(&avg)
	return avg, err
}

func (r *candidateRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates WHERE applied_date >= $1`, t).Scan(&count)
	return count, err
}
