package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go-ats-backend/config"
	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/repository/postgres"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/database"
	"go-ats-backend/pkg/logger"
	"go-ats-backend/pkg/validation"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atsctl",
		Short: "Operational CLI for the applicant tracking backend",
	}
	rootCmd.AddCommand(seedCmd(), statsCmd())

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.Init()

	pool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	if err := postgres.InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample candidates for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			validate := validator.New()
			if err := validation.RegisterCandidateValidators(validate); err != nil {
				return err
			}
			uc := usecase.NewCandidateUsecase(postgres.NewCandidateRepository(pool), validate, time.Minute)

			for _, c := range sampleCandidates() {
				candidate := c
				if err := uc.Create(ctx, &candidate); err != nil {
					return fmt.Errorf("seeding %q: %w", candidate.Name, err)
				}
				fmt.Printf("  created %s (%s)\n", candidate.Name, candidate.Role)
			}

			color.Green("Seeded %d candidates", len(sampleCandidates()))
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print pipeline and role distributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			repo := postgres.NewCandidateRepository(pool)

			total, err := repo.CountAll(ctx)
			if err != nil {
				return err
			}
			byStatus, err := repo.AggregateByStatus(ctx)
			if err != nil {
				return err
			}
			byRole, err := repo.AggregateByRole(ctx, 10)
			if err != nil {
				return err
			}

			color.Cyan("\n=== Pipeline (%d candidates) ===", total)
			statusTable := tablewriter.NewWriter(os.Stdout)
			statusTable.SetHeader([]string{"Status", "Count", "Avg Experience"})
			for _, sc := range byStatus {
				statusTable.Append([]string{
					sc.Status.Display(),
					strconv.FormatInt(sc.Count, 10),
					fmt.Sprintf("%.1f", sc.AvgExperience),
				})
			}
			statusTable.Render()

			color.Cyan("\n=== Top Roles ===")
			roleTable := tablewriter.NewWriter(os.Stdout)
			roleTable.SetHeader([]string{"Role", "Count"})
			for _, rc := range byRole {
				roleTable.Append([]string{rc.Role, strconv.FormatInt(rc.Count, 10)})
			}
			roleTable.Render()

			return nil
		},
	}
}

func sampleCandidates() []domain.Candidate {
	salary := func(v float64) *float64 { return &v }
	daysAgo := func(d int) time.Time { return time.Now().AddDate(0, 0, -d) }

	return []domain.Candidate{
		{
			Name: "Sarah Chen", Role: "Frontend Engineer", Experience: 4,
			ResumeLink: "https://example.com/resumes/sarah-chen.pdf",
			Status:     domain.StatusInterview, AppliedDate: daysAgo(12),
			Email: "sarah.chen@example.com", Location: "Seattle, WA",
			Skills: []string{"React", "TypeScript", "CSS"}, Salary: salary(135000), Source: "LinkedIn",
		},
		{
			Name: "Marcus Webb", Role: "Backend Engineer", Experience: 7,
			ResumeLink: "https://example.com/resumes/marcus-webb.pdf",
			Status:     domain.StatusOffer, AppliedDate: daysAgo(30),
			Email: "marcus.webb@example.com", Location: "Austin, TX",
			Skills: []string{"Go", "Postgres", "Kubernetes"}, Salary: salary(160000), Source: "Referral",
		},
		{
			Name: "Priya Nair", Role: "Backend Engineer", Experience: 2,
			ResumeLink: "https://example.com/resumes/priya-nair.pdf",
			Status:     domain.StatusApplied, AppliedDate: daysAgo(3),
			Email: "priya.nair@example.com", Location: "Remote",
			Skills: []string{"Go", "Redis"}, Source: "Job Board",
		},
		{
			Name: "Tom Alvarez", Role: "Data Analyst", Experience: 1,
			ResumeLink: "https://example.com/resumes/tom-alvarez.pdf",
			Status:     domain.StatusApplied, AppliedDate: daysAgo(5),
			Email: "tom.alvarez@example.com", Location: "Chicago, IL",
			Skills: []string{"SQL", "Python"}, Source: "Job Board",
		},
		{
			Name: "Lena Fischer", Role: "Product Manager", Experience: 9,
			ResumeLink: "https://example.com/resumes/lena-fischer.pdf",
			Status:     domain.StatusInterview, AppliedDate: daysAgo(18),
			Email: "lena.fischer@example.com", Location: "New York, NY",
			Skills: []string{"Roadmapping", "Analytics"}, Salary: salary(150000), Source: "Referral",
		},
		{
			Name: "David Okafor", Role: "Frontend Engineer", Experience: 6,
			ResumeLink: "https://example.com/resumes/david-okafor.pdf",
			Status:     domain.StatusRejected, AppliedDate: daysAgo(45),
			Email: "david.okafor@example.com", Location: "Remote",
			Skills: []string{"Vue", "JavaScript"}, Source: "LinkedIn",
		},
		{
			Name: "Emily Zhao", Role: "DevOps Engineer", Experience: 5,
			ResumeLink: "https://example.com/resumes/emily-zhao.pdf",
			Status:     domain.StatusApplied, AppliedDate: daysAgo(1),
			Email: "emily.zhao@example.com", Location: "San Francisco, CA",
			Skills: []string{"Terraform", "AWS", "Docker"}, Salary: salary(155000), Source: "Company Website",
		},
		{
			Name: "James Park", Role: "Data Analyst", Experience: 3,
			ResumeLink: "https://example.com/resumes/james-park.pdf",
			Status:     domain.StatusInterview, AppliedDate: daysAgo(9),
			Email: "james.park@example.com", Location: "Denver, CO",
			Skills: []string{"SQL", "Tableau"}, Source: "Job Board",
		},
	}
}
