package seeder

import (
	"context"
	"fmt"

	"careerverse/internal/database"
)

type JobPostingsSeeder struct{}

func (JobPostingsSeeder) Name() string { return "job_postings" }

type postingSeed struct {
	Title            string
	Company          string
	CareerDomain     string
	ShortDescription string
	RequiredSkills   []string
}

// catalog is the default opportunity set, one cluster per career
// domain. Order matters: the matcher breaks score ties by catalog
// position.
var catalog = []postingSeed{
	{
		Title:            "Junior Software Developer",
		Company:          "Acme Tech",
		CareerDomain:     "software",
		ShortDescription: "Entry-level position at tech company. Basic programming and problem solving.",
		RequiredSkills:   []string{"Programming Languages", "Data Structures & Algorithms", "Version Control (Git)", "Problem Solving"},
	},
	{
		Title:            "Backend Engineering Intern",
		Company:          "Northwind Labs",
		CareerDomain:     "software",
		ShortDescription: "Internship on the platform team. Databases, testing, code review.",
		RequiredSkills:   []string{"Database Management", "Testing & Debugging", "Version Control (Git)"},
	},
	{
		Title:            "Junior UX Designer",
		Company:          "Studio North",
		CareerDomain:     "design",
		ShortDescription: "Work with a senior designer on product flows and design systems.",
		RequiredSkills:   []string{"Design Principles", "Design Tools (Figma, Adobe)", "Typography", "User Experience"},
	},
	{
		Title:            "Visual Design Assistant",
		Company:          "Brightside Agency",
		CareerDomain:     "design",
		ShortDescription: "Assist on brand and marketing collateral.",
		RequiredSkills:   []string{"Color Theory", "Typography", "Portfolio Creation"},
	},
	{
		Title:            "Junior Accountant",
		Company:          "Ledger & Co",
		CareerDomain:     "accounts",
		ShortDescription: "Entry-level accounting position. Basic bookkeeping and reports.",
		RequiredSkills:   []string{"Bookkeeping", "Financial Reporting", "Excel/Spreadsheets"},
	},
	{
		Title:            "Business Development Associate",
		Company:          "Forge Ventures",
		CareerDomain:     "business",
		ShortDescription: "Support market research and early-stage customer development.",
		RequiredSkills:   []string{"Market Research", "Business Planning", "Marketing & Sales"},
	},
	{
		Title:            "Line Cook",
		Company:          "The Copper Pan",
		CareerDomain:     "cooking",
		ShortDescription: "Entry-level kitchen position. Prepare ingredients, assist in cooking.",
		RequiredSkills:   []string{"Knife Skills", "Food Safety & Hygiene", "Cooking Techniques"},
	},
	{
		Title:            "Art Teacher Assistant",
		Company:          "Riverside Community Center",
		CareerDomain:     "painting",
		ShortDescription: "Part-time position helping with art classes.",
		RequiredSkills:   []string{"Sketching & Drawing", "Color Theory", "Composition"},
	},
	{
		Title:            "Medical Assistant",
		Company:          "Parkview Clinic",
		CareerDomain:     "medical",
		ShortDescription: "Support healthcare providers with administrative and clinical duties.",
		RequiredSkills:   []string{"Medical Knowledge", "Patient Care", "Communication"},
	},
	{
		Title:            "Career Exploration Program",
		Company:          "Pathways Institute",
		CareerDomain:     "general",
		ShortDescription: "Structured program for people still deciding on a direction.",
		RequiredSkills:   []string{"Self-Assessment", "Research Skills", "Networking"},
	},
}

func (JobPostingsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureSchema(ctx, db); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_postings", "id", "title", "company", "career_domain", "short_description", "position"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, p := range catalog {
		row := tx.QueryRow(ctx,
			`INSERT INTO job_postings (title, company, career_domain, short_description, position)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (career_domain, title) DO UPDATE SET position = EXCLUDED.position
			 RETURNING id`,
			p.Title, p.Company, p.CareerDomain, p.ShortDescription, i,
		)
		var id string
		if err := row.Scan(&id); err != nil {
			return err
		}

		for j, skill := range p.RequiredSkills {
			_, err := tx.Exec(ctx,
				`INSERT INTO job_posting_skills (posting_id, skill, position)
				 VALUES ($1, $2, $3)
				 ON CONFLICT (posting_id, skill) DO NOTHING`,
				id, skill, j,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
