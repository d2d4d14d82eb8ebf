package repository

import (
	"context"
	"errors"

	"careerverse/internal/database"
	"careerverse/internal/domain/job"
	"careerverse/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobCatalogRepository serves the static posting catalog. Catalog
// order (the position column) is meaningful: the matcher's stable sort
// preserves it among equal scores.
type JobCatalogRepository interface {
	ListPostings(ctx context.Context) ([]job.Posting, error)
	ListPostingsByDomain(ctx context.Context, domain profile.CareerDomain) ([]job.Posting, error)
}

type PostgresJobCatalogRepository struct {
	db database.DB
}

func NewPostgresJobCatalogRepository(db database.DB) *PostgresJobCatalogRepository {
	return &PostgresJobCatalogRepository{db: db}
}

func (r *PostgresJobCatalogRepository) ListPostings(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(career_domain, ''), COALESCE(short_description, '')
		 FROM job_postings
		 ORDER BY position ASC`,
	)
	if err != nil {
		return nil, err
	}
	return r.scanPostings(ctx, rows)
}

func (r *PostgresJobCatalogRepository) ListPostingsByDomain(ctx context.Context, domain profile.CareerDomain) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(career_domain, ''), COALESCE(short_description, '')
		 FROM job_postings
		 WHERE career_domain = $1
		 ORDER BY position ASC`,
		string(domain),
	)
	if err != nil {
		return nil, err
	}
	return r.scanPostings(ctx, rows)
}

func (r *PostgresJobCatalogRepository) scanPostings(ctx context.Context, rows database.Rows) ([]job.Posting, error) {
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		var domain string
		if err := rows.Scan(&p.ID, &p.Title, &p.Company, &domain, &p.ShortDescription); err != nil {
			return nil, err
		}
		p.CareerDomain = profile.CareerDomain(domain)
		p.RequiredSkills = []string{}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachRequiredSkills(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobCatalogRepository) attachRequiredSkills(ctx context.Context, postings []job.Posting) error {
	if len(postings) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]int, len(postings))
	for i, p := range postings {
		index[p.ID] = i
	}

	rows, err := r.db.Query(ctx,
		`SELECT posting_id, skill
		 FROM job_posting_skills
		 ORDER BY posting_id, position ASC`,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postingID uuid.UUID
		var skill string
		if err := rows.Scan(&postingID, &skill); err != nil {
			return err
		}
		if i, ok := index[postingID]; ok {
			postings[i].RequiredSkills = append(postings[i].RequiredSkills, skill)
		}
	}
	return rows.Err()
}
