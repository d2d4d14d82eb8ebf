package seeder

import (
	"context"
	"fmt"

	"careerverse/internal/database"
)

const createJobPostings = `
CREATE TABLE IF NOT EXISTS job_postings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	career_domain TEXT NOT NULL,
	short_description TEXT NOT NULL DEFAULT '',
	position INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (career_domain, title)
)`

const createJobPostingSkills = `
CREATE TABLE IF NOT EXISTS job_posting_skills (
	posting_id UUID NOT NULL REFERENCES job_postings(id) ON DELETE CASCADE,
	skill TEXT NOT NULL,
	position INT NOT NULL,
	PRIMARY KEY (posting_id, skill)
)`

func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if _, err := db.Exec(ctx, createJobPostings); err != nil {
		return fmt.Errorf("create job_postings: %w", err)
	}
	if _, err := db.Exec(ctx, createJobPostingSkills); err != nil {
		return fmt.Errorf("create job_posting_skills: %w", err)
	}
	return nil
}

func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
