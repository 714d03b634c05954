package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dailydewey/internal/models"
)

// GetByCode returns the classification row for a section code, or
// ErrClassificationNotFound when the slot has no row.
func (d *DB) GetByCode(ctx context.Context, code string) (*models.Classification, error) {
	rec := &models.Classification{}
	err := d.Pool.QueryRow(ctx, `
		SELECT section_code, section_description,
		       division_code, division_description,
		       main_class_code, main_class_description
		FROM classifications
		WHERE section_code = $1
	`, code).Scan(
		&rec.SectionCode, &rec.SectionDescription,
		&rec.DivisionCode, &rec.DivisionDescription,
		&rec.MainClassCode, &rec.MainClassDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassificationNotFound
		}
		return nil, fmt.Errorf("failed to get classification %s: %w", code, err)
	}
	return rec, nil
}

// GetRandom returns an arbitrary classification row, optionally
// skipping unassigned slots.
func (d *DB) GetRandom(ctx context.Context, excludeUnassigned bool) (*models.Classification, error) {
	query := `
		SELECT section_code, section_description,
		       division_code, division_description,
		       main_class_code, main_class_description
		FROM classifications
	`
	if excludeUnassigned {
		query += ` WHERE section_description NOT LIKE '%[Unassigned]%'`
	}
	query += ` ORDER BY random() LIMIT 1`

	rec := &models.Classification{}
	err := d.Pool.QueryRow(ctx, query).Scan(
		&rec.SectionCode, &rec.SectionDescription,
		&rec.DivisionCode, &rec.DivisionDescription,
		&rec.MainClassCode, &rec.MainClassDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassificationNotFound
		}
		return nil, fmt.Errorf("failed to get random classification: %w", err)
	}
	return rec, nil
}

// Search matches a query against all three hierarchy levels and
// returns each match with its level name and a display string.
func (d *DB) Search(ctx context.Context, query string, limit int) ([]models.SearchResult, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT code, title, level, display FROM (
			SELECT DISTINCT ON (main_class_code)
			       main_class_code AS code,
			       main_class_description AS title,
			       'main_class'::text AS level,
			       main_class_code || ' ' || main_class_description AS display
			FROM classifications
			WHERE main_class_description ILIKE '%' || $1 || '%'
			UNION ALL
			SELECT DISTINCT ON (division_code)
			       division_code, division_description, 'division'::text,
			       division_code || ' ' || division_description
			FROM classifications
			WHERE division_description ILIKE '%' || $1 || '%'
			UNION ALL
			SELECT section_code, section_description, 'section'::text,
			       section_code || ' ' || section_description
			FROM classifications
			WHERE section_description ILIKE '%' || $1 || '%'
		) matches
		ORDER BY code
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search classifications: %w", err)
	}
	defer rows.Close()

	var results []models.SearchResult
	for rows.Next() {
		var r models.SearchResult
		if err := rows.Scan(&r.Code, &r.Title, &r.Level, &r.Display); err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// SectionsByDivision returns all sections within a division, ordered
// by code.
func (d *DB) SectionsByDivision(ctx context.Context, divisionCode string) ([]models.HierarchyEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT section_code, section_description
		FROM classifications
		WHERE division_code = $1
		ORDER BY section_code
	`, divisionCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections for division %s: %w", divisionCode, err)
	}
	defer rows.Close()

	return scanHierarchy(rows)
}

// DivisionsByMainClass returns all divisions within a main class,
// ordered by code.
func (d *DB) DivisionsByMainClass(ctx context.Context, mainClassCode string) ([]models.HierarchyEntry, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT DISTINCT division_code, division_description
		FROM classifications
		WHERE main_class_code = $1
		ORDER BY division_code
	`, mainClassCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list divisions for main class %s: %w", mainClassCode, err)
	}
	defer rows.Close()

	return scanHierarchy(rows)
}

func scanHierarchy(rows pgx.Rows) ([]models.HierarchyEntry, error) {
	var entries []models.HierarchyEntry
	for rows.Next() {
		var e models.HierarchyEntry
		if err := rows.Scan(&e.Code, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan hierarchy entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountClassifications returns the number of loaded rows. Used by the
// health endpoint and startup diagnostics.
func (d *DB) CountClassifications(ctx context.Context) (int, error) {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT count(*) FROM classifications`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count classifications: %w", err)
	}
	return count, nil
}

// SeedClassifications inserts records, skipping section codes that
// already exist. Safe to run on every startup.
func (d *DB) SeedClassifications(ctx context.Context, records []models.Classification) error {
	query := `
		INSERT INTO classifications (
			section_code, section_description,
			division_code, division_description,
			main_class_code, main_class_description
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (section_code) DO NOTHING
	`

	for _, rec := range records {
		if _, err := d.Pool.Exec(ctx, query,
			rec.SectionCode, rec.SectionDescription,
			rec.DivisionCode, rec.DivisionDescription,
			rec.MainClassCode, rec.MainClassDescription,
		); err != nil {
			return fmt.Errorf("failed to seed classification %s: %w", rec.SectionCode, err)
		}
	}

	return nil
}
