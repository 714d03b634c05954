// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"sort"
	"strings"

	"dailydewey/internal/db"
	"dailydewey/internal/models"
)

// FixtureStore is an in-memory read-only store keyed by section code.
// It stands in for the database in handler and core tests.
type FixtureStore struct {
	Records map[string]models.Classification

	// PingErr makes Ping fail, simulating a lost database.
	PingErr error
}

// NewFixtureStore builds a store from the given records.
func NewFixtureStore(records ...models.Classification) *FixtureStore {
	m := make(map[string]models.Classification, len(records))
	for _, r := range records {
		m[r.SectionCode] = r
	}
	return &FixtureStore{Records: m}
}

// Record builds a classification with division and main class codes
// derived from the section code, matching the table convention.
func Record(section, sectionDesc, divisionDesc, mainClassDesc string) models.Classification {
	return models.Classification{
		SectionCode:          section,
		SectionDescription:   sectionDesc,
		DivisionCode:         section[:2] + "0",
		DivisionDescription:  divisionDesc,
		MainClassCode:        section[:1] + "00",
		MainClassDescription: mainClassDesc,
	}
}

// GetByCode implements daily.Repository.
func (s *FixtureStore) GetByCode(_ context.Context, code string) (*models.Classification, error) {
	rec, ok := s.Records[code]
	if !ok {
		return nil, db.ErrClassificationNotFound
	}
	return &rec, nil
}

// GetRandom implements daily.Repository. Deterministic for tests: the
// lowest-coded matching record is returned.
func (s *FixtureStore) GetRandom(_ context.Context, excludeUnassigned bool) (*models.Classification, error) {
	for _, code := range s.sortedCodes() {
		rec := s.Records[code]
		if excludeUnassigned && rec.IsUnassigned() {
			continue
		}
		return &rec, nil
	}
	return nil, db.ErrClassificationNotFound
}

// Search implements the store surface used by the search handler.
func (s *FixtureStore) Search(_ context.Context, query string, limit int) ([]models.SearchResult, error) {
	q := strings.ToLower(query)
	var results []models.SearchResult
	for _, code := range s.sortedCodes() {
		rec := s.Records[code]
		if strings.Contains(strings.ToLower(rec.SectionDescription), q) {
			results = append(results, models.SearchResult{
				Code:    rec.SectionCode,
				Title:   rec.SectionDescription,
				Level:   "section",
				Display: rec.SectionCode + " " + rec.SectionDescription,
			})
		}
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// SectionsByDivision implements the store surface used by the browse handler.
func (s *FixtureStore) SectionsByDivision(_ context.Context, divisionCode string) ([]models.HierarchyEntry, error) {
	var entries []models.HierarchyEntry
	for _, code := range s.sortedCodes() {
		rec := s.Records[code]
		if rec.DivisionCode == divisionCode {
			entries = append(entries, models.HierarchyEntry{Code: rec.SectionCode, Description: rec.SectionDescription})
		}
	}
	return entries, nil
}

// DivisionsByMainClass implements the store surface used by the browse handler.
func (s *FixtureStore) DivisionsByMainClass(_ context.Context, mainClassCode string) ([]models.HierarchyEntry, error) {
	seen := make(map[string]bool)
	var entries []models.HierarchyEntry
	for _, code := range s.sortedCodes() {
		rec := s.Records[code]
		if rec.MainClassCode == mainClassCode && !seen[rec.DivisionCode] {
			seen[rec.DivisionCode] = true
			entries = append(entries, models.HierarchyEntry{Code: rec.DivisionCode, Description: rec.DivisionDescription})
		}
	}
	return entries, nil
}

// Ping implements the store surface used by the health endpoints.
func (s *FixtureStore) Ping(_ context.Context) error {
	return s.PingErr
}

func (s *FixtureStore) sortedCodes() []string {
	codes := make([]string, 0, len(s.Records))
	for code := range s.Records {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
