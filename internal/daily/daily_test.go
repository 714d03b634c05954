package daily

import (
	"context"
	"errors"
	"testing"
	"time"

	"dailydewey/internal/db"
	"dailydewey/internal/models"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestSelectCodePinnedValues(t *testing.T) {
	// Regression fixtures: first 8 hex chars of MD5(date) mod 1000.
	// These values must never change.
	tests := []struct {
		date time.Time
		want int
	}{
		{utcDate(2024, time.January, 1), 417},
		{utcDate(2024, time.June, 15), 381},
		{utcDate(2025, time.March, 7), 874},
		{utcDate(2023, time.November, 20), 259},
		{utcDate(2031, time.January, 13), 635},
	}

	for _, tt := range tests {
		if got := SelectCode(tt.date); got != tt.want {
			t.Errorf("SelectCode(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestSelectCodeDeterministic(t *testing.T) {
	d := utcDate(2024, time.January, 1)
	first := SelectCode(d)
	for i := 0; i < 100; i++ {
		if got := SelectCode(d); got != first {
			t.Fatalf("SelectCode not deterministic: got %d then %d", first, got)
		}
	}
}

func TestSelectCodeUsesUTCDay(t *testing.T) {
	// 2024-01-01 23:00 in UTC+2 is still 2024-01-01 21:00 UTC.
	tz := time.FixedZone("UTC+2", 2*3600)
	local := time.Date(2024, time.January, 1, 23, 0, 0, 0, tz)
	if got := SelectCode(local); got != 417 {
		t.Errorf("SelectCode in UTC+2 = %d, want 417 (UTC day 2024-01-01)", got)
	}

	// 2024-01-02 01:00 in UTC+2 is 2024-01-01 23:00 UTC.
	local = time.Date(2024, time.January, 2, 1, 0, 0, 0, tz)
	if got := SelectCode(local); got != 417 {
		t.Errorf("SelectCode shortly after local midnight = %d, want 417", got)
	}
}

func TestSelectCodeRange(t *testing.T) {
	d := utcDate(2020, time.January, 1)
	for i := 0; i < 2000; i++ {
		code := SelectCode(d.AddDate(0, 0, i))
		if code < 0 || code > 999 {
			t.Fatalf("SelectCode(%s) = %d, out of [0, 999]", d.AddDate(0, 0, i).Format("2006-01-02"), code)
		}
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"letters and digits", "Computer science, 2nd ed.", "________ _______, 2__ __."},
		{"empty", "", ""},
		{"digits and punctuation only", "635-2 (1999)", "635-2 (1999)"},
		{"all letters", "Agriculture", "___________"},
		{"mixed case", "AbC xYz", "___ ___"},
		{"unassigned marker", "[Unassigned]", "[__________]"},
		{"non-ascii preserved", "Café crème", "___é __è__"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mask(tt.in)
			if got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if len([]rune(got)) != len([]rune(tt.in)) {
				t.Errorf("Mask(%q) changed length", tt.in)
			}
		})
	}
}

func TestPad3(t *testing.T) {
	tests := []struct{ in, want string }{
		{"5", "005"},
		{"42", "042"},
		{"635", "635"},
		{"", "000"},
	}
	for _, tt := range tests {
		if got := Pad3(tt.in); got != tt.want {
			t.Errorf("Pad3(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func testRecord() *models.Classification {
	return &models.Classification{
		SectionCode:          "635",
		SectionDescription:   "Garden crops (Horticulture)",
		DivisionCode:         "630",
		DivisionDescription:  "Agriculture and related technologies",
		MainClassCode:        "600",
		MainClassDescription: "Technology",
	}
}

func TestBuildResponseFieldsPerLevel(t *testing.T) {
	date := utcDate(2031, time.January, 13)
	base := []string{"date", "main_class", "division", "section"}

	tests := []struct {
		hint int
		keys []string
	}{
		{HintNone, base},
		{HintMainClass, append(base[:4:4], "main_class_description")},
		{HintDivision, append(base[:4:4], "main_class_description", "division_description")},
		{HintMasked, append(base[:4:4], "main_class_description", "division_description", "section_masked")},
		{HintFull, append(base[:4:4], "main_class_description", "division_description", "section_masked", "section_description")},
	}

	for _, tt := range tests {
		resp := BuildResponse(testRecord(), tt.hint, date)
		if len(resp) != len(tt.keys) {
			t.Errorf("hint %d: got %d fields, want %d (%v)", tt.hint, len(resp), len(tt.keys), resp)
		}
		for _, k := range tt.keys {
			if _, ok := resp[k]; !ok {
				t.Errorf("hint %d: missing field %q", tt.hint, k)
			}
		}
	}
}

func TestBuildResponseCumulative(t *testing.T) {
	date := utcDate(2024, time.June, 15)
	rec := testRecord()

	for lo := HintNone; lo <= HintFull; lo++ {
		lower := BuildResponse(rec, lo, date)
		for hi := lo + 1; hi <= HintFull; hi++ {
			higher := BuildResponse(rec, hi, date)
			for k, v := range lower {
				got, ok := higher[k]
				if !ok {
					t.Errorf("hint %d field %q absent at hint %d", lo, k, hi)
					continue
				}
				if got != v {
					t.Errorf("field %q differs between hint %d (%v) and hint %d (%v)", k, lo, v, hi, got)
				}
			}
		}
	}
}

func TestBuildResponseValues(t *testing.T) {
	date := utcDate(2031, time.January, 13)
	resp := BuildResponse(testRecord(), HintFull, date)

	if resp["date"] != "2031-01-13" {
		t.Errorf("date = %v, want 2031-01-13", resp["date"])
	}
	if resp["main_class"] != "600" || resp["division"] != "630" || resp["section"] != "635" {
		t.Errorf("codes = %v/%v/%v, want 600/630/635", resp["main_class"], resp["division"], resp["section"])
	}
	if resp["section_masked"] != "______ _____ (____________)" {
		t.Errorf("section_masked = %q", resp["section_masked"])
	}
	if resp["section_description"] != "Garden crops (Horticulture)" {
		t.Errorf("section_description = %q", resp["section_description"])
	}
}

func TestBuildResponsePadsShortCodes(t *testing.T) {
	rec := &models.Classification{
		SectionCode:          "5",
		SectionDescription:   "x",
		DivisionCode:         "0",
		DivisionDescription:  "y",
		MainClassCode:        "0",
		MainClassDescription: "z",
	}
	resp := BuildResponse(rec, HintNone, utcDate(2024, time.January, 1))

	for _, k := range []string{"main_class", "division", "section"} {
		if s, ok := resp[k].(string); !ok || len(s) != 3 {
			t.Errorf("%s = %v, want 3-character string", k, resp[k])
		}
	}
	if resp["section"] != "005" {
		t.Errorf("section = %v, want 005", resp["section"])
	}
}

// fakeRepo is a minimal Repository for Picker tests.
type fakeRepo struct {
	byCode map[string]*models.Classification
	random *models.Classification
}

func (f *fakeRepo) GetByCode(_ context.Context, code string) (*models.Classification, error) {
	if rec, ok := f.byCode[code]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, db.ErrClassificationNotFound
}

func (f *fakeRepo) GetRandom(_ context.Context, _ bool) (*models.Classification, error) {
	if f.random == nil {
		return nil, db.ErrClassificationNotFound
	}
	cp := *f.random
	return &cp, nil
}

func TestPickDirectHit(t *testing.T) {
	// 2024-06-15 selects code 381.
	rec := testRecord()
	rec.SectionCode = "381" // storage key matches, formatting may differ
	repo := &fakeRepo{byCode: map[string]*models.Classification{"381": rec}}

	result, err := NewPicker(repo).Pick(context.Background(), utcDate(2024, time.June, 15))
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if result.Fallback {
		t.Error("Pick reported fallback on a direct hit")
	}
	if result.Record.SectionCode != "381" {
		t.Errorf("section code = %q, want 381", result.Record.SectionCode)
	}
}

func TestPickNormalizesStoredCode(t *testing.T) {
	// The store may hold an unpadded key field; the picker overwrites
	// it with the canonical padded query code.
	rec := testRecord()
	rec.SectionCode = "381 " // inconsistent storage formatting
	repo := &fakeRepo{byCode: map[string]*models.Classification{"381": rec}}

	result, err := NewPicker(repo).Pick(context.Background(), utcDate(2024, time.June, 15))
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if result.Record.SectionCode != "381" {
		t.Errorf("section code = %q, want normalized 381", result.Record.SectionCode)
	}
}

func TestPickFallsBackOnMiss(t *testing.T) {
	fallback := testRecord()
	repo := &fakeRepo{byCode: map[string]*models.Classification{}, random: fallback}

	result, err := NewPicker(repo).Pick(context.Background(), utcDate(2024, time.June, 15))
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if !result.Fallback {
		t.Error("Pick did not report fallback")
	}
	if result.Record.SectionCode != "635" {
		t.Errorf("fallback section code = %q, want 635", result.Record.SectionCode)
	}
	if result.Record.SectionDescription == "" {
		t.Error("fallback record has empty description")
	}
}

func TestPickFailsWhenStoreEmpty(t *testing.T) {
	repo := &fakeRepo{byCode: map[string]*models.Classification{}}

	_, err := NewPicker(repo).Pick(context.Background(), utcDate(2024, time.June, 15))
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("Pick error = %v, want ErrNoRecords", err)
	}
}

func TestSecondsUntilMidnightUTC(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"30s before midnight", time.Date(2024, time.January, 1, 23, 59, 30, 0, time.UTC), 30},
		{"exactly midnight", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 86400},
		{"noon", time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC), 43200},
		{"non-UTC input", time.Date(2024, time.January, 1, 22, 0, 0, 0, time.FixedZone("UTC+2", 2*3600)), 14400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecondsUntilMidnightUTC(tt.now); got != tt.want {
				t.Errorf("SecondsUntilMidnightUTC(%s) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestNextMidnightUTC(t *testing.T) {
	now := time.Date(2024, time.December, 31, 18, 30, 0, 0, time.UTC)
	got := NextMidnightUTC(now)
	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextMidnightUTC = %s, want %s", got, want)
	}
}
