// Package daily implements the deterministic daily-pick core: mapping a
// calendar date to a classification code, resolving that code against a
// read-only store, and shaping the response for a given hint level.
package daily

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dailydewey/internal/models"
)

// Hint levels accepted by BuildResponse. Each level is a strict
// superset of the one below it.
const (
	HintNone      = 0 // codes only
	HintMainClass = 1 // + main class description
	HintDivision  = 2 // + division description
	HintMasked    = 3 // + masked section description
	HintFull      = 4 // + full section description
)

// ErrNoRecords is returned when neither the hash-derived code nor the
// random fallback yields a record. The store is empty or unreachable,
// which is a deployment error, not a recoverable condition.
var ErrNoRecords = errors.New("no classification records available")

// Repository is the read-only lookup collaborator. Implementations must
// be safe for concurrent use.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*models.Classification, error)
	GetRandom(ctx context.Context, excludeUnassigned bool) (*models.Classification, error)
}

// SelectCode maps a calendar date to a classification code in [0, 999].
// The date is rendered as a UTC ISO-8601 day string, MD5-hashed, and
// the first 8 hex digits are reduced modulo 1000. The exact hash and
// formatting are load-bearing: the same date must yield the same code
// in every process and across releases.
func SelectCode(date time.Time) int {
	day := date.UTC().Format("2006-01-02")
	sum := md5.Sum([]byte(day))
	hexDigest := hex.EncodeToString(sum[:])

	// First 8 hex chars always parse: the digest alphabet is [0-9a-f].
	n, _ := strconv.ParseUint(hexDigest[:8], 16, 64)
	return int(n % 1000)
}

// Picker resolves the daily code against an injected repository.
type Picker struct {
	store Repository
}

// NewPicker creates a Picker backed by the given repository.
func NewPicker(store Repository) *Picker {
	return &Picker{store: store}
}

// PickResult is the resolved record plus how it was obtained.
type PickResult struct {
	Record *models.Classification

	// Fallback is true when the hash-derived code had no row and an
	// arbitrary record was substituted instead.
	Fallback bool
}

// Pick returns the classification for the given date. If the derived
// code has no row (classification tables have unassigned gaps), an
// arbitrary record is silently substituted so the endpoint always
// answers with a real entry. Callers should treat the result as "a
// record for today", not a guaranteed-exact hash mapping.
func (p *Picker) Pick(ctx context.Context, date time.Time) (*PickResult, error) {
	code := Pad3(strconv.Itoa(SelectCode(date)))

	rec, err := p.store.GetByCode(ctx, code)
	if err == nil {
		// Normalize the key field: storage may hold "5" where the
		// canonical form is "005".
		rec.SectionCode = code
		return &PickResult{Record: rec}, nil
	}

	rec, err = p.store.GetRandom(ctx, false)
	if err != nil || rec == nil {
		return nil, fmt.Errorf("%w: daily code %s missing and fallback failed", ErrNoRecords, code)
	}
	rec.SectionCode = Pad3(rec.SectionCode)
	return &PickResult{Record: rec, Fallback: true}, nil
}

// Mask replaces every ASCII letter with an underscore, leaving digits,
// spaces, and punctuation intact. Word shapes stay visible through the
// preserved spacing, which is the point of the hint.
func Mask(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return '_'
		}
		return r
	}, s)
}

// Pad3 left-pads a code with zeros to exactly three characters.
func Pad3(s string) string {
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// BuildResponse shapes a record for the requested hint level. The three
// codes and the date are always present; each hint level adds fields on
// top of the previous one. The hint must already be validated to 0..4.
func BuildResponse(rec *models.Classification, hint int, date time.Time) map[string]any {
	resp := map[string]any{
		"date":       date.UTC().Format("2006-01-02"),
		"main_class": Pad3(rec.MainClassCode),
		"division":   Pad3(rec.DivisionCode),
		"section":    Pad3(rec.SectionCode),
	}

	if hint >= HintMainClass {
		resp["main_class_description"] = rec.MainClassDescription
	}
	if hint >= HintDivision {
		resp["division_description"] = rec.DivisionDescription
	}
	if hint >= HintMasked {
		resp["section_masked"] = Mask(rec.SectionDescription)
	}
	if hint >= HintFull {
		resp["section_description"] = rec.SectionDescription
	}

	return resp
}

// NextMidnightUTC returns the first instant of the next UTC day.
func NextMidnightUTC(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}

// SecondsUntilMidnightUTC returns the number of whole seconds between
// now and the next UTC midnight. The daily pick is stable until then,
// so responses are cacheable for exactly this long.
func SecondsUntilMidnightUTC(now time.Time) int {
	return int(NextMidnightUTC(now).Sub(now.UTC()).Seconds())
}
