package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"dailydewey/internal/daily"
	"dailydewey/internal/metrics"
	"dailydewey/internal/validation"
)

// DailyHandler serves the daily classification pick.
type DailyHandler struct {
	picker *daily.Picker

	// now is the request clock. Injectable so tests can pin the day.
	now func() time.Time
}

// NewDailyHandler creates a new daily handler backed by the given store.
func NewDailyHandler(store daily.Repository) *DailyHandler {
	return &DailyHandler{
		picker: daily.NewPicker(store),
		now:    time.Now,
	}
}

// Daily handles GET /daily?hint={0..4}. The response is stable for the
// whole UTC day and carries cache headers that expire at the next UTC
// midnight.
func (h *DailyHandler) Daily(c fiber.Ctx) error {
	hint, ok := validation.ParseHint(c.Query("hint"))
	if !ok {
		return jsonValidationError(c, "hint", "hint must be an integer between 0 and 4")
	}

	now := h.now()

	result, err := h.picker.Pick(c.Context(), now)
	if err != nil {
		metrics.RecordPick(metrics.OutcomeError)
		slog.Error("daily pick failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "no classification available")
	}

	if result.Fallback {
		metrics.RecordPick(metrics.OutcomeFallback)
		slog.Warn("daily code missing, substituted arbitrary record",
			"code", daily.Pad3(strconv.Itoa(daily.SelectCode(now))),
			"substituted", result.Record.SectionCode)
	} else {
		metrics.RecordPick(metrics.OutcomeHit)
	}

	setCacheHeaders(c, now)

	return c.JSON(daily.BuildResponse(result.Record, hint, now))
}

// setCacheHeaders marks the response cacheable until the next UTC
// midnight, recomputed per request.
func setCacheHeaders(c fiber.Ctx, now time.Time) {
	maxAge := daily.SecondsUntilMidnightUTC(now)
	midnight := daily.NextMidnightUTC(now)

	c.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(maxAge)+", immutable")
	c.Set(fiber.HeaderExpires, midnight.Format(http.TimeFormat))
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderVary, "hint")
}
