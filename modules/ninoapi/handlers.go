package ninoapi

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/nino/handler"
	"github.com/dmitrymomot/nino/pkg/logger"
	"github.com/dmitrymomot/nino/pkg/nino"
	"github.com/dmitrymomot/nino/pkg/validator"
)

const fieldNINO = "nino"

// Request is the body of POST /check and POST /parse.
type Request struct {
	NINO string `json:"nino"`
	// Strict overrides RouterOptions.Strict when set.
	Strict *bool `json:"strict,omitempty"`
}

// WeekdayRequest is bound from GET /weekday/{nino}?strict=.
type WeekdayRequest struct {
	NINO   string `path:"nino" query:"-"`
	Strict *bool  `path:"-" query:"strict"`
}

// CheckResult is the data of POST /check.
type CheckResult struct {
	Valid       bool   `json:"valid"`
	StrictValid bool   `json:"strict_valid"`
	Mode        string `json:"mode"`
	// OK reports validity under the requested mode.
	OK bool `json:"ok"`
}

// ParseResult is the data of POST /parse.
type ParseResult struct {
	Canonical       string `json:"canonical"`
	StrictCanonical string `json:"strict_canonical"`
	Display         string `json:"display"`
	Body            string `json:"body"`
	Suffix          string `json:"suffix"`
	Weekday         string `json:"weekday"`
}

// WeekdayResult is the data of GET /weekday/{nino}.
type WeekdayResult struct {
	Weekday string `json:"weekday"`
	Day     int    `json:"day"`
}

type handlers struct {
	log    *slog.Logger
	strict bool
	checks CheckRecorder
}

func (h *handlers) mode(override *bool) bool {
	if override != nil {
		return *override
	}
	return h.strict
}

func (h *handlers) check(ctx handler.Context, req Request) handler.Response {
	if err := validator.Apply(validator.RequiredString(fieldNINO, req.NINO)); err != nil {
		return handler.JSONError(err)
	}

	strict := h.mode(req.Strict)
	res := CheckResult{
		Valid:       nino.IsValid(req.NINO),
		StrictValid: nino.IsValidStrict(req.NINO),
		Mode:        modeName(strict),
	}
	res.OK = res.Valid
	if strict {
		res.OK = res.StrictValid
	}
	h.checks.ObserveCheck(res.Mode, res.OK)

	h.log.InfoContext(ctx, "nino checked",
		logger.NINO(req.NINO),
		logger.Mode(strict),
		logger.Valid(res.OK),
	)
	return handler.JSON(res)
}

func (h *handlers) parse(ctx handler.Context, req Request) handler.Response {
	strict := h.mode(req.Strict)
	if err := validator.First(
		validator.RequiredString(fieldNINO, req.NINO),
		formatRule(strict, req.NINO),
	); err != nil {
		h.checks.ObserveCheck(modeName(strict), false)
		h.log.InfoContext(ctx, "nino rejected",
			logger.NINO(req.NINO),
			logger.Mode(strict),
			logger.Valid(false),
		)
		return handler.JSONError(err)
	}

	f, err := nino.New(req.NINO)
	if err != nil {
		return handler.JSONError(err)
	}
	strictCanonical, err := nino.StrictCanonicalForm(req.NINO)
	if err != nil {
		return handler.JSONError(err)
	}
	display, err := nino.Display(req.NINO)
	if err != nil {
		return handler.JSONError(err)
	}
	day, err := f.Weekday()
	if err != nil {
		return handler.JSONError(err)
	}

	h.checks.ObserveCheck(modeName(strict), true)
	h.log.InfoContext(ctx, "nino parsed",
		logger.NINO(req.NINO),
		logger.Mode(strict),
		logger.Valid(true),
		logger.Weekday(day),
	)
	return handler.JSON(ParseResult{
		Canonical:       f.String(),
		StrictCanonical: strictCanonical,
		Display:         display,
		Body:            f.Body(),
		Suffix:          f.Suffix(),
		Weekday:         day.String(),
	})
}

func (h *handlers) weekday(ctx handler.Context, req WeekdayRequest) handler.Response {
	strict := h.mode(req.Strict)
	if err := validator.First(
		validator.RequiredString(fieldNINO, req.NINO),
		formatRule(strict, req.NINO),
	); err != nil {
		return handler.JSONError(err)
	}

	day, err := nino.WeekdayFor(req.NINO)
	if err != nil {
		return handler.JSONError(err)
	}

	h.log.DebugContext(ctx, "weekday resolved", logger.NINO(req.NINO), logger.Weekday(day))
	return handler.JSON(WeekdayResult{Weekday: day.String(), Day: int(day)})
}

func (h *handlers) limited(w http.ResponseWriter, r *http.Request) {
	h.log.WarnContext(r.Context(), "rate limit exceeded")
	_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
}

func formatRule(strict bool, value string) validator.Rule {
	if strict {
		return validator.ValidNINOStrict(fieldNINO, value)
	}
	return validator.ValidNINO(fieldNINO, value)
}

func modeName(strict bool) string {
	if strict {
		return "strict"
	}
	return "lenient"
}
