package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/coachboard/coachboard/internal/platform/logging"
	"github.com/coachboard/coachboard/internal/usecase"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

type Handler struct {
	session   *usecase.GamedaySession
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(session *usecase.GamedaySession, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		session:   session,
		logger:    logger.Named("httpapi"),
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a strict JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func inningFromPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("inning"))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: inning %q is not a number", usecase.ErrInvalidInput, raw)
	}
	return n, nil
}
