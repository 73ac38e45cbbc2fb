package httpapi

import (
	"context"
	"net/http"
)

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.GetSession")
	defer span.End()

	h.writeSession(ctx, w, http.StatusOK)
}

// ReloadSession pulls a fresh snapshot from the team server, discarding
// unsaved local edits.
func (h *Handler) ReloadSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.ReloadSession")
	defer span.End()

	if err := h.session.Reload(ctx); err != nil {
		h.logger.WarnContext(ctx, "reload session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) GetPitchingSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.GetPitchingSummary")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, availabilityToDTO(h.session.PitchingSummary()))
}

func (h *Handler) GetPositionCounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.GetPositionCounts")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.session.PositionCounts())
}

func (h *Handler) writeSession(ctx context.Context, w http.ResponseWriter, status int) {
	writeSuccess(ctx, w, status, sessionToDTO(ctx, h.session.View()))
}
