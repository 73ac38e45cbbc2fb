package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) AddInning(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.AddInning")
	defer span.End()

	n := h.session.AddInning()
	h.logger.DebugContext(ctx, "inning added", "inning", n)
	h.writeSession(ctx, w, http.StatusCreated)
}

func (h *Handler) RemoveInning(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.RemoveInning")
	defer span.End()

	n, err := inningFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := h.session.RemoveInning(n); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) RemoveLastInning(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.RemoveLastInning")
	defer span.End()

	if _, err := h.session.RemoveLastInning(); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) SelectInning(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.SelectInning")
	defer span.End()

	var req selectInningRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.session.SelectInning(req.Inning); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) AssignPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.AssignPosition")
	defer span.End()

	n, err := inningFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req assignPositionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	position := strings.TrimSpace(r.PathValue("position"))
	if err := h.session.Assign(n, position, req.Player); err != nil {
		h.logger.WarnContext(ctx, "assign position failed", "inning", n, "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) UnassignPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.UnassignPosition")
	defer span.End()

	n, err := inningFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.session.Unassign(n, strings.TrimSpace(r.PathValue("position"))); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) GetBench(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.GetBench")
	defer span.End()

	n, err := inningFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	bench, err := h.session.Bench(n)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(bench))
}

func (h *Handler) GetPlayingTimeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.GetPlayingTimeSummary")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(h.session.Summary()))
}

func (h *Handler) CopyInning(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.CopyInning")
	defer span.End()

	var req copyInningRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.session.CopyInning(req.Source); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) PasteInnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.PasteInnings")
	defer span.End()

	var req pasteInningsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.session.PasteInnings(req.Destinations); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) CancelCopy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.CancelCopy")
	defer span.End()

	h.session.CancelCopy()
	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) SaveRotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.SaveRotation")
	defer span.End()

	result, err := h.session.SaveRotation(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "save rotation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saveResultToDTO(result))
}

// SyncLineupToRotation copies the lineup's batting positions into inning 1
// and saves the rotation.
func (h *Handler) SyncLineupToRotation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.SyncLineupToRotation")
	defer span.End()

	result, err := h.session.SyncLineupToRotation(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "sync lineup to rotation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saveResultToDTO(result))
}
