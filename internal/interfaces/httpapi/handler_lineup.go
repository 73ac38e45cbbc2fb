package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) SetLineupTitle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.SetLineupTitle")
	defer span.End()

	var req lineupTitleRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.session.SetLineupTitle(req.Title)
	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) AddLineupPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.AddLineupPlayer")
	defer span.End()

	var req lineupPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.session.AddLineupPlayer(req.Name); err != nil {
		h.logger.WarnContext(ctx, "add lineup player failed", "player", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) RemoveLineupPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.RemoveLineupPlayer")
	defer span.End()

	h.session.RemoveLineupPlayer(strings.TrimSpace(r.PathValue("name")))
	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) ReorderLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.ReorderLineup")
	defer span.End()

	var req lineupOrderRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.session.ReorderLineup(req.Names); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) SetBattingPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.SetBattingPosition")
	defer span.End()

	var req battingPositionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	name := strings.TrimSpace(r.PathValue("name"))
	if err := h.session.SetBattingPosition(name, req.Position); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, http.StatusOK)
}

func (h *Handler) ListAvailableForLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.ListAvailableForLineup")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(h.session.AvailableForLineup()))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startRouteSpan(r, "httpapi.Handler.SaveLineup")
	defer span.End()

	result, err := h.session.SaveLineup(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saveResultToDTO(result))
}
