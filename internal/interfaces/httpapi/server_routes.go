package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/session", handler.GetSession)
	mux.HandleFunc("POST /v1/session/reload", handler.ReloadSession)
	mux.HandleFunc("GET /v1/session/pitching", handler.GetPitchingSummary)
	mux.HandleFunc("GET /v1/session/position-counts", handler.GetPositionCounts)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("PUT /v1/session/lineup/title", handler.SetLineupTitle)
	mux.HandleFunc("POST /v1/session/lineup/players", handler.AddLineupPlayer)
	mux.HandleFunc("DELETE /v1/session/lineup/players/{name}", handler.RemoveLineupPlayer)
	mux.HandleFunc("PUT /v1/session/lineup/players/{name}/position", handler.SetBattingPosition)
	mux.HandleFunc("PUT /v1/session/lineup/order", handler.ReorderLineup)
	mux.HandleFunc("GET /v1/session/lineup/available", handler.ListAvailableForLineup)
	mux.HandleFunc("POST /v1/session/lineup/save", handler.SaveLineup)
}

func registerRotationRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/session/rotation/innings", handler.AddInning)
	mux.HandleFunc("DELETE /v1/session/rotation/innings/last", handler.RemoveLastInning)
	mux.HandleFunc("DELETE /v1/session/rotation/innings/{inning}", handler.RemoveInning)
	mux.HandleFunc("PUT /v1/session/rotation/current", handler.SelectInning)
	mux.HandleFunc("PUT /v1/session/rotation/innings/{inning}/positions/{position}", handler.AssignPosition)
	mux.HandleFunc("DELETE /v1/session/rotation/innings/{inning}/positions/{position}", handler.UnassignPosition)
	mux.HandleFunc("GET /v1/session/rotation/innings/{inning}/bench", handler.GetBench)
	mux.HandleFunc("GET /v1/session/rotation/summary", handler.GetPlayingTimeSummary)
	mux.HandleFunc("POST /v1/session/rotation/copy", handler.CopyInning)
	mux.HandleFunc("DELETE /v1/session/rotation/copy", handler.CancelCopy)
	mux.HandleFunc("POST /v1/session/rotation/paste", handler.PasteInnings)
	mux.HandleFunc("POST /v1/session/rotation/save", handler.SaveRotation)
	mux.HandleFunc("POST /v1/session/rotation/sync-lineup", handler.SyncLineupToRotation)
}
