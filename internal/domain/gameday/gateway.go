package gameday

import "context"

// Gateway is the network boundary to the team server. Implementations do
// not retry; a failed save is reported and local state stays authoritative.
type Gateway interface {
	LoadSnapshot(ctx context.Context, gameID int64) (Snapshot, error)
	SaveLineup(ctx context.Context, id int64, payload LineupPayload) (SaveResult, error)
	SaveRotation(ctx context.Context, payload RotationPayload) (SaveResult, error)
}
