package rotation

import (
	"strconv"

	"github.com/coachboard/coachboard/internal/domain/gameday"
)

// FromRecord parses a stored rotation. Position labels are normalised the
// same way user input is.
func FromRecord(rec gameday.RotationRecord) (*Rotation, error) {
	innings := make(map[int]Inning, len(rec.Innings))
	for n, slots := range rec.Innings {
		in := make(Inning, len(slots))
		for label, player := range slots {
			pos, err := ParsePosition(label)
			if err != nil {
				return nil, err
			}
			in[pos] = player
		}
		innings[n] = in
	}
	return FromInnings(rec.ID, rec.Title, rec.AssociatedGameID, innings)
}

// Payload is the body sent to save_rotation.
func (r *Rotation) Payload() gameday.RotationPayload {
	innings := make(map[string]map[string]string, len(r.innings))
	for n, in := range r.innings {
		slots := make(map[string]string, len(in))
		for pos, player := range in {
			slots[pos.String()] = player
		}
		innings[strconv.Itoa(n)] = slots
	}
	return gameday.RotationPayload{
		ID:               r.ID,
		Title:            r.Title,
		Innings:          innings,
		AssociatedGameID: r.AssociatedGameID,
	}
}
