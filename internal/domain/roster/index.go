package roster

import "strings"

// Index is a read-only roster snapshot keyed by player name, in roster order.
type Index struct {
	players []Player
	byName  map[string]int
}

// NewIndex drops absent players and blank names. When two players share a
// name the first one wins, since names are the identity everywhere else.
func NewIndex(players []Player, absentIDs []int64) *Index {
	absent := make(map[int64]struct{}, len(absentIDs))
	for _, id := range absentIDs {
		absent[id] = struct{}{}
	}

	idx := &Index{
		players: make([]Player, 0, len(players)),
		byName:  make(map[string]int, len(players)),
	}
	for _, p := range players {
		if _, skip := absent[p.ID]; skip && p.ID != 0 {
			continue
		}
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue
		}
		if _, dup := idx.byName[p.Name]; dup {
			continue
		}
		idx.byName[p.Name] = len(idx.players)
		idx.players = append(idx.players, p)
	}
	return idx
}

func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.players)
}

func (x *Index) Players() []Player {
	if x == nil {
		return nil
	}
	return append([]Player(nil), x.players...)
}

func (x *Index) Names() []string {
	if x == nil {
		return nil
	}
	out := make([]string, 0, len(x.players))
	for _, p := range x.players {
		out = append(out, p.Name)
	}
	return out
}

func (x *Index) Lookup(name string) (Player, bool) {
	if x == nil {
		return Player{}, false
	}
	i, ok := x.byName[strings.TrimSpace(name)]
	if !ok {
		return Player{}, false
	}
	return x.players[i], true
}

func (x *Index) Contains(name string) bool {
	_, ok := x.Lookup(name)
	return ok
}
