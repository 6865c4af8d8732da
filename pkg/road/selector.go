package road

// selector decides the kind of each generated segment: a turn after enough
// straights, never two turns in a row, turns alternating left then right.
type selector struct {
	straightsBeforeTurn int
	sinceTurn           int
	turns               int
}

func (s *selector) next(prev Kind) Kind {
	s.sinceTurn++
	if prev.IsTurn() {
		return Straight
	}
	if s.sinceTurn < s.straightsBeforeTurn {
		return Straight
	}
	s.sinceTurn = 0
	kind := LeftTurn
	if s.turns%2 == 1 {
		kind = RightTurn
	}
	s.turns++
	return kind
}

func (s *selector) reset() {
	s.sinceTurn = 0
	s.turns = 0
}
