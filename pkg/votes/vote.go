package votes

type Vote struct {
	ID     int64
	UserID int64
	PostID int64
	Value  bool
}

// State is what a (user, post) pair ends up with after a Cast.
type State int8

const (
	None State = iota
	Liked
	Disliked
)

func stateOf(value bool) State {
	if value {
		return Liked
	}

	return Disliked
}

func (s State) String() string {
	switch s {
	case Liked:
		return "liked"
	case Disliked:
		return "disliked"
	}

	return "none"
}
