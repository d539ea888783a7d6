package follow

import (
	"errors"
)

type Follow struct {
	ID         int64
	UserID     int64 // the follower
	FollowedID int64
}

var (
	ErrAlreadyFollowing = errors.New("already following")
	ErrNotFollowing     = errors.New("not following")
)
