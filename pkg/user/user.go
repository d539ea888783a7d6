package user

type User struct {
	ID            int64
	Email         string
	FirstName     string
	LastName      string
	Bio           string
	Avatar        string
	Password      []byte
	FollowCount   int64
	FollowedCount int64
}
