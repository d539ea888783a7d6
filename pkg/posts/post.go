package posts

import (
	"time"
)

// MaxTagsCount caps the number of tags a single post may carry.
const MaxTagsCount = 5

// FeedPageSize is how many posts one feed page holds.
const FeedPageSize = 3

type Post struct {
	ID       int64
	AuthorID int64
	Created  time.Time
}
