package images

import (
	"errors"
	"fmt"
)

// MaxCountPerPost caps the images one post may carry.
const MaxCountPerPost = 10

type Image struct {
	ID     int64
	PostID int64
	File   string
}

var (
	ErrNoPost     = errors.New("please attach post to images")
	ErrImageLimit = fmt.Errorf("post can have up to %d images", MaxCountPerPost)
)
