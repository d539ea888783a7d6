package images

import (
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// DiskStorage writes post images under Root as
// post/<post id>/<random name>.jpg, the layout the media file server
// exposes.
type DiskStorage struct {
	Root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{Root: root}
}

// Save stores img as a JPEG and returns its name relative to Root.
func (s *DiskStorage) Save(postID int64, img image.Image) (string, error) {
	name := filepath.Join("post", strconv.FormatInt(postID, 10), uuid.New().String()+".jpg")

	path := filepath.Join(s.Root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := imaging.Save(img, path, imaging.JPEGQuality(90)); err != nil {
		return "", err
	}

	return name, nil
}

// Remove deletes every stored file of a post.
func (s *DiskStorage) Remove(postID int64) error {
	return os.RemoveAll(filepath.Join(s.Root, "post", strconv.FormatInt(postID, 10)))
}
