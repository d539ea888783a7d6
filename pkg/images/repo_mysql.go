package images

import (
	"context"
	"database/sql"
)

type ImagesRepoSQL struct {
	db *sql.DB
}

func NewImagesRepoSQL(db *sql.DB) *ImagesRepoSQL {
	return &ImagesRepoSQL{db: db}
}

// AddToPost inserts an image row, enforcing the per-post cap the same
// check-then-insert way the tag cap is enforced.
func (repo *ImagesRepoSQL) AddToPost(ctx context.Context, postID int64, file string) (int64, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var pid int64
	err = tx.QueryRowContext(ctx, "SELECT `id` FROM posts WHERE id = ? FOR UPDATE", postID).Scan(&pid)
	if err == sql.ErrNoRows {
		return 0, ErrNoPost
	}
	if err != nil {
		return 0, err
	}

	var count int64
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM images WHERE post_id = ?", postID).Scan(&count)
	if err != nil {
		return 0, err
	}

	if count >= MaxCountPerPost {
		return 0, ErrImageLimit
	}

	res, err := tx.ExecContext(ctx, "INSERT INTO images (`post_id`, `file`) VALUES (?, ?)", postID, file)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func (repo *ImagesRepoSQL) ListByPostID(ctx context.Context, postID int64) ([]*Image, error) {
	rows, err := repo.db.QueryContext(ctx, "SELECT `id`, `post_id`, `file` FROM images WHERE post_id = ? ORDER BY id", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Image
	for rows.Next() {
		img := &Image{}
		if err := rows.Scan(&img.ID, &img.PostID, &img.File); err != nil {
			return nil, err
		}
		result = append(result, img)
	}

	return result, rows.Err()
}
