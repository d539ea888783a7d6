package tags

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"photogram/pkg/posts"
)

const mysqlErrDupEntry = 1062

var (
	ErrNoPost   = errors.New("please attach post to tags")
	ErrTagLimit = fmt.Errorf("post can have up to %d tags", posts.MaxTagsCount)
)

type TagsRepoSQL struct {
	db *sql.DB
}

func NewTagsRepoSQL(db *sql.DB) *TagsRepoSQL {
	return &TagsRepoSQL{db: db}
}

// AttachToPost links the already-normalized tag name to the post, creating
// the tag row on first use. The whole read-check-write sequence runs in one
// transaction: the post row is locked so that concurrent attaches cannot
// push the post past the tag cap between the count and the insert.
func (repo *TagsRepoSQL) AttachToPost(ctx context.Context, name string, postID int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var pid int64
	err = tx.QueryRowContext(ctx, "SELECT `id` FROM posts WHERE id = ? FOR UPDATE", postID).Scan(&pid)
	if err == sql.ErrNoRows {
		return ErrNoPost
	}
	if err != nil {
		return err
	}

	tagID, err := getOrCreate(ctx, tx, name)
	if err != nil {
		return err
	}

	var attached int64
	err = tx.QueryRowContext(ctx, "SELECT `tag_id` FROM post_tags WHERE post_id = ? AND tag_id = ?", postID, tagID).Scan(&attached)
	if err == nil {
		// re-attaching the same tag is a no-op
		return tx.Commit()
	}
	if err != sql.ErrNoRows {
		return err
	}

	var count int64
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM post_tags WHERE post_id = ?", postID).Scan(&count)
	if err != nil {
		return err
	}

	if count >= posts.MaxTagsCount {
		return ErrTagLimit
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO post_tags (`post_id`, `tag_id`) VALUES (?, ?)", postID, tagID)
	if err != nil {
		if isDupEntry(err) {
			return tx.Commit()
		}
		return err
	}

	return tx.Commit()
}

// AttachAllToPost attaches each name and keeps going past failures, so one
// bad tag never blocks the rest; the collected errors are returned per name.
func (repo *TagsRepoSQL) AttachAllToPost(ctx context.Context, names []string, postID int64) []error {
	var failed []error
	for _, name := range names {
		if err := repo.AttachToPost(ctx, name, postID); err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", name, err))
		}
	}

	return failed
}

func (repo *TagsRepoSQL) ListByPostID(ctx context.Context, postID int64) ([]*Tag, error) {
	query := "SELECT t.`id`, t.`name` FROM tags t JOIN post_tags pt ON pt.tag_id = t.id WHERE pt.post_id = ? ORDER BY t.name"
	rows, err := repo.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Tag
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		result = append(result, t)
	}

	return result, rows.Err()
}

// getOrCreate collapses concurrent creation of the same name onto the unique
// index: a duplicate-key error means somebody else just created it, so look
// it up again.
func getOrCreate(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT `id` FROM tags WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, "INSERT INTO tags (`name`) VALUES (?)", name)
	if err != nil {
		if !isDupEntry(err) {
			return 0, err
		}

		err = tx.QueryRowContext(ctx, "SELECT `id` FROM tags WHERE name = ?", name).Scan(&id)
		return id, err
	}

	return res.LastInsertId()
}

func isDupEntry(err error) bool {
	mysqlErr, ok := err.(*mysql.MySQLError)
	return ok && mysqlErr.Number == mysqlErrDupEntry
}
