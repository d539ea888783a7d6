package posts

import (
	"context"
	"database/sql"
)

type PostsRepoSQL struct {
	db *sql.DB
}

func NewPostsRepoSQL(db *sql.DB) *PostsRepoSQL {
	return &PostsRepoSQL{db: db}
}

func (repo *PostsRepoSQL) GetByID(ctx context.Context, id int64) (*Post, error) {
	query := "SELECT `id`, `user_id`, `created` FROM posts WHERE id = ?"
	r := repo.db.QueryRowContext(ctx, query, id)

	p := Post{}
	err := r.Scan(&p.ID, &p.AuthorID, &p.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetFeed returns one page of posts, newest first.
func (repo *PostsRepoSQL) GetFeed(ctx context.Context, limit, offset int) ([]*Post, error) {
	query := "SELECT `id`, `user_id`, `created` FROM posts ORDER BY id DESC LIMIT ? OFFSET ?"
	return repo.getList(ctx, query, limit, offset)
}

func (repo *PostsRepoSQL) GetByAuthorID(ctx context.Context, authorID int64) ([]*Post, error) {
	query := "SELECT `id`, `user_id`, `created` FROM posts WHERE user_id = ? ORDER BY id DESC"
	return repo.getList(ctx, query, authorID)
}

func (repo *PostsRepoSQL) getList(ctx context.Context, query string, args ...interface{}) ([]*Post, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Post
	for rows.Next() {
		p := &Post{}
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Created); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (repo *PostsRepoSQL) Add(ctx context.Context, p *Post) (int64, error) {
	query := "INSERT INTO posts (`user_id`, `created`) VALUES (?, ?)"
	r, err := repo.db.ExecContext(ctx, query, p.AuthorID, p.Created)
	if err != nil {
		return 0, err
	}

	return r.LastInsertId()
}

func (repo *PostsRepoSQL) Delete(ctx context.Context, id int64) (bool, error) {
	r, err := repo.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, err := r.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
