package votes

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDupEntry = 1062

type VotesRepoSQL struct {
	db *sql.DB
}

func NewVotesRepoSQL(db *sql.DB) *VotesRepoSQL {
	return &VotesRepoSQL{db: db}
}

// Cast toggles the single vote row a (user, post) pair may have: no row
// creates one, a repeated value deletes it, a flipped value updates it in
// place. The row is locked for the whole read-check-write sequence; losing
// the insert race to a concurrent first vote degrades into the update path.
func (repo *VotesRepoSQL) Cast(ctx context.Context, userID, postID int64, value bool) (State, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return None, err
	}
	defer tx.Rollback()

	var id int64
	var current bool
	err = tx.QueryRowContext(ctx, "SELECT `id`, `vote` FROM votes WHERE user_id = ? AND post_id = ? FOR UPDATE",
		userID, postID).Scan(&id, &current)

	if err == sql.ErrNoRows {
		_, insErr := tx.ExecContext(ctx, "INSERT INTO votes (`user_id`, `post_id`, `vote`) VALUES (?, ?, ?)",
			userID, postID, value)
		if insErr == nil {
			if err := tx.Commit(); err != nil {
				return None, err
			}
			return stateOf(value), nil
		}

		if !isDupEntry(insErr) {
			return None, insErr
		}

		// somebody voted concurrently, treat it as an existing vote
		err = tx.QueryRowContext(ctx, "SELECT `id`, `vote` FROM votes WHERE user_id = ? AND post_id = ? FOR UPDATE",
			userID, postID).Scan(&id, &current)
	}

	if err != nil {
		return None, err
	}

	return toggle(ctx, tx, id, current, value)
}

func toggle(ctx context.Context, tx *sql.Tx, id int64, current, desired bool) (State, error) {
	if current == desired {
		// second click on the same action un-votes
		if _, err := tx.ExecContext(ctx, "DELETE FROM votes WHERE id = ?", id); err != nil {
			return None, err
		}
		if err := tx.Commit(); err != nil {
			return None, err
		}
		return None, nil
	}

	if _, err := tx.ExecContext(ctx, "UPDATE votes SET `vote` = ? WHERE id = ?", desired, id); err != nil {
		return None, err
	}
	if err := tx.Commit(); err != nil {
		return None, err
	}

	return stateOf(desired), nil
}

// CountByValue derives a post's like or dislike total; the counts are never
// stored redundantly.
func (repo *VotesRepoSQL) CountByValue(ctx context.Context, postID int64, value bool) (int64, error) {
	var count int64
	err := repo.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM votes WHERE post_id = ? AND vote = ?",
		postID, value).Scan(&count)

	return count, err
}

// GetByUserAndPost reports the caller's own vote, nil when there is none.
func (repo *VotesRepoSQL) GetByUserAndPost(ctx context.Context, userID, postID int64) (*Vote, error) {
	v := Vote{}
	err := repo.db.QueryRowContext(ctx, "SELECT `id`, `user_id`, `post_id`, `vote` FROM votes WHERE user_id = ? AND post_id = ?",
		userID, postID).Scan(&v.ID, &v.UserID, &v.PostID, &v.Value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func isDupEntry(err error) bool {
	mysqlErr, ok := err.(*mysql.MySQLError)
	return ok && mysqlErr.Number == mysqlErrDupEntry
}
