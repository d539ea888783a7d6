package follow

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
)

const mysqlErrDupEntry = 1062

type FollowRepoSQL struct {
	db *sql.DB
}

func NewFollowRepoSQL(db *sql.DB) *FollowRepoSQL {
	return &FollowRepoSQL{db: db}
}

// Subscribe creates the follow edge and moves both denormalized counters in
// the same transaction, so `users.follow_count`/`users.followed_count` stay
// equal to the count of matching follow rows. A duplicate edge leaves the
// counters untouched.
func (repo *FollowRepoSQL) Subscribe(ctx context.Context, followerID, followedID int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "INSERT INTO follows (`user_id`, `followed_id`) VALUES (?, ?)",
		followerID, followedID)
	if err != nil {
		if isDupEntry(err) {
			return ErrAlreadyFollowing
		}
		return err
	}

	if err := repo.shiftCounters(ctx, tx, followerID, followedID, +1); err != nil {
		return err
	}

	return tx.Commit()
}

// Unsubscribe removes the follow edge and decrements both counters; a
// missing edge leaves the counters untouched.
func (repo *FollowRepoSQL) Unsubscribe(ctx context.Context, followerID, followedID int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM follows WHERE user_id = ? AND followed_id = ?",
		followerID, followedID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFollowing
	}

	if err := repo.shiftCounters(ctx, tx, followerID, followedID, -1); err != nil {
		return err
	}

	return tx.Commit()
}

func (repo *FollowRepoSQL) shiftCounters(ctx context.Context, tx *sql.Tx, followerID, followedID, delta int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE users SET `follow_count` = `follow_count` + ? WHERE id = ?",
		delta, followerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "UPDATE users SET `followed_count` = `followed_count` + ? WHERE id = ?",
		delta, followedID)

	return err
}

// IsFollowing reports whether the follow edge exists.
func (repo *FollowRepoSQL) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	var id int64
	err := repo.db.QueryRowContext(ctx, "SELECT `id` FROM follows WHERE user_id = ? AND followed_id = ?",
		followerID, followedID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func isDupEntry(err error) bool {
	mysqlErr, ok := err.(*mysql.MySQLError)
	return ok && mysqlErr.Number == mysqlErrDupEntry
}
