package user

import (
	"database/sql"
)

const userFields = "`id`, `email`, `first_name`, `last_name`, `bio`, `avatar`, `password`, `follow_count`, `followed_count`"

type UserRepoSQL struct {
	db *sql.DB
}

func NewUserRepoSQL(db *sql.DB) *UserRepoSQL {
	return &UserRepoSQL{db: db}
}

func (repo *UserRepoSQL) GetByID(id int64) (*User, error) {
	query := "SELECT " + userFields + " FROM users WHERE id = ?"
	return repo.getBy(query, id)
}

func (repo *UserRepoSQL) GetByEmail(email string) (*User, error) {
	query := "SELECT " + userFields + " FROM users WHERE email = ?"
	return repo.getBy(query, email)
}

func (repo *UserRepoSQL) getBy(query string, param interface{}) (*User, error) {
	r := repo.db.QueryRow(query, param)

	u := User{}
	err := r.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Bio, &u.Avatar,
		&u.Password, &u.FollowCount, &u.FollowedCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (repo *UserRepoSQL) Add(u *User) (int64, error) {
	query := "INSERT INTO users (`email`, `first_name`, `last_name`, `bio`, `avatar`, `password`) VALUES (?, ?, ?, ?, ?, ?)"
	r, err := repo.db.Exec(query, u.Email, u.FirstName, u.LastName, u.Bio, u.Avatar, u.Password)
	if err != nil {
		return 0, err
	}

	lastID, err := r.LastInsertId()
	if err != nil {
		return 0, err
	}

	return lastID, nil
}

// UpdateProfile touches only the profile fields, never the counters or the
// credential columns. Counter updates belong to the follow repo.
func (repo *UserRepoSQL) UpdateProfile(id int64, firstName, lastName, bio, avatar string) error {
	query := "UPDATE users SET `first_name` = ?, `last_name` = ?, `bio` = ?, `avatar` = ? WHERE id = ?"
	_, err := repo.db.Exec(query, firstName, lastName, bio, avatar, id)

	return err
}
