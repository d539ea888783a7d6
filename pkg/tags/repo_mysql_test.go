package tags

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var postID = int64(42)
var tagID = int64(7)
var tagName = "golang"

var dupErr = &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}

func newRepo(t *testing.T) (*TagsRepoSQL, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	return NewTagsRepoSQL(db), mock, func() { db.Close() }
}

func expectPostLocked(mock sqlmock.Sqlmock) {
	mock.
		ExpectQuery("SELECT `id` FROM posts WHERE").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(postID))
}

func expectTagFound(mock sqlmock.Sqlmock, name string, id int64) {
	mock.
		ExpectQuery("SELECT `id` FROM tags WHERE name").
		WithArgs(name).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
}

func expectTagCount(mock sqlmock.Sqlmock, count int64) {
	mock.
		ExpectQuery("SELECT COUNT(.+) FROM post_tags WHERE").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func expectNotAttached(mock sqlmock.Sqlmock, id int64) {
	mock.
		ExpectQuery("SELECT `tag_id` FROM post_tags WHERE").
		WithArgs(postID, id).
		WillReturnError(sql.ErrNoRows)
}

func TestAttachCreatesTag(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	expectPostLocked(mock)
	mock.
		ExpectQuery("SELECT `id` FROM tags WHERE name").
		WithArgs(tagName).
		WillReturnError(sql.ErrNoRows)
	mock.
		ExpectExec("INSERT INTO tags").
		WithArgs(tagName).
		WillReturnResult(sqlmock.NewResult(tagID, 1))
	expectNotAttached(mock, tagID)
	expectTagCount(mock, 0)
	mock.
		ExpectExec("INSERT INTO post_tags").
		WithArgs(postID, tagID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestAttachReusesExistingTag(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	expectPostLocked(mock)
	expectTagFound(mock, tagName, tagID)
	expectNotAttached(mock, tagID)
	expectTagCount(mock, 4)
	mock.
		ExpectExec("INSERT INTO post_tags").
		WithArgs(postID, tagID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttachIsIdempotent(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	expectPostLocked(mock)
	expectTagFound(mock, tagName, tagID)
	mock.
		ExpectQuery("SELECT `tag_id` FROM post_tags WHERE").
		WithArgs(postID, tagID).
		WillReturnRows(sqlmock.NewRows([]string{"tag_id"}).AddRow(tagID))
	mock.ExpectCommit()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != nil {
		t.Fatalf("re-attach must be a no-op, got error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestAttachRejectsOverCap(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	expectPostLocked(mock)
	expectTagFound(mock, tagName, tagID)
	expectNotAttached(mock, tagID)
	expectTagCount(mock, 5)
	mock.ExpectRollback()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != ErrTagLimit {
		t.Fatalf("expected ErrTagLimit, got %v", err)
	}
}

func TestAttachMissingPost(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	mock.
		ExpectQuery("SELECT `id` FROM posts WHERE").
		WithArgs(postID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != ErrNoPost {
		t.Fatalf("expected ErrNoPost, got %v", err)
	}
}

func TestAttachDuplicateRelationRace(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	expectPostLocked(mock)
	expectTagFound(mock, tagName, tagID)
	expectNotAttached(mock, tagID)
	expectTagCount(mock, 2)
	mock.
		ExpectExec("INSERT INTO post_tags").
		WithArgs(postID, tagID).
		WillReturnError(dupErr)
	mock.ExpectCommit()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != nil {
		t.Fatalf("concurrent duplicate attach must be a no-op, got: %v", err)
	}
}

func TestAttachTagCreationRace(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	mock.ExpectBegin()
	expectPostLocked(mock)
	mock.
		ExpectQuery("SELECT `id` FROM tags WHERE name").
		WithArgs(tagName).
		WillReturnError(sql.ErrNoRows)
	mock.
		ExpectExec("INSERT INTO tags").
		WithArgs(tagName).
		WillReturnError(dupErr)
	expectTagFound(mock, tagName, tagID)
	expectNotAttached(mock, tagID)
	expectTagCount(mock, 0)
	mock.
		ExpectExec("INSERT INTO post_tags").
		WithArgs(postID, tagID).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AttachToPost(context.Background(), tagName, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAttachAllSkipsFailedTag(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	// first tag goes over the cap
	mock.ExpectBegin()
	expectPostLocked(mock)
	expectTagFound(mock, "first", 1)
	expectNotAttached(mock, 1)
	expectTagCount(mock, 5)
	mock.ExpectRollback()

	// second tag still gets attached
	mock.ExpectBegin()
	expectPostLocked(mock)
	expectTagFound(mock, "second", 2)
	mock.
		ExpectQuery("SELECT `tag_id` FROM post_tags WHERE").
		WithArgs(postID, int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"tag_id"}).AddRow(2))
	mock.ExpectCommit()

	failed := repo.AttachAllToPost(context.Background(), []string{"first", "second"}, postID)
	if len(failed) != 1 {
		t.Fatalf("expected exactly one failure, got %v", failed)
	}
	if !errors.Is(failed[0], ErrTagLimit) {
		t.Fatalf("expected wrapped ErrTagLimit, got %v", failed[0])
	}
}

func TestListByPostID(t *testing.T) {
	repo, mock, close := newRepo(t)
	defer close()

	want := []*Tag{{ID: 2, Name: "tags"}, {ID: 1, Name: "two"}}

	rows := sqlmock.NewRows([]string{"id", "name"})
	for _, tag := range want {
		rows.AddRow(tag.ID, tag.Name)
	}

	mock.
		ExpectQuery("SELECT (.+) FROM tags t JOIN post_tags").
		WithArgs(postID).
		WillReturnRows(rows)

	got, err := repo.ListByPostID(context.Background(), postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("expected %v, but was %v", want, got)
	}
}
