package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"image/jpeg"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path"
	"photogram/pkg/images"
	"photogram/pkg/posts"
	"photogram/pkg/session"
	"photogram/pkg/tags"
	"photogram/pkg/user"
	"photogram/pkg/votes"
	"reflect"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var postIDs = []int64{101, 102, 103}
var userIDs = []int64{1, 2}

var created = time.Date(2021, 3, 14, 15, 9, 26, 0, time.UTC)

var testUserData = []*user.User{
	{ID: userIDs[0], Email: "ivan@example.com", FirstName: "Ivan", LastName: "Petrov"},
	{ID: userIDs[1], Email: "maria@example.com", FirstName: "Maria", LastName: "Sidorova", Avatar: "avatars/maria.jpg"},
}

var testPostData = []*posts.Post{
	{ID: postIDs[0], AuthorID: userIDs[0], Created: created},
	{ID: postIDs[1], AuthorID: userIDs[0], Created: created},
	{ID: postIDs[2], AuthorID: userIDs[1], Created: created},
}

var testTagData = map[int64][]*tags.Tag{
	postIDs[0]: {{ID: 1, Name: "nature"}, {ID: 2, Name: "sunset"}},
	postIDs[1]: {},
	postIDs[2]: {{ID: 3, Name: "food"}},
}

var testImageData = map[int64][]*images.Image{
	postIDs[0]: {{ID: 1, PostID: postIDs[0], File: "post/101/a.jpg"}},
	postIDs[1]: {{ID: 2, PostID: postIDs[1], File: "post/102/b.jpg"}, {ID: 3, PostID: postIDs[1], File: "post/102/c.jpg"}},
	postIDs[2]: {{ID: 4, PostID: postIDs[2], File: "post/103/d.jpg"}},
}

var testLikes = map[int64]int64{postIDs[0]: 2, postIDs[1]: 0, postIDs[2]: 5}
var testDislikes = map[int64]int64{postIDs[0]: 1, postIDs[1]: 0, postIDs[2]: 0}

func prepareTestData(ctrl *gomock.Controller) *PostHandler {
	postsRepoMock := NewMockPostsRepo(ctrl)
	usersRepoMock := NewMockUsersRepo(ctrl)
	tagsRepoMock := NewMockTagsRepo(ctrl)
	votesRepoMock := NewMockVotesRepo(ctrl)
	imagesRepoMock := NewMockImagesRepo(ctrl)
	storageMock := NewMockImageStorage(ctrl)

	h := &PostHandler{
		PostsRepo:  postsRepoMock,
		UsersRepo:  usersRepoMock,
		TagsRepo:   tagsRepoMock,
		VotesRepo:  votesRepoMock,
		ImagesRepo: imagesRepoMock,
		Storage:    storageMock,
		Logger:     zap.NewNop().Sugar(),
	}

	postsRepoMock.EXPECT().GetFeed(gomock.Any(), posts.FeedPageSize, 0).Return(testPostData, nil).AnyTimes()

	for i := range testPostData {
		postsRepoMock.EXPECT().GetByID(gomock.Any(), postIDs[i]).Return(testPostData[i], nil).AnyTimes()
	}

	postsRepoMock.EXPECT().GetByAuthorID(gomock.Any(), userIDs[0]).
		Return([]*posts.Post{testPostData[0], testPostData[1]}, nil).AnyTimes()

	postsRepoMock.EXPECT().Delete(gomock.Any(), postIDs[0]).Return(true, nil).AnyTimes()
	storageMock.EXPECT().Remove(postIDs[0]).Return(nil).AnyTimes()

	votesRepoMock.EXPECT().Cast(gomock.Any(), userIDs[0], postIDs[2], true).Return(votes.Liked, nil).AnyTimes()
	votesRepoMock.EXPECT().Cast(gomock.Any(), userIDs[0], postIDs[2], false).Return(votes.Disliked, nil).AnyTimes()

	for i := range testUserData {
		usersRepoMock.EXPECT().GetByID(userIDs[i]).Return(testUserData[i], nil).AnyTimes()
	}

	for id, postTags := range testTagData {
		tagsRepoMock.EXPECT().ListByPostID(gomock.Any(), id).Return(postTags, nil).AnyTimes()
	}
	for id, postImages := range testImageData {
		imagesRepoMock.EXPECT().ListByPostID(gomock.Any(), id).Return(postImages, nil).AnyTimes()
	}
	for id, likes := range testLikes {
		votesRepoMock.EXPECT().CountByValue(gomock.Any(), id, true).Return(likes, nil).AnyTimes()
	}
	for id, dislikes := range testDislikes {
		votesRepoMock.EXPECT().CountByValue(gomock.Any(), id, false).Return(dislikes, nil).AnyTimes()
	}

	return h
}

func getAuthor(authorID int64) *Author {
	for _, u := range testUserData {
		if u.ID == authorID {
			return &Author{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Avatar: u.Avatar}
		}
	}

	return nil
}

func getExpectedResult(data []*posts.Post, filter func(*posts.Post) bool) []*PostResponse {
	resp := make([]*PostResponse, 0, len(data))
	for _, d := range data {
		if !filter(d) {
			continue
		}

		tagNames := make([]string, 0)
		for _, t := range testTagData[d.ID] {
			tagNames = append(tagNames, t.Name)
		}
		imageURLs := make([]string, 0)
		for _, img := range testImageData[d.ID] {
			imageURLs = append(imageURLs, path.Join("/media", img.File))
		}

		resp = append(resp, &PostResponse{
			ID:       d.ID,
			Author:   getAuthor(d.AuthorID),
			Images:   imageURLs,
			Tags:     tagNames,
			Likes:    testLikes[d.ID],
			Dislikes: testDislikes[d.ID],
			Created:  d.Created,
		})
	}

	return resp
}

type postTestCase struct {
	name     string
	handler  func(*PostHandler, http.ResponseWriter, *http.Request)
	method   string
	status   int
	vars     map[string]string
	needAuth bool

	expected       []*PostResponse
	expectedOne    *PostResponse
	expectedVote   *VoteResponse
	expectedCustom map[string]string
}

var postTestCases = []postTestCase{
	{
		name:   "Feed",
		status: http.StatusOK,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.Feed(rw, r)
		},
		expected: getExpectedResult(testPostData, func(*posts.Post) bool {
			return true
		}),
		method: http.MethodGet,
	},
	{
		name:   "GetByID",
		status: http.StatusOK,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.GetByID(rw, r)
		},
		expectedOne: getExpectedResult(testPostData, func(p *posts.Post) bool {
			return p.ID == postIDs[0]
		})[0],
		method: http.MethodGet,
		vars:   map[string]string{"id": "101"},
	},
	{
		name:   "GetByUser",
		status: http.StatusOK,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.GetByUser(rw, r)
		},
		expected: getExpectedResult(testPostData, func(p *posts.Post) bool {
			return p.AuthorID == userIDs[0]
		}),
		method: http.MethodGet,
		vars:   map[string]string{"user_id": "1"},
	},
	{
		name:     "Delete",
		needAuth: true,
		status:   http.StatusOK,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.Delete(rw, r)
		},
		expectedCustom: map[string]string{"message": "success"},
		method:         http.MethodDelete,
		vars:           map[string]string{"id": "101"},
	},
	{
		name:     "DeleteNotAnAuthor",
		needAuth: true,
		status:   http.StatusForbidden,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.Delete(rw, r)
		},
		expectedCustom: map[string]string{"message": "not an author"},
		method:         http.MethodDelete,
		vars:           map[string]string{"id": "103"},
	},
	{
		name:     "Like",
		needAuth: true,
		status:   http.StatusOK,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.Like(rw, r)
		},
		expectedVote: &VoteResponse{
			State: "liked",
			Post: getExpectedResult(testPostData, func(p *posts.Post) bool {
				return p.ID == postIDs[2]
			})[0],
		},
		method: http.MethodGet,
		vars:   map[string]string{"post_id": "103"},
	},
	{
		name:     "Dislike",
		needAuth: true,
		status:   http.StatusOK,
		handler: func(ph *PostHandler, rw http.ResponseWriter, r *http.Request) {
			ph.Dislike(rw, r)
		},
		expectedVote: &VoteResponse{
			State: "disliked",
			Post: getExpectedResult(testPostData, func(p *posts.Post) bool {
				return p.ID == postIDs[2]
			})[0],
		},
		method: http.MethodGet,
		vars:   map[string]string{"post_id": "103"},
	},
}

func TestPostCases(t *testing.T) {
	for i, tc := range postTestCases {
		ctrl := gomock.NewController(t)
		h := prepareTestData(ctrl)
		w := httptest.NewRecorder()

		r := httptest.NewRequest(tc.method, "/", nil)

		if tc.needAuth {
			r = r.WithContext(context.WithValue(r.Context(), session.SessionKey,
				&session.Session{User: &session.User{ID: testUserData[0].ID, Email: testUserData[0].Email}}))
		}
		if tc.vars != nil {
			r = mux.SetURLVars(r, tc.vars)
		}

		tc.handler(h, w, r)
		if w.Code != tc.status {
			t.Fatalf("test case %d %s wrong response code, expected %v but was %v", i, tc.name, tc.status, w.Code)
		}
		resBytes, err := ioutil.ReadAll(w.Result().Body)
		if err != nil {
			t.Fatalf("unexpected error occured: %v", err.Error())
		}

		if tc.expected != nil {
			expectedBytes, _ := json.Marshal(tc.expected)
			if !bytes.Equal(resBytes, expectedBytes) {
				t.Errorf("test case %d %s fail, expected: %s, but was: %s", i, tc.name, expectedBytes, resBytes)
			}
		}
		if tc.expectedOne != nil {
			expectedBytes, _ := json.Marshal(tc.expectedOne)
			if !bytes.Equal(resBytes, expectedBytes) {
				t.Errorf("test case %d %s fail, expected: %s, but was: %s", i, tc.name, expectedBytes, resBytes)
			}
		}
		if tc.expectedVote != nil {
			expectedBytes, _ := json.Marshal(tc.expectedVote)
			if !bytes.Equal(resBytes, expectedBytes) {
				t.Errorf("test case %d %s fail, expected: %s, but was: %s", i, tc.name, expectedBytes, resBytes)
			}
		}
		if tc.expectedCustom != nil {
			res := map[string]string{}
			err := json.Unmarshal(resBytes, &res)
			if err != nil {
				t.Fatalf("can't get expected result, error occured: %v", err.Error())
			}

			if !reflect.DeepEqual(tc.expectedCustom, res) {
				t.Errorf("test case %d %s fail, expected: %v, but was: %v", i, tc.name, tc.expectedCustom, res)
			}
		}
	}
}

func newMultipartPost(t *testing.T, description string, imageCount int) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	err := mw.WriteField("description", description)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < imageCount; i++ {
		fw, err := mw.CreateFormFile("images", "photo.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err = jpeg.Encode(fw, imaging.New(20, 10, color.NRGBA{R: 200, G: 100, B: 50, A: 255}), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	mw.Close()
	return body, mw.FormDataContentType()
}

func TestCreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)

	postsRepoMock := NewMockPostsRepo(ctrl)
	usersRepoMock := NewMockUsersRepo(ctrl)
	tagsRepoMock := NewMockTagsRepo(ctrl)
	votesRepoMock := NewMockVotesRepo(ctrl)
	imagesRepoMock := NewMockImagesRepo(ctrl)
	storageMock := NewMockImageStorage(ctrl)

	h := &PostHandler{
		PostsRepo:  postsRepoMock,
		UsersRepo:  usersRepoMock,
		TagsRepo:   tagsRepoMock,
		VotesRepo:  votesRepoMock,
		ImagesRepo: imagesRepoMock,
		Storage:    storageMock,
		Logger:     zap.NewNop().Sugar(),
	}

	newPostID := int64(42)
	file := "post/42/photo.jpg"

	postsRepoMock.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(&posts.Post{})).Return(newPostID, nil)
	storageMock.EXPECT().Save(newPostID, gomock.Any()).Return(file, nil)
	imagesRepoMock.EXPECT().AddToPost(gomock.Any(), newPostID, file).Return(int64(1), nil)
	tagsRepoMock.EXPECT().AttachAllToPost(gomock.Any(), []string{"sunset", "beach"}, newPostID).Return(nil)

	usersRepoMock.EXPECT().GetByID(testUserData[0].ID).Return(testUserData[0], nil)
	tagsRepoMock.EXPECT().ListByPostID(gomock.Any(), newPostID).
		Return([]*tags.Tag{{ID: 7, Name: "beach"}, {ID: 6, Name: "sunset"}}, nil)
	imagesRepoMock.EXPECT().ListByPostID(gomock.Any(), newPostID).
		Return([]*images.Image{{ID: 1, PostID: newPostID, File: file}}, nil)
	votesRepoMock.EXPECT().CountByValue(gomock.Any(), newPostID, true).Return(int64(0), nil)
	votesRepoMock.EXPECT().CountByValue(gomock.Any(), newPostID, false).Return(int64(0), nil)

	body, contentType := newMultipartPost(t, "evening walk #sunset #beach", 1)
	r := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	r.Header.Set("Content-Type", contentType)
	r = r.WithContext(context.WithValue(r.Context(), session.SessionKey,
		&session.Session{User: &session.User{ID: testUserData[0].ID, Email: testUserData[0].Email}}))

	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusCreated {
		t.Fatalf("wrong response code, expected %v but was %v: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	var res *PostResponse
	err := json.Unmarshal(w.Body.Bytes(), &res)
	if err != nil {
		t.Fatalf("can't get expected result, error occured: %v", err.Error())
	}

	if res.ID != newPostID {
		t.Errorf("expected post id %v but was %v", newPostID, res.ID)
	}
	if !reflect.DeepEqual(res.Tags, []string{"beach", "sunset"}) {
		t.Errorf("unexpected tags: %v", res.Tags)
	}
	if !reflect.DeepEqual(res.Images, []string{"/media/post/42/photo.jpg"}) {
		t.Errorf("unexpected images: %v", res.Images)
	}
}

func TestCreatePostNoImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := prepareTestData(ctrl)

	body, contentType := newMultipartPost(t, "no photos here", 0)
	r := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	r.Header.Set("Content-Type", contentType)
	r = r.WithContext(context.WithValue(r.Context(), session.SessionKey,
		&session.Session{User: &session.User{ID: testUserData[0].ID, Email: testUserData[0].Email}}))

	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestCreatePostTooLongTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := prepareTestData(ctrl)

	longTag := "#aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	body, contentType := newMultipartPost(t, longTag, 1)
	r := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	r.Header.Set("Content-Type", contentType)
	r = r.WithContext(context.WithValue(r.Context(), session.SessionKey,
		&session.Session{User: &session.User{ID: testUserData[0].ID, Email: testUserData[0].Email}}))

	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrong response code, expected %v but was %v", http.StatusUnprocessableEntity, w.Code)
	}
}
