package handlers

import (
	"context"
	"encoding/json"
	"image"
	"net/http"
	"photogram/pkg/images"
	"photogram/pkg/posts"
	"photogram/pkg/session"
	"photogram/pkg/tags"
	"photogram/pkg/votes"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const maxUploadSize = 32 << 20

type PostHandler struct {
	PostsRepo  PostsRepo
	UsersRepo  UsersRepo
	TagsRepo   TagsRepo
	VotesRepo  VotesRepo
	ImagesRepo ImagesRepo
	Storage    ImageStorage
	Logger     *zap.SugaredLogger
}

type PostsRepo interface {
	GetFeed(ctx context.Context, limit, offset int) ([]*posts.Post, error)
	GetByID(ctx context.Context, id int64) (*posts.Post, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]*posts.Post, error)
	Add(ctx context.Context, p *posts.Post) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type VotesRepo interface {
	Cast(ctx context.Context, userID, postID int64, value bool) (votes.State, error)
	CountByValue(ctx context.Context, postID int64, value bool) (int64, error)
}

type ImagesRepo interface {
	AddToPost(ctx context.Context, postID int64, file string) (int64, error)
	ListByPostID(ctx context.Context, postID int64) ([]*images.Image, error)
}

type ImageStorage interface {
	Save(postID int64, img image.Image) (string, error)
	Remove(postID int64) error
}

type VoteResponse struct {
	State string        `json:"state"`
	Post  *PostResponse `json:"post"`
}

func (h *PostHandler) Feed(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	postsDb, err := h.PostsRepo.GetFeed(ctx, posts.FeedPageSize, (page-1)*posts.FeedPageSize)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postsResp, err := h.getPostsWithData(ctx, postsDb)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postsBytes, err := json.Marshal(postsResp)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(postsBytes)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIntParam(r, "id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	postWithData, err := getPostData(ctx, post, h.UsersRepo, h.TagsRepo, h.VotesRepo, h.ImagesRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postBytes, err := json.Marshal(postWithData)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(postBytes)
}

func (h *PostHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := ParseIntParam(r, "user_id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid user id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	postsDb, err := h.PostsRepo.GetByAuthorID(ctx, userID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postsWithData, err := h.getPostsWithData(ctx, postsDb)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postsBytes, err := json.Marshal(postsWithData)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(postsBytes)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	tagNames, err := tags.ParseAll(r.FormValue("description"))
	if err != nil {
		validationError := &CustomError{Location: "body", Param: "description", Value: r.FormValue("description"), Msg: err.Error()}
		writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		validationError := &CustomError{Location: "body", Param: "images", Msg: "at least one image is required"}
		writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
		return
	}
	if len(files) > images.MaxCountPerPost {
		validationError := &CustomError{Location: "body", Param: "images", Msg: "too many images"}
		writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
		return
	}

	thumbs := make([]image.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		thumb, err := images.Thumbnail(f)
		f.Close()
		if err != nil {
			validationError := &CustomError{Location: "body", Param: "images", Value: fh.Filename, Msg: "is not a valid image"}
			writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
			return
		}

		thumbs = append(thumbs, thumb)
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post := &posts.Post{
		AuthorID: sess.User.ID,
		Created:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	id, err := h.PostsRepo.Add(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	post.ID = id

	for _, thumb := range thumbs {
		file, err := h.Storage.Save(id, thumb)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		_, err = h.ImagesRepo.AddToPost(ctx, id, file)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	for _, attachErr := range h.TagsRepo.AttachAllToPost(ctx, tagNames, id) {
		h.Logger.Error(attachErr.Error())
	}

	postResp, err := getPostData(ctx, post, h.UsersRepo, h.TagsRepo, h.VotesRepo, h.ImagesRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(postResp)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(respBytes)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIntParam(r, "id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	if post.AuthorID != sess.User.ID {
		WriteResponse(w, "not an author", http.StatusForbidden)
		return
	}

	ok, err := h.PostsRepo.Delete(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	if err := h.Storage.Remove(id); err != nil {
		h.Logger.Error(err.Error())
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, true)
}

func (h *PostHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, false)
}

func (h *PostHandler) vote(w http.ResponseWriter, r *http.Request, value bool) {
	id, err := ParseIntParam(r, "post_id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	state, err := h.VotesRepo.Cast(ctx, sess.User.ID, id, value)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postResp, err := getPostData(ctx, post, h.UsersRepo, h.TagsRepo, h.VotesRepo, h.ImagesRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resBytes, err := json.Marshal(&VoteResponse{State: state.String(), Post: postResp})
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(resBytes)
}

func (h *PostHandler) getPostsWithData(ctx context.Context, postsDb []*posts.Post) ([]*PostResponse, error) {
	result := make([]*PostResponse, 0, len(postsDb))
	for _, p := range postsDb {
		postWithData, err := getPostData(ctx, p, h.UsersRepo, h.TagsRepo, h.VotesRepo, h.ImagesRepo)
		if err != nil {
			return nil, err
		}

		result = append(result, postWithData)
	}

	return result, nil
}
