package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"photogram/pkg/tags"
	"time"

	"go.uber.org/zap"
)

type TagHandler struct {
	TagsRepo   TagsRepo
	PostsRepo  PostsRepo
	UsersRepo  UsersRepo
	VotesRepo  VotesRepo
	ImagesRepo ImagesRepo
	Logger     *zap.SugaredLogger
}

type AddTagRequest struct {
	Tag string `json:"tag"`
}

type TagsRepo interface {
	AttachToPost(ctx context.Context, name string, postID int64) error
	AttachAllToPost(ctx context.Context, names []string, postID int64) []error
	ListByPostID(ctx context.Context, postID int64) ([]*tags.Tag, error)
}

func (h *TagHandler) Add(w http.ResponseWriter, r *http.Request) {
	postID, err := ParseIntParam(r, "post_id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req AddTagRequest
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	name, err := tags.ParseOne(req.Tag)
	if err != nil {
		validationError := &CustomError{Location: "body", Param: "tag", Value: req.Tag, Msg: err.Error()}
		writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = h.TagsRepo.AttachToPost(ctx, name, postID)
	if errors.Is(err, tags.ErrNoPost) {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, tags.ErrTagLimit) {
		validationError := &CustomError{Location: "body", Param: "tag", Value: name, Msg: "tag limit reached"}
		writeErrorsResponse(w, []*CustomError{validationError}, http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post, err := h.PostsRepo.GetByID(ctx, postID)
	if err != nil || post == nil {
		h.Logger.Error("post disappeared after tag attach")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	postWithData, err := getPostData(ctx, post, h.UsersRepo, h.TagsRepo, h.VotesRepo, h.ImagesRepo)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(postWithData)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(respBytes)
}
