package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"photogram/pkg/posts"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type Response struct {
	Message string `json:"message"`
}

type CustomError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type ErrorsResponse struct {
	Errors []*CustomError `json:"errors"`
}

func WriteResponse(w http.ResponseWriter, msg string, status int) {
	resp := &Response{Message: msg}
	res, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(status)
		return
	}

	w.WriteHeader(status)
	w.Write(res)
}

func writeErrorsResponse(w http.ResponseWriter, errors []*CustomError, status int) {
	errorsJSON, err := json.Marshal(&ErrorsResponse{Errors: errors})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}

	w.WriteHeader(status)
	w.Write(errorsJSON)
}

type Author struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type PostResponse struct {
	ID       int64     `json:"id"`
	Author   *Author   `json:"author"`
	Images   []string  `json:"images"`
	Tags     []string  `json:"tags"`
	Likes    int64     `json:"likes"`
	Dislikes int64     `json:"dislikes"`
	Created  time.Time `json:"created"`
}

func getPostData(ctx context.Context, p *posts.Post, ur UsersRepo, tr TagsRepo, vr VotesRepo, ir ImagesRepo) (*PostResponse, error) {
	author, err := ur.GetByID(p.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("unknown author %d", p.AuthorID)
	}

	postTags, err := tr.ListByPostID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	tagNames := make([]string, 0, len(postTags))
	for _, t := range postTags {
		tagNames = append(tagNames, t.Name)
	}

	postImages, err := ir.ListByPostID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	imageURLs := make([]string, 0, len(postImages))
	for _, img := range postImages {
		imageURLs = append(imageURLs, path.Join("/media", img.File))
	}

	likes, err := vr.CountByValue(ctx, p.ID, true)
	if err != nil {
		return nil, err
	}
	dislikes, err := vr.CountByValue(ctx, p.ID, false)
	if err != nil {
		return nil, err
	}

	return &PostResponse{
		ID:       p.ID,
		Author:   &Author{ID: author.ID, FirstName: author.FirstName, LastName: author.LastName, Avatar: author.Avatar},
		Images:   imageURLs,
		Tags:     tagNames,
		Likes:    likes,
		Dislikes: dislikes,
		Created:  p.Created,
	}, nil
}

func ParseIntParam(r *http.Request, name string) (int64, error) {
	vars := mux.Vars(r)
	varStr := vars[name]
	val, err := strconv.ParseInt(varStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("wrong id value: %v", varStr)
	}

	return val, nil
}
