package handlers

import (
	"context"
	"errors"
	"net/http"
	"photogram/pkg/follow"
	"photogram/pkg/session"
	"time"

	"go.uber.org/zap"
)

type FollowHandler struct {
	FollowRepo FollowRepo
	UsersRepo  UsersRepo
	Logger     *zap.SugaredLogger
}

type FollowRepo interface {
	Subscribe(ctx context.Context, followerID, followedID int64) error
	Unsubscribe(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
}

func (h *FollowHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.FollowRepo.Subscribe)
}

func (h *FollowHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.change(w, r, h.FollowRepo.Unsubscribe)
}

func (h *FollowHandler) change(w http.ResponseWriter, r *http.Request,
	changeRepo func(context.Context, int64, int64) error) {
	followedID, err := ParseIntParam(r, "user_id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid user id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if sess.User.ID == followedID {
		WriteResponse(w, "cannot follow yourself", http.StatusBadRequest)
		return
	}

	followed, err := h.UsersRepo.GetByID(followedID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if followed == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = changeRepo(ctx, sess.User.ID, followedID)
	if errors.Is(err, follow.ErrAlreadyFollowing) {
		WriteResponse(w, "already following", http.StatusConflict)
		return
	}
	if errors.Is(err, follow.ErrNotFollowing) {
		WriteResponse(w, "not following", http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}
