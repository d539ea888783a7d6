package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"photogram/pkg/session"
	"photogram/pkg/user"

	"go.uber.org/zap"
)

type UserHandler struct {
	Repo   UsersRepo
	Logger *zap.SugaredLogger
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	Add(u *user.User) (int64, error)
	UpdateProfile(id int64, firstName, lastName, bio, avatar string) error
}

type ProfileResponse struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Bio           string `json:"bio"`
	Avatar        string `json:"avatar,omitempty"`
	FollowCount   int64  `json:"followCount"`
	FollowedCount int64  `json:"followedCount"`
}

type UpdateProfileReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
	Avatar    *string `json:"avatar"`
}

func (req *UpdateProfileReq) validate() []*CustomError {
	var errs []*CustomError

	if req.FirstName != nil {
		firstName := &Validator{value: req.FirstName, location: "body", field: "firstName"}
		errs = append(errs, firstName.MaxLength(30))
	}
	if req.LastName != nil {
		lastName := &Validator{value: req.LastName, location: "body", field: "lastName"}
		errs = append(errs, lastName.MaxLength(150))
	}
	if req.Bio != nil {
		bio := &Validator{value: req.Bio, location: "body", field: "bio"}
		errs = append(errs, bio.MaxLength(512))
	}
	if req.Avatar != nil && *req.Avatar != "" {
		avatar := &Validator{value: req.Avatar, location: "body", field: "avatar"}
		errs = append(errs, avatar.URL())
	}

	return mergeErrors(errs...)
}

func mapToProfileResponse(u *user.User) *ProfileResponse {
	return &ProfileResponse{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Bio:           u.Bio,
		Avatar:        u.Avatar,
		FollowCount:   u.FollowCount,
		FollowedCount: u.FollowedCount,
	}
}

func (h *UserHandler) writeProfile(w http.ResponseWriter, u *user.User, status int) {
	respBytes, err := json.Marshal(mapToProfileResponse(u))
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	w.Write(respBytes)
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	u, err := h.Repo.GetByID(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if u == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	h.writeProfile(w, u, http.StatusOK)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := ParseIntParam(r, "user_id")
	if err != nil {
		h.Logger.Error(err.Error())
		WriteResponse(w, "invalid user id", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.GetByID(id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if u == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	h.writeProfile(w, u, http.StatusOK)
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req UpdateProfileReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	u, err := h.Repo.GetByID(sess.User.ID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if u == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	// only the fields present in the request change
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Avatar != nil {
		u.Avatar = *req.Avatar
	}

	err = h.Repo.UpdateProfile(u.ID, u.FirstName, u.LastName, u.Bio, u.Avatar)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeProfile(w, u, http.StatusOK)
}
