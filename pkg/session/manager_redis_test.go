package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/elliotchance/redismock/v8"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
)

var token = "signed-token"
var expiresAt = time.Date(2999, 11, 17, 20, 34, 58, 651387237, time.UTC)

func testSession() *Session {
	return &Session{
		User:           &User{ID: u.ID, Email: u.Email},
		SessionID:      sessID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: expiresAt.Unix()},
	}
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	w := httptest.NewRecorder()

	jwtMock.EXPECT().Create(ctx, w, u, sessID, expiresAt.Unix()).Return(token, nil)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)

	mock.On("Set", ctx, sessID, u.ID, time.Duration(0)).Return(redis.NewStatusCmd(ctx, "set", sessID, u.ID))
	mock.On("SAdd", ctx, strconv.FormatInt(u.ID, 10), []interface{}{sessID}).Return(redis.NewIntCmd(ctx, "sadd", strconv.FormatInt(u.ID, 10), sessID))

	fact, err := sm.Create(ctx, w, u, sessID, expiresAt.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if fact != token {
		t.Errorf("expected %v but was %v", token, fact)
	}
}

func TestCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()

	sm := NewSessionManagerRedis(mock, jwtMock)
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := testSession()

	jwtMock.EXPECT().Check(ctx, r).Return(sess, nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult(strconv.FormatInt(u.ID, 10), nil))

	fact, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if fact != sess {
		t.Errorf("expected %v but was %v", sess, fact)
	}
}

func TestCheckRevokedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	jwtMock.EXPECT().Check(ctx, r).Return(testSession(), nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult("", redis.Nil))

	_, err := sm.Check(ctx, r)
	if err == nil {
		t.Fatal("expected error for revoked session, but was nil")
	}
}

func TestDestroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)
	sess := testSession()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(r.Context(), SessionKey, sess)
	r = r.WithContext(ctx)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)
	w := httptest.NewRecorder()

	mock.On("Del", ctx, []string{sessID}).Return(redis.NewIntResult(1, nil))
	err := sm.Destroy(ctx, w, r)

	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}

func TestDestroyAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock)

	mock.On("SMembers", ctx, strconv.FormatInt(u.ID, 10)).Return(redis.NewStringSliceResult([]string{sessID}, nil))
	mock.On("Del", ctx, []string{sessID}).Return(redis.NewIntResult(1, nil))

	err := sm.DestroyAll(ctx, u)

	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}
