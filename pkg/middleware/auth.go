package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"photogram/pkg/session"
	"strings"
	"time"

	"go.uber.org/zap"
)

var authRoutes = map[string]string{
	"/api/posts": http.MethodPost,
}

var authSuffixes = []string{
	"/like",
	"/dislike",
	"/tag",
	"/subscribe",
	"/unsubscribe",
}

func needsAuth(r *http.Request) bool {
	if m, ok := authRoutes[r.URL.Path]; ok && m == r.Method {
		return true
	}
	for _, suffix := range authSuffixes {
		if strings.HasSuffix(r.URL.Path, suffix) {
			return true
		}
	}
	if r.URL.Path == "/api/profile" {
		return true
	}
	if strings.HasPrefix(r.URL.Path, "/api/post/") && r.Method == http.MethodDelete {
		return true
	}
	return false
}

func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !needsAuth(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sess, err := sm.Check(ctx, r)
		if err != nil {
			logger.Error(err.Error())
			w.Header().Set("Content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
			w.Write(errorBody)

			return
		}

		ctx = context.WithValue(r.Context(), session.SessionKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
