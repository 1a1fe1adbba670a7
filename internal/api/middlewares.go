package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"
	"github.com/sitesafe/violations/internal/entity"
	"github.com/sitesafe/violations/pkg/config"
	"github.com/sitesafe/violations/pkg/logger"
)

type Middleware struct {
	cfg        config.Config
	authClient *http.Client
}

func NewMiddleware(cfg config.Config) *Middleware {
	return &Middleware{
		cfg:        cfg,
		authClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		slog.InfoContext(ctx, "incoming request",
			"method", r.Method, "url", r.URL.String(), "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth validates the bearer token against the auth service and puts the
// resulting user (with role) into the request context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Нет токена в заголовке")
			return
		}

		jsonData, err := json.Marshal(map[string]string{"accessToken": accessToken})
		if err != nil {
			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)
			return
		}

		req, err := http.NewRequestWithContext(ctx,
			http.MethodPost, m.cfg.AuthServiceURL+"/api/validate", bytes.NewReader(jsonData))
		if err != nil {
			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)
			return
		}

		resp, err := m.authClient.Do(req)
		if err != nil {
			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)
			return
		}

		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			SendErr(ctx, w, http.StatusUnauthorized,
				fmt.Errorf("unexpected status code %d", resp.StatusCode), errInternalRuText)

			return
		}

		var user entity.User

		err = json.NewDecoder(resp.Body).Decode(&user)
		if err != nil {
			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)
			return
		}

		if user.IsBlocked {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "Пользователь заблокирован")
			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
