package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
)

// AdminPasswordHeader carries the admin password on gated routes.
const AdminPasswordHeader = "X-Admin-Password"

const msgAdminUnauthorized = "관리자 비밀번호가 올바르지 않습니다"

// AdminAuth gates admin routes with a bcrypt password compare. The hash
// comes from config; the plaintext never leaves the request.
type AdminAuth struct {
	passwordHash []byte
	logger       Logger
}

func NewAdminAuth(passwordHash string, logger Logger) *AdminAuth {
	return &AdminAuth{
		passwordHash: []byte(passwordHash),
		logger:       logger,
	}
}

// Middleware rejects requests whose password header does not match the
// configured hash.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		password := r.Header.Get(AdminPasswordHeader)
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
			a.logger.Warn("%s %s - Admin auth failed", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgAdminUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
