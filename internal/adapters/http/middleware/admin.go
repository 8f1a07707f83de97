package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/site-content-service/internal/domain"
)

// HeaderAdminToken carries the shared admin token.
const HeaderAdminToken = "X-Admin-Token"

var (
	errAdminDisabled = errors.New("admin API is disabled")
	errBadAdminToken = errors.New("missing or invalid admin token")
)

// AdminToken returns middleware that admits only requests whose
// X-Admin-Token header matches token. Comparison is constant time. An empty
// token rejects every request, which disables the admin API.
func AdminToken(token string) func(http.Handler) http.Handler {
	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(want) == 0 {
				dto.WriteErrorResponse(w, r, errors.Join(domain.ErrForbidden, errAdminDisabled))
				return
			}
			got := []byte(r.Header.Get(HeaderAdminToken))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				dto.WriteErrorResponse(w, r, errors.Join(domain.ErrForbidden, errBadAdminToken))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
