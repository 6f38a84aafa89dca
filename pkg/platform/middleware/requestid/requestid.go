// Package requestid assigns every request a correlation id. Incoming
// X-Request-ID headers are honored so ids survive proxy hops.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"tipline/pkg/requestcontext"
)

const Header = "X-Request-ID"

// Middleware stores the request id in the context and echoes it on the
// response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(Header, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
