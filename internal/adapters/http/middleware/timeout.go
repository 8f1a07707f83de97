package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/site-content-service/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request by d. The handler's
// context carries the deadline so store and webhook calls stop with it. If
// the handler has not finished when the deadline passes, its buffered output
// is discarded and an RFC 9457 504 response is written instead. A
// non-positive d disables the middleware. A handler panic is re-raised on
// the calling goroutine.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			buf := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			var panicked any

			go func() {
				defer close(done)
				defer func() { panicked = recover() }()
				next.ServeHTTP(buf, r)
			}()

			select {
			case <-done:
				if panicked != nil {
					// Re-raise on the serving goroutine so Recovery sees it.
					panic(panicked)
				}
				if errors.Is(ctx.Err(), context.DeadlineExceeded) && !buf.started() {
					if buf.abandon() {
						dto.WriteErrorResponse(w, r, context.DeadlineExceeded)
					}
					return
				}
				buf.commit(w)
			case <-ctx.Done():
				if buf.abandon() {
					dto.WriteErrorResponse(w, r, context.DeadlineExceeded)
				}
			}
		})
	}
}

// bufferedWriter holds a handler's response until Timeout decides whether
// to send it. Once abandoned, further writes are accepted and dropped.
type bufferedWriter struct {
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (b *bufferedWriter) Header() http.Header {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 {
		b.status = http.StatusOK
	}
	if !b.abandoned {
		b.body = append(b.body, p...)
	}
	return len(p), nil
}

// started reports whether the handler has written a status or body.
func (b *bufferedWriter) started() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status != 0
}

// abandon marks the response as dropped. It reports false if the handler
// already finished and the response was committed.
func (b *bufferedWriter) abandon() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return false
	}
	b.abandoned = true
	b.body = nil
	return true
}

// commit copies the buffered response to w.
func (b *bufferedWriter) commit(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.abandoned {
		return
	}
	b.abandoned = true
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
