package httpkit

import (
	"net/http"
	"time"

	phttp "moodroom/internal/platform/net/http"
	"moodroom/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack; zero values keep the defaults
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration

	// MaxInFlight caps concurrent API requests; 0 means unlimited
	MaxInFlight int
}

// CommonStack returns the baseline API middleware slice
// compose with Protected and presence middleware inside modules
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		// cross-origin for the browser client
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}

// Auth wires the auth middleware to the platform error envelope writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.RespondError)
}

// Protected groups routes under bearer auth plus any extra middleware (i.e. presence)
func Protected(r Router, p middleware.AuthPort, fn func(Router), mw ...func(http.Handler) http.Handler) {
	r.Group(func(gr Router) {
		gr.Use(Auth(p))
		if len(mw) > 0 {
			gr.Use(mw...)
		}
		fn(gr)
	})
}
