package httpstate

import "github.com/gin-gonic/gin"

// Capture returns gin middleware that feeds state from every exchange:
// the request's Cookie header before the handler runs and the response
// headers after it completes. Passing nil uses the Default snapshot.
func Capture(state *State) gin.HandlerFunc {
	if state == nil {
		state = Default()
	}
	return func(c *gin.Context) {
		state.SetCookieHeader(c.GetHeader("Cookie"))
		c.Next()
		state.CaptureHeaders(c.Writer.Header())
	}
}
