package feature

import (
	"context"
	"strings"

	"github.com/kbukum/flagkit/httpstate"
)

// cookieName is the single cookie carrying the enabled-feature list.
const cookieName = "features"

// CookieProvider evaluates a flag from the most recent request's Cookie
// header. It is read-only: cookies are not writable from this layer, so
// Persist inherits the no-op default.
type CookieProvider struct {
	NoopProvider
	state *httpstate.State
}

// NewCookieProvider creates a provider reading from state. Passing nil
// uses the process-wide snapshot.
func NewCookieProvider(featureName string, state *httpstate.State) *CookieProvider {
	if state == nil {
		state = httpstate.Default()
	}
	return &CookieProvider{
		NoopProvider: NoopProvider{feature: featureName},
		state:        state,
	}
}

// Name returns "cookie".
func (p *CookieProvider) Name() string { return "cookie" }

// Evaluate reports whether the feature name is a member of the
// delimiter-joined list in the features cookie. No cookie means disabled.
func (p *CookieProvider) Evaluate(_ context.Context) bool {
	value, ok := lookupCookie(p.state.CookieHeader(), cookieName)
	if !ok {
		return false
	}
	return containsFeature(value, p.Feature())
}

// lookupCookie finds a cookie by name anywhere in a raw Cookie header.
// The name must sit at the start of the header or directly after a
// separator so "features" never matches inside "otherfeatures".
func lookupCookie(header, name string) (string, bool) {
	marker := name + "="
	for i := 0; i <= len(header)-len(marker); {
		j := strings.Index(header[i:], marker)
		if j < 0 {
			return "", false
		}
		j += i
		if j == 0 || header[j-1] == ' ' || header[j-1] == ';' {
			value := header[j+len(marker):]
			if k := strings.IndexByte(value, ';'); k >= 0 {
				value = value[:k]
			}
			return value, true
		}
		i = j + len(marker)
	}
	return "", false
}
