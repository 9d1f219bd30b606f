package httpstate

import (
	"net/http"
	"testing"
)

func TestHeaderLookupIsCaseInsensitive(t *testing.T) {
	s := NewState()
	s.SetHeaders(map[string]string{"X-Feature-Flags": "gamma|delta"})

	if got := s.Header("x-feature-flags"); got != "gamma|delta" {
		t.Errorf("expected lower-cased lookup to hit, got %q", got)
	}
	if got := s.Header("X-FEATURE-FLAGS"); got != "gamma|delta" {
		t.Errorf("expected upper-cased lookup to hit, got %q", got)
	}
}

func TestHeaderAbsent(t *testing.T) {
	s := NewState()
	if got := s.Header("x-feature-flags"); got != "" {
		t.Errorf("expected empty value for absent header, got %q", got)
	}
}

func TestRefreshPullsThroughFunc(t *testing.T) {
	s := NewState()
	latest := map[string]string{"x-feature-flags": "gamma"}
	s.SetRefreshFunc(func() map[string]string { return latest })

	s.Refresh()
	if got := s.Header("x-feature-flags"); got != "gamma" {
		t.Fatalf("expected 'gamma' after refresh, got %q", got)
	}

	latest = map[string]string{"x-feature-flags": "delta"}
	s.Refresh()
	if got := s.Header("x-feature-flags"); got != "delta" {
		t.Errorf("expected refresh to replace the snapshot, got %q", got)
	}
}

func TestRefreshWithoutFuncKeepsSnapshot(t *testing.T) {
	s := NewState()
	s.SetHeaders(map[string]string{"x-feature-flags": "gamma"})
	s.Refresh()
	if got := s.Header("x-feature-flags"); got != "gamma" {
		t.Errorf("expected snapshot unchanged without refresh func, got %q", got)
	}
}

func TestCaptureHeadersJoinsValues(t *testing.T) {
	s := NewState()
	h := http.Header{}
	h.Add("X-Feature-Flags", "alpha")
	h.Add("X-Feature-Flags", "beta")
	s.CaptureHeaders(h)

	if got := s.Header("x-feature-flags"); got != "alpha, beta" {
		t.Errorf("expected joined header values, got %q", got)
	}
}

func TestCookieHeader(t *testing.T) {
	s := NewState()
	if s.CookieHeader() != "" {
		t.Error("expected empty cookie header initially")
	}
	s.SetCookieHeader("features=alpha|beta; session=abc")
	if got := s.CookieHeader(); got != "features=alpha|beta; session=abc" {
		t.Errorf("unexpected cookie header %q", got)
	}
}
