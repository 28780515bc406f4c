package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionIssuesSignedCookie(t *testing.T) {
	sessions := NewSessions("test-key", false, nil)
	var seen *SessionData
	h := sessions.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSession(r)
		okHandler(w, r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, seen)
	require.Len(t, seen.ID, 26)
	require.NotEmpty(t, seen.CSRFToken)

	c := cookieByName(rec.Result().Cookies(), sessionCookieName)
	require.NotNil(t, c)
	require.True(t, c.HttpOnly)

	// the same cookie restores the same session and is not rewritten
	firstID := seen.ID
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, firstID, seen.ID)
	require.Nil(t, cookieByName(rec.Result().Cookies(), sessionCookieName))
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	issuer := NewSessions("key-a", false, nil)
	rec := httptest.NewRecorder()
	issuer.Middleware(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	c := cookieByName(rec.Result().Cookies(), sessionCookieName)
	require.NotNil(t, c)

	verifier := NewSessions("key-b", false, nil)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	_, ok := verifier.read(req)
	require.False(t, ok)

	_, ok = issuer.read(req)
	require.True(t, ok)
}

func TestSessionWritesCookieWhenHandlerWritesNothing(t *testing.T) {
	sessions := NewSessions("", true, nil)
	rec := httptest.NewRecorder()
	sessions.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	c := cookieByName(rec.Result().Cookies(), sessionCookieName)
	require.NotNil(t, c)
	require.True(t, c.Secure)
}

func newCSRFStack() http.Handler {
	sessions := NewSessions("test-key", false, nil)
	return HTMX(sessions.Middleware(CSRF(false)(http.HandlerFunc(okHandler))))
}

// primeCSRF performs a GET and returns the cookies plus token issued to the client.
func primeCSRF(t *testing.T, h http.Handler) ([]*http.Cookie, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	token := cookieByName(cookies, csrfCookieName)
	require.NotNil(t, token)
	return cookies, token.Value
}

func TestCSRFRejectsMissingToken(t *testing.T) {
	h := newCSRFStack()
	cookies, _ := primeCSRF(t, h)

	req := httptest.NewRequest(http.MethodPost, "/cart/add", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFAcceptsHeaderOrFormField(t *testing.T) {
	h := newCSRFStack()
	cookies, token := primeCSRF(t, h)

	req := httptest.NewRequest(http.MethodPost, "/cart/add", nil)
	req.Header.Set(CSRFHeader, token)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	form := url.Values{CSRFFormField: {token}, "id": {"x"}}
	req = httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCSRFErrorIsJSONForHTMX(t *testing.T) {
	h := newCSRFStack()
	req := httptest.NewRequest(http.MethodPost, "/cart/add", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "invalid CSRF token", body.Error)
}

func TestAssetsWithCacheETag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte("body{}"), 0o600))

	h := http.StripPrefix("/assets", AssetsWithCache(dir))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/app.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, assetCacheControl, rec.Header().Get("Cache-Control"))
	etag := rec.Header().Get("ETag")
	require.True(t, strings.HasPrefix(etag, `W/"`))

	req := httptest.NewRequest(http.MethodGet, "/assets/css/app.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
}

func TestVaryCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	VaryCookie(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "Cookie", rec.Header().Get("Vary"))
	require.Equal(t, "private, no-cache", rec.Header().Get("Cache-Control"))
}

func TestResponseRecorderRunsHookOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := NewResponseRecorder(rec)
	calls := 0
	rw.SetBeforeWrite(func(w http.ResponseWriter) {
		calls++
		w.Header().Set("X-Hook", "1")
	})
	rw.WriteHeader(http.StatusCreated)
	_, _ = rw.Write([]byte("a"))
	rw.WriteHeader(http.StatusTeapot)

	require.Equal(t, 1, calls)
	require.Equal(t, http.StatusCreated, rw.Status())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-Hook"))
}

func TestHTMXFragmentDetection(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "plain", want: false},
		{name: "htmx", headers: map[string]string{"HX-Request": "true"}, want: true},
		{name: "boosted", headers: map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, want: false},
		{name: "history restore", headers: map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got bool
			h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = IsHTMX(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/shop", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, tc.want, got)
			require.Contains(t, rec.Header().Values("Vary"), "HX-Request")
		})
	}
}
