package cart

import (
	"encoding/base64"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const cookieMaxAge = 180 * 24 * time.Hour

// browsers drop cookies past roughly 4 KB; warn before that happens
const cookieSizeWarn = 3500

// MemoryStorage keeps values in a map. Useful for tests and tools.
type MemoryStorage map[string]string

// Get implements Storage.
func (m MemoryStorage) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements Storage.
func (m MemoryStorage) Set(key, value string) error {
	m[key] = value
	return nil
}

// CookieStorage persists values in browser cookies for the duration of one request.
// Values are base64url encoded because JSON is not a valid cookie value.
type CookieStorage struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	logger *zap.Logger
	// values written during this request shadow the request cookies
	written map[string]string
}

// NewCookieStorage binds a storage to the request and its response writer.
// Set must be called before the response body is written.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, secure bool, logger *zap.Logger) *CookieStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CookieStorage{r: r, w: w, secure: secure, logger: logger, written: map[string]string{}}
}

// Get implements Storage.
func (s *CookieStorage) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil || c.Value == "" {
		return "", false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		// hand the raw value back; Decode rejects it and the cart starts empty
		return c.Value, true
	}
	return string(decoded), true
}

// Set implements Storage.
func (s *CookieStorage) Set(key, value string) error {
	s.written[key] = value
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	if len(encoded) > cookieSizeWarn {
		s.logger.Warn("cookie value nears browser size limit",
			zap.String("cookie", key),
			zap.Int("bytes", len(encoded)),
			zap.Int("warnAt", cookieSizeWarn),
		)
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cookieMaxAge.Seconds()),
		Expires:  time.Now().Add(cookieMaxAge),
	})
	return nil
}
