package xiongxiong

import (
	"log/slog"
	"net/http"
	"strings"
)

// CredentialExtractorFunc extracts the Decode arguments from a request:
// one bearer token or a (login, password) pair.
type CredentialExtractorFunc func(r *http.Request) ([]string, error)

// SkipFunc reports whether a request bypasses authentication.
type SkipFunc func(r *http.Request) bool

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request)

// MiddlewareConfig configures the authentication middleware.
type MiddlewareConfig struct {
	Verifier     *Verifier
	Extractor    CredentialExtractorFunc // defaults to AuthorizationExtractor
	Skip         SkipFunc
	ErrorHandler ErrorHandlerFunc // defaults to a plain 401
	Logger       *slog.Logger     // rejection reasons are logged at debug level
}

// Middleware accepts Bearer and Basic credentials from the Authorization header.
func Middleware(v *Verifier) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{Verifier: v})
}

// MiddlewareWithConfig creates the authentication middleware.
// Panics if cfg.Verifier is nil.
func MiddlewareWithConfig(cfg MiddlewareConfig) func(next http.Handler) http.Handler {
	if cfg.Verifier == nil {
		panic("xiongxiong: middleware requires a verifier")
	}
	if cfg.Extractor == nil {
		cfg.Extractor = AuthorizationExtractor
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = unauthorized
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			credential, err := cfg.Extractor(r)
			if err != nil {
				cfg.Logger.DebugContext(r.Context(), "credentials not found",
					slog.String("path", r.URL.Path), slog.Any("error", err))
				cfg.ErrorHandler(w, r)
				return
			}

			tok, err := cfg.Verifier.Decode(credential...)
			if err != nil || !tok.Valid() {
				cfg.Logger.DebugContext(r.Context(), "token rejected",
					slog.String("path", r.URL.Path),
					slog.Bool("authenticated", tok.Authenticated()))
				cfg.ErrorHandler(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetToken(r.Context(), tok)))
		})
	}
}

func unauthorized(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// BearerExtractor reads "Authorization: Bearer <token>".
func BearerExtractor(r *http.Request) ([]string, error) {
	scheme, value, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || value == "" {
		return nil, ErrMissingCredentials
	}
	return []string{value}, nil
}

// BasicAuthExtractor reads "Authorization: Basic <login:password>".
func BasicAuthExtractor(r *http.Request) ([]string, error) {
	login, password, ok := r.BasicAuth()
	if !ok || login == "" {
		return nil, ErrMissingCredentials
	}
	return []string{login, password}, nil
}

// AuthorizationExtractor tries the Bearer scheme first, then Basic.
func AuthorizationExtractor(r *http.Request) ([]string, error) {
	if cred, err := BearerExtractor(r); err == nil {
		return cred, nil
	}
	return BasicAuthExtractor(r)
}

// CookieExtractor reads a bearer token from the named cookie.
func CookieExtractor(name string) CredentialExtractorFunc {
	return func(r *http.Request) ([]string, error) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return nil, ErrMissingCredentials
		}
		return []string{c.Value}, nil
	}
}

// QueryExtractor reads a bearer token from a query parameter. Tokens in
// URLs end up in access logs.
func QueryExtractor(param string) CredentialExtractorFunc {
	return func(r *http.Request) ([]string, error) {
		v := r.URL.Query().Get(param)
		if v == "" {
			return nil, ErrMissingCredentials
		}
		return []string{v}, nil
	}
}

// HeaderExtractor reads a bearer token from a custom header.
func HeaderExtractor(header string) CredentialExtractorFunc {
	return func(r *http.Request) ([]string, error) {
		v := r.Header.Get(header)
		if v == "" {
			return nil, ErrMissingCredentials
		}
		return []string{v}, nil
	}
}
