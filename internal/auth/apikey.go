package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
)

// APIKeyMiddleware authenticates requests with a shared API key header.
// Keys come from config; when none are configured, authentication is
// disabled and every request passes.
type APIKeyMiddleware struct {
	headerName string
	keyHashes  []string
	jwtSecret  []byte
}

func NewAPIKeyMiddleware(keys []string, headerName, jwtSecret string) *APIKeyMiddleware {
	hashes := make([]string, len(keys))
	for i, k := range keys {
		hashes[i] = HashAPIKey(k)
	}
	return &APIKeyMiddleware{
		headerName: headerName,
		keyHashes:  hashes,
		jwtSecret:  []byte(jwtSecret),
	}
}

// Authenticate accepts a valid API key header or a valid JWT bearer token.
func (m *APIKeyMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(m.keyHashes) == 0 && len(m.jwtSecret) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		if key := r.Header.Get(m.headerName); key != "" {
			if m.matchKey(key) {
				next.ServeHTTP(w, r)
				return
			}
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}

		if len(m.jwtSecret) > 0 {
			if tokenStr := extractBearerToken(r); tokenStr != "" {
				ctx, err := verifyJWT(r.Context(), tokenStr, m.jwtSecret)
				if err != nil {
					writeError(w, http.StatusUnauthorized, err.Error())
					return
				}
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		writeError(w, http.StatusUnauthorized, "missing credentials")
	})
}

func (m *APIKeyMiddleware) matchKey(key string) bool {
	hash := HashAPIKey(key)
	for _, h := range m.keyHashes {
		if subtle.ConstantTimeCompare([]byte(h), []byte(hash)) == 1 {
			return true
		}
	}
	return false
}

func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
