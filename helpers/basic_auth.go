package helpers

import (
	"net/http"

	"code.cloudfoundry.org/bam-broker/models"

	"code.cloudfoundry.org/lager/v3"
	"golang.org/x/crypto/bcrypt"
)

const bcryptMaxLength = 72

type BasicAuthenticationMiddleware struct {
	logger       lager.Logger
	usernameHash []byte
	passwordHash []byte
}

func (m *BasicAuthenticationMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.usernameHash == nil && m.passwordHash == nil {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok ||
			bcrypt.CompareHashAndPassword(m.usernameHash, []byte(username)) != nil ||
			bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password)) != nil {
			m.logger.Info("unauthorized", lager.Data{"path": r.URL.Path})
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateBasicAuthMiddleware hashes clear-text credentials once; configured
// hashes are used as they are. Without credentials every request passes.
func CreateBasicAuthMiddleware(logger lager.Logger, ba models.BasicAuth) (*BasicAuthenticationMiddleware, error) {
	logger = logger.Session("basic-auth")
	m := &BasicAuthenticationMiddleware{logger: logger}
	if !ba.Enabled() {
		return m, nil
	}

	var err error
	if m.usernameHash, err = hashBytes(logger, "username", ba.UsernameHash, ba.Username); err != nil {
		return nil, err
	}
	if m.passwordHash, err = hashBytes(logger, "password", ba.PasswordHash, ba.Password); err != nil {
		return nil, err
	}
	return m, nil
}

func hashBytes(logger lager.Logger, field, hash, clear string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if len(clear) > bcryptMaxLength {
		logger.Error("configured-"+field+"-too-long", bcrypt.ErrPasswordTooLong, lager.Data{"length": len(clear)})
		clear = clear[:bcryptMaxLength]
	}
	b, err := bcrypt.GenerateFromPassword([]byte(clear), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-to-hash-"+field, err)
		return nil, err
	}
	return b, nil
}
