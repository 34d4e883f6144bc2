package server

import (
	"net/http"

	"gnibdocs/internal/utils"
	"gnibdocs/pkg/types"
)

// session is what the form remembers between requests. It lives in an encrypted cookie, so
// it stays fixed-size: uploaded documents are looked up by session ID.
type session struct {
	ID       string
	Purpose  types.Purpose
	Category types.Category
}

func newSession() *session {
	return &session{ID: utils.NanoID()}
}

// loadSession returns the caller's session, or a fresh one when the cookie is missing or
// cannot be decoded.
func (s *Service) loadSession(r *http.Request) *session {
	c, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return newSession()
	}

	sess := new(session)
	if err := s.cookie.Decode(s.config.CookieName, c.Value, sess); err != nil {
		s.logger.WithError(err).Debug("discarding undecodable session cookie")
		return newSession()
	}

	if !utils.IsNanoID(sess.ID) {
		return newSession()
	}

	return sess
}

func (s *Service) saveSession(w http.ResponseWriter, sess *session) error {
	encoded, err := s.cookie.Encode(s.config.CookieName, sess)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.SessionMaxAgeSec,
		Path:     "/",
	})

	return nil
}

func (s *Service) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}
