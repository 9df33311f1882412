package transport

import (
	"context"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"bakery/pkg/domain/model"
)

type subjectKey struct{}

func withSubject(ctx context.Context, subject model.Subject) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

func subjectFrom(ctx context.Context) model.Subject {
	subject, _ := ctx.Value(subjectKey{}).(model.Subject)
	return subject
}

// authenticated resolves the bearer token to a Subject, loading the admin flag once.
func (h *Handler) authenticated(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header || token == "" {
			writeJSONError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := h.verifier.Verify(token)
		if err != nil {
			log.WithError(err).Debug("token rejected")
			writeJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		subject, err := h.services.Users.ResolveSubject(r.Context(), userID)
		if err != nil {
			log.WithError(err).WithField("userID", userID).Debug("token subject not resolved")
			writeJSONError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withSubject(r.Context(), subject)))
	})
}
