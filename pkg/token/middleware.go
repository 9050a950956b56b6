package token

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tendant/simple-org/pkg/role"
)

// RequireRoles returns middleware that rejects requests whose verified
// token does not carry one of the allowed roles. This is the
// point-of-use authorization check: the resolver's fail-open employee
// default never grants access here unless employee is explicitly
// allowed.
func RequireRoles(allowed ...role.Role) func(http.Handler) http.Handler {
	allowedSet := make(map[role.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			raw, _ := claims[RoleClaim].(string)
			tokenRole, err := role.Parse(raw)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			if _, ok := allowedSet[tokenRole]; !ok {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SubjectFromContext extracts the token subject (the identity id) from
// a verified request context.
func SubjectFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// EmailFromContext extracts the email claim from a verified request
// context.
func EmailFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	email, _ := claims[EmailClaim].(string)
	return email
}
