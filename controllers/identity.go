package controllers

import (
	"errors"
	"net/http"
	"strings"
)

// DefaultIdentityHeader carries the caller id resolved by the auth layer in
// front of this service.
const DefaultIdentityHeader = "X-User-Id"

// IdentityResolver resolves the calling user for a request. The gate never
// reads auth state from anywhere else.
type IdentityResolver interface {
	Resolve(r *http.Request) (string, error)
}

// HeaderIdentityResolver trusts a header set by the upstream auth proxy.
type HeaderIdentityResolver struct {
	Header string
}

// NewHeaderIdentityResolver returns a resolver reading the default header.
func NewHeaderIdentityResolver() *HeaderIdentityResolver {
	return &HeaderIdentityResolver{Header: DefaultIdentityHeader}
}

func (h *HeaderIdentityResolver) Resolve(r *http.Request) (string, error) {
	userID := strings.TrimSpace(r.Header.Get(h.Header))
	if userID == "" {
		return "", errors.New("missing caller identity")
	}
	return userID, nil
}
