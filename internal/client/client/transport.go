package client

import (
	"net/http"

	"github.com/dmitrijs2005/jabuspark/internal/common"
)

// bearerTransport is the request-preparation step: it reads the token on
// every request, so a login or logout takes effect on the next call.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Del(common.AuthorizationHeaderName)
	if t.tokens != nil {
		if token, ok := t.tokens.GetToken(r.Context()); ok {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	return t.base.RoundTrip(r)
}
