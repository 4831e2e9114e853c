package client

import (
	"context"
	"io"
	"net/url"
)

// Client is the transport used by the services. out receives the decoded
// JSON body; pass *json.RawMessage to post-process it (see Unwrap), or nil
// to discard it.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string, query url.Values, out any) error
	PostMultipart(ctx context.Context, path string, form MultipartForm, out any) error
}

// TokenSource yields the bearer token for the next request, if any.
type TokenSource interface {
	GetToken(ctx context.Context) (string, bool)
}

// MultipartForm is a multipart/form-data body.
type MultipartForm struct {
	Fields map[string]string
	Files  []FilePart
}

// FilePart is one file of a MultipartForm.
type FilePart struct {
	Field    string
	FileName string
	Content  io.Reader
}
