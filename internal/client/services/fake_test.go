package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/dmitrijs2005/jabuspark/internal/client/client"
)

// call is one request seen by fakeClient.
type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
	Form   client.MultipartForm
	Files  map[string]string
}

type reply struct {
	body string
	err  error
}

// fakeClient implements client.Client for unit tests. Replies are keyed by
// "METHOD path"; unknown keys answer "{}".
type fakeClient struct {
	replies map[string]reply
	calls   []call
}

func newFakeClient() *fakeClient {
	return &fakeClient{replies: map[string]reply{}}
}

func (f *fakeClient) on(method, path, body string) *fakeClient {
	f.replies[method+" "+path] = reply{body: body}
	return f
}

func (f *fakeClient) fail(method, path string, err error) *fakeClient {
	f.replies[method+" "+path] = reply{err: err}
	return f
}

func (f *fakeClient) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return f.do(call{Method: "GET", Path: path, Query: query}, out)
}

func (f *fakeClient) Post(ctx context.Context, path string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return f.do(call{Method: "POST", Path: path, Body: b}, out)
}

func (f *fakeClient) Delete(ctx context.Context, path string, query url.Values, out any) error {
	return f.do(call{Method: "DELETE", Path: path, Query: query}, out)
}

func (f *fakeClient) PostMultipart(ctx context.Context, path string, form client.MultipartForm, out any) error {
	files := map[string]string{}
	for _, p := range form.Files {
		b, _ := io.ReadAll(p.Content)
		files[p.Field+":"+p.FileName] = string(b)
	}
	return f.do(call{Method: "POST", Path: path, Form: form, Files: files}, out)
}

func (f *fakeClient) do(c call, out any) error {
	f.calls = append(f.calls, c)
	r, ok := f.replies[c.Method+" "+c.Path]
	if !ok {
		r = reply{body: "{}"}
	}
	if r.err != nil {
		return r.err
	}
	raw, ok := out.(*json.RawMessage)
	if !ok {
		return fmt.Errorf("fakeClient: unexpected out type %T", out)
	}
	*raw = json.RawMessage(r.body)
	return nil
}
