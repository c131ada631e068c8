package http

import "errors"

type RequestMethod string

const (
	GET  RequestMethod = "GET"
	POST RequestMethod = "POST"
)

// Request is a single outbound call built fluently from a Client. It is not safe for reuse
// across goroutines.
type Request struct {
	client      *Client
	method      RequestMethod
	path        string
	query       map[string]string
	headers     map[string]string
	body        any
	successResp any
	errorResp   any
}

// NewHttpClientRequest starts a GET on the client's base URL.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{client: client, method: GET, path: "/"}
}

func (r *Request) WithMethod(method RequestMethod) *Request {
	r.method = method
	return r
}

func (r *Request) WithPath(path string) *Request {
	r.path = path
	return r
}

// WithQueryParams replaces the query; values are escaped when the URL is built.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.query = params
	return r
}

func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.headers = headers
	return r
}

// WithBody accepts a string, raw bytes or any value encoded as JSON.
func (r *Request) WithBody(body any) *Request {
	r.body = body
	return r
}

// WithSuccessResp is the decode target for 2xx responses.
func (r *Request) WithSuccessResp(target any) *Request {
	r.successResp = target
	return r
}

// WithErrorResp is the decode target for any other status.
func (r *Request) WithErrorResp(target any) *Request {
	r.errorResp = target
	return r
}

// Execute performs the call once, without retries. It returns the decoded success target,
// the decoded error target, the HTTP status (0 on transport failure) and an error for
// anything other than a 2xx.
func (r *Request) Execute() (any, any, int, error) {
	switch {
	case r.client == nil:
		return nil, nil, 0, errors.New("client is required")
	case r.method == "":
		return nil, nil, 0, errors.New("method is required")
	case r.path == "":
		return nil, nil, 0, errors.New("path is required")
	}

	return r.client.doRequest(string(r.method), r.path, r.query, r.headers, r.body, r.successResp, r.errorResp)
}
