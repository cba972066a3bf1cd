package http

import (
	"context"
	"fmt"
	"net/http"
)

// Request represents a GET request with various configuration options.
type Request struct {
	requestClient      *Client
	requestContext     context.Context
	requestPath        string
	requestQueryParams map[string]string
	requestHeaders     map[string]string
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient:  client,
		requestContext: context.Background(),
		requestPath:    "/",
	}
}

// WithContext sets the context that bounds the request.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.requestContext = ctx
	return r
}

// WithPath sets the path for the request.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

// WithQueryParams sets the query parameters for the request.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.requestQueryParams = params
	return r
}

// WithHeaders sets the headers for the request.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.requestHeaders = headers
	return r
}

// Execute sends the request and returns the fully read response.
func (r *Request) Execute() (*Response, error) {
	if r.requestClient == nil {
		return nil, fmt.Errorf("client is required")
	}
	if r.requestPath == "" {
		return nil, fmt.Errorf("path is required")
	}

	return r.requestClient.doRequest(
		r.requestContext,
		http.MethodGet,
		r.requestPath,
		r.requestQueryParams,
		r.requestHeaders,
	)
}
