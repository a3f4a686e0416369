// Package network turns typed request descriptors into HTTP calls and decodes
// the replies into domain values or a typed *Error.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Endpoint identifies one API operation
type Endpoint int

const (
	EndpointAdvisors Endpoint = iota + 1
	EndpointAccounts
	EndpointHoldings
)

// Request describes one API call before it becomes an *http.Request.
// Descriptors are values; the With* methods return modified copies.
type Request struct {
	endpoint  Endpoint
	advisorID string
	accountID string
	query     url.Values
	body      any
	multipart [][]byte
}

// GetAdvisors lists every advisor
func GetAdvisors() Request {
	return Request{endpoint: EndpointAdvisors}
}

// GetAccounts lists the accounts of one advisor
func GetAccounts(advisorID string) Request {
	return Request{endpoint: EndpointAccounts, advisorID: advisorID}
}

// GetHoldings lists the holdings of one account
func GetHoldings(accountID string) Request {
	return Request{endpoint: EndpointHoldings, accountID: accountID}
}

func (r Request) Endpoint() Endpoint { return r.endpoint }
func (r Request) AdvisorID() string  { return r.advisorID }
func (r Request) AccountID() string  { return r.accountID }

// Path is fixed per endpoint. The parent id is not sent: the API scopes
// nothing by it today.
func (r Request) Path() string {
	switch r.endpoint {
	case EndpointAdvisors:
		return "/advisors"
	case EndpointAccounts:
		return "/accounts"
	case EndpointHoldings:
		return "/holdings"
	default:
		return ""
	}
}

// Method is the HTTP verb; every current endpoint is a read
func (r Request) Method() string {
	switch r.endpoint {
	case EndpointAdvisors, EndpointAccounts, EndpointHoldings:
		return http.MethodGet
	default:
		return ""
	}
}

func (r Request) Query() url.Values  { return r.query }
func (r Request) Body() any          { return r.body }
func (r Request) Multipart() [][]byte { return r.multipart }

// WithQuery returns a copy carrying query items
func (r Request) WithQuery(q url.Values) Request {
	r.query = q
	return r
}

// WithBody returns a copy carrying a JSON body
func (r Request) WithBody(body any) Request {
	r.body = body
	return r
}

// WithMultipart returns a copy carrying multipart file parts
func (r Request) WithMultipart(parts ...[]byte) Request {
	r.multipart = parts
	return r
}

func (r Request) String() string {
	switch r.endpoint {
	case EndpointAdvisors:
		return "getAdvisors"
	case EndpointAccounts:
		return fmt.Sprintf("getAccounts(%s)", r.advisorID)
	case EndpointHoldings:
		return fmt.Sprintf("getHoldings(%s)", r.accountID)
	default:
		return "unknown"
	}
}

// BuildURL joins the environment origin and the endpoint path
func (r Request) BuildURL(env Environment) (*url.URL, error) {
	if r.Path() == "" {
		return nil, newError(KindInvalidRequest, fmt.Errorf("unknown endpoint %d", r.endpoint))
	}

	u, err := url.Parse(env.BaseURL + r.Path())
	if err != nil {
		return nil, newError(KindInvalidRequest, err)
	}
	if u.Host == "" {
		return nil, newError(KindInvalidRequest, fmt.Errorf("missing host in base URL %q", env.BaseURL))
	}
	if env.ForceHTTPS {
		u.Scheme = "https"
	}
	u.RawQuery = ""
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	return u, nil
}

// BuildHTTPRequest produces the transport request. JSON headers are set unless
// a multipart payload is present.
func (r Request) BuildHTTPRequest(ctx context.Context, env Environment) (*http.Request, error) {
	u, err := r.BuildURL(env)
	if err != nil {
		return nil, err
	}

	var (
		body        io.Reader
		contentType = "application/json"
	)
	if len(r.multipart) > 0 {
		payload, ct, err := MultipartBody(r.multipart)
		if err != nil {
			return nil, newError(KindInvalidRequest, err)
		}
		body = bytes.NewReader(payload)
		contentType = ct
	} else if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, newError(KindInvalidRequest, fmt.Errorf("failed to encode body: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method(), u.String(), body)
	if err != nil {
		return nil, newError(KindInvalidRequest, err)
	}

	req.Header.Set("Content-Type", contentType)
	if len(r.multipart) == 0 {
		req.Header.Set("Accept", "application/json")
	}

	return req, nil
}
