// Package request describes a single HTTP call independently of how it is
// executed.
package request

import "net/http"

type Method uint8

const (
	MethodGet Method = iota
	MethodPost
)

func (m Method) String() string {
	if m == MethodPost {
		return http.MethodPost
	}
	return http.MethodGet
}

// ContentType is the body encoding of a request. ContentTypeNone means the
// header is not set.
type ContentType uint8

const (
	ContentTypeNone ContentType = iota
	ContentTypeFormURLEncoded
	ContentTypeJSON
)

// MIME returns the header value for the content type, or "" for ContentTypeNone.
func (c ContentType) MIME() string {
	switch c {
	case ContentTypeFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case ContentTypeJSON:
		return "application/json"
	default:
		return ""
	}
}

// Descriptor is one pending HTTP call. Body and UserAgent are nil when unset.
// No validation is done here: the encoder that builds a Descriptor is
// responsible for its consistency.
type Descriptor struct {
	URL         string
	Method      Method
	Body        *string
	ContentType ContentType
	UserAgent   *string
}

func Get(url string) Descriptor {
	return Descriptor{URL: url, Method: MethodGet}
}

func Post(url, body string) Descriptor {
	return Descriptor{URL: url, Method: MethodPost, Body: &body}
}

func PostForm(url, body string) Descriptor {
	d := Post(url, body)
	d.ContentType = ContentTypeFormURLEncoded
	return d
}

// WithUserAgent returns a copy of d that overrides the User-Agent header.
func (d Descriptor) WithUserAgent(ua string) Descriptor {
	d.UserAgent = &ua
	return d
}
