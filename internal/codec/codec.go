// Package codec holds, for every provider, how to build the shortening request
// and how to pull the short URL out of the response body.
package codec

import (
	"unishort/internal/provider"
	"unishort/internal/request"
)

// Codec is the encode/decode pair of one provider. Both methods are pure.
type Codec interface {
	// BuildRequest embeds longURL into the provider's endpoint. The URL is
	// inserted verbatim, without percent-encoding.
	BuildRequest(longURL string) request.Descriptor
	// ParseResponse extracts the short URL from a raw response body. It
	// reports false when the body is empty or the expected markers are
	// missing.
	ParseResponse(raw string) (string, bool)
}

type codec struct {
	encode func(longURL string) request.Descriptor
	decode decoder
}

func (c codec) BuildRequest(longURL string) request.Descriptor {
	return c.encode(longURL)
}

func (c codec) ParseResponse(raw string) (string, bool) {
	return c.decode(raw)
}

var codecs = map[provider.Provider]Codec{
	provider.BamBz: codec{
		encode: func(u string) request.Descriptor { return request.PostForm(bamBzEndpoint, "target="+u) },
		decode: quotedField(bamBzKey, unescapeSlashes),
	},
	provider.BnGy: codec{
		encode: func(u string) request.Descriptor { return request.Get(bnGyEndpoint + u) },
		decode: between(bnGyOpen, bnGyClose),
	},
	provider.FifoCc: codec{
		encode: func(u string) request.Descriptor { return request.Get(fifoCcEndpoint + u) },
		decode: quotedField(fifoCcKey, prefix(fifoCcBase)),
	},
	provider.HecSu: codec{
		encode: func(u string) request.Descriptor { return request.Get(hecSuEndpoint + u + hecSuSuffix) },
		decode: between(hecSuOpen, hecSuClose),
	},
	provider.IsGd: codec{
		encode: func(u string) request.Descriptor { return request.Get(isGdEndpoint + u) },
		decode: passthrough,
	},
	provider.NowLinks: codec{
		encode: func(u string) request.Descriptor { return request.Get(nowLinksEndpoint + u) },
		decode: passthrough,
	},
	provider.PhxCoIn: codec{
		encode: func(u string) request.Descriptor { return request.Get(phxCoInEndpoint + u) },
		decode: passthrough,
	},
	provider.PsbeCo: codec{
		encode: func(u string) request.Descriptor { return request.Get(psbeCoEndpoint + u) },
		decode: between(psbeCoOpen, psbeCoClose),
	},
	provider.Rdd: codec{
		encode: func(u string) request.Descriptor { return request.Post(rddEndpoint, "url="+u) },
		decode: quotedField(rddKey, dropLast),
	},
	provider.Rlu: codec{
		encode: func(u string) request.Descriptor { return request.Get(rluEndpoint + u) },
		decode: passthrough,
	},
	provider.TinyURL: codec{
		encode: func(u string) request.Descriptor { return request.Get(tinyURLEndpoint + u) },
		decode: attribute(tinyURLMarker, tinyURLEnd),
	},
	provider.VGd: codec{
		encode: func(u string) request.Descriptor { return request.Get(vGdEndpoint + u) },
		decode: passthrough,
	},
}

// For returns the codec of p. It reports false for values that are not a
// known provider.
func For(p provider.Provider) (Codec, bool) {
	c, ok := codecs[p]
	return c, ok
}
