// Package provider enumerates the third-party URL shortening services unishort
// can talk to, along with their display names and a reliability ranking.
package provider

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownProvider = errors.New("unknown provider")

// Provider identifies one shortening service. The set is closed; values outside
// the declared constants are not valid providers.
type Provider uint8

const (
	BamBz Provider = iota + 1
	BnGy
	FifoCc
	// HecSu is limited to 3000 API requests per day.
	HecSu
	IsGd
	NowLinks
	// PhxCoIn shows ads after some time.
	PhxCoIn
	PsbeCo
	Rdd
	// Rlu may block an IP that adds more than 100 URLs per hour.
	Rlu
	// TinyURL has no API; results are scraped from its web page.
	TinyURL
	VGd
)

type info struct {
	name string
	note string
}

var registry = map[Provider]info{
	BamBz:    {name: "bam.bz"},
	BnGy:     {name: "bn.gy"},
	FifoCc:   {name: "fifo.cc"},
	HecSu:    {name: "hec.su", note: "rate limit: 3000 requests per day"},
	IsGd:     {name: "is.gd"},
	NowLinks: {name: "nowlinks.net", note: "shows a preview page instead of a direct link"},
	PhxCoIn:  {name: "phx.co.in", note: "shows ads and a timeout before redirecting"},
	PsbeCo:   {name: "psbe.co", note: "unstable"},
	Rdd:      {name: "readability.com"},
	Rlu:      {name: "rlu.ru", note: "rate limit: 100 requests per hour, IP may be blocked"},
	TinyURL:  {name: "tinyurl.com", note: "no API, result is scraped from the web page"},
	VGd:      {name: "v.gd"},
}

var ranked = [...]Provider{
	IsGd,
	BnGy,
	VGd,
	Rdd,
	BamBz,
	FifoCc,

	// rate limited
	Rlu,
	HecSu,
	// no API
	TinyURL,
	// unstable
	PsbeCo,

	// preview instead of a direct link
	NowLinks,

	// ads with a timeout before the original link
	PhxCoIn,
}

// Name returns the domain name of the provider, e.g. "is.gd".
func (p Provider) Name() string {
	return registry[p].name
}

// Note returns a short description of the provider's known limitations, or an
// empty string when there are none.
func (p Provider) Note() string {
	return registry[p].note
}

func (p Provider) Valid() bool {
	_, ok := registry[p]
	return ok
}

func (p Provider) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Provider(%d)", uint8(p))
	}
	return p.Name()
}

// Ranked returns every provider exactly once, most reliable first. Providers
// with rate limits, ads, previews or no API are at the end. The order is
// advisory: it is meant for picking a fallback sequence.
func Ranked() []Provider {
	out := make([]Provider, len(ranked))
	copy(out, ranked[:])
	return out
}

// All returns every provider in declaration order.
func All() []Provider {
	out := make([]Provider, 0, len(registry))
	for p := BamBz; p <= VGd; p++ {
		out = append(out, p)
	}
	return out
}

// Parse looks a provider up by its domain name, ignoring case and surrounding
// whitespace.
func Parse(name string) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, i := range registry {
		if i.name == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

// ParseList parses provider names in order. Empty entries are skipped.
func ParseList(names []string) ([]Provider, error) {
	out := make([]Provider, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		p, err := Parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
