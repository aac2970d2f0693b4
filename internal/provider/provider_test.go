package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unishort/internal/provider"
)

func TestName(t *testing.T) {
	tests := []struct {
		p    provider.Provider
		want string
	}{
		{provider.BamBz, "bam.bz"},
		{provider.BnGy, "bn.gy"},
		{provider.FifoCc, "fifo.cc"},
		{provider.HecSu, "hec.su"},
		{provider.IsGd, "is.gd"},
		{provider.NowLinks, "nowlinks.net"},
		{provider.PhxCoIn, "phx.co.in"},
		{provider.PsbeCo, "psbe.co"},
		{provider.Rdd, "readability.com"},
		{provider.Rlu, "rlu.ru"},
		{provider.TinyURL, "tinyurl.com"},
		{provider.VGd, "v.gd"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Name())
			assert.Equal(t, tt.want, tt.p.String())
			assert.True(t, tt.p.Valid())
		})
	}
}

func TestName_EveryProviderNonEmpty(t *testing.T) {
	all := provider.All()
	require.Len(t, all, 12)
	for _, p := range all {
		assert.NotEmpty(t, p.Name(), "provider %d has no name", uint8(p))
	}
}

func TestInvalidProvider(t *testing.T) {
	var p provider.Provider
	assert.False(t, p.Valid())
	assert.Empty(t, p.Name())
	assert.Equal(t, "Provider(0)", p.String())
}

func TestRanked_ContainsEveryProviderOnce(t *testing.T) {
	ranked := provider.Ranked()
	require.Len(t, ranked, 12)
	assert.ElementsMatch(t, provider.All(), ranked)

	seen := make(map[provider.Provider]bool)
	for _, p := range ranked {
		assert.False(t, seen[p], "%s listed twice", p)
		seen[p] = true
	}
}

func TestRanked_StableOrder(t *testing.T) {
	first := provider.Ranked()
	second := provider.Ranked()
	assert.Equal(t, first, second)

	assert.Equal(t, provider.IsGd, first[0])
	assert.Equal(t, provider.PhxCoIn, first[len(first)-1])
}

func TestRanked_ReturnsCopy(t *testing.T) {
	ranked := provider.Ranked()
	ranked[0] = provider.PhxCoIn

	assert.Equal(t, provider.IsGd, provider.Ranked()[0])
}

func TestNote(t *testing.T) {
	assert.Empty(t, provider.IsGd.Note())
	assert.Contains(t, provider.HecSu.Note(), "3000")
	assert.Contains(t, provider.Rlu.Note(), "100")
	assert.Contains(t, provider.TinyURL.Note(), "no API")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    provider.Provider
		wantErr bool
	}{
		{"exact", "is.gd", provider.IsGd, false},
		{"upper case", "TinyURL.com", provider.TinyURL, false},
		{"surrounding spaces", "  v.gd ", provider.VGd, false},
		{"unknown", "bit.ly", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provider.Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, provider.ErrUnknownProvider)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_RoundTripsEveryName(t *testing.T) {
	for _, p := range provider.All() {
		got, err := provider.Parse(p.Name())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestParseList(t *testing.T) {
	got, err := provider.ParseList([]string{"v.gd", "", "is.gd"})
	require.NoError(t, err)
	assert.Equal(t, []provider.Provider{provider.VGd, provider.IsGd}, got)

	_, err = provider.ParseList([]string{"is.gd", "nope"})
	assert.ErrorIs(t, err, provider.ErrUnknownProvider)
}
