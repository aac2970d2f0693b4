package domain

type ShortenRequest struct {
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
}

type ShortenResponse struct {
	ShortURL    string `json:"short_url"`
	Provider    string `json:"provider"`
	OriginalURL string `json:"original_url"`
}

type ProviderInfo struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
	Note string `json:"note,omitempty"`
}

type ProvidersResponse struct {
	Providers []ProviderInfo `json:"providers"`
}
