package types

// LocalizedText is a label with per-locale values.
type LocalizedText struct {
	EnUS   string `json:"en_US"`
	ZhHans string `json:"zh_Hans,omitempty"`
}

// EmbeddingModel is a text embedding model offered by a provider.
type EmbeddingModel struct {
	Model           string        `json:"model"`
	Label           LocalizedText `json:"label"`
	ModelType       string        `json:"model_type"`
	Features        []string      `json:"features"`
	FetchFrom       string        `json:"fetch_from"`
	ModelProperties struct {
		ContextSize int `json:"context_size"`
	} `json:"model_properties"`
	Deprecated           bool   `json:"deprecated"`
	Status               string `json:"status"`
	LoadBalancingEnabled bool   `json:"load_balancing_enabled"`
}

// EmbeddingProvider groups the embedding models of one provider.
type EmbeddingProvider struct {
	Provider  string           `json:"provider"`
	Label     LocalizedText    `json:"label"`
	IconSmall LocalizedText    `json:"icon_small"`
	IconLarge LocalizedText    `json:"icon_large"`
	Status    string           `json:"status"`
	Models    []EmbeddingModel `json:"models"`
}

// EmbeddingModelList is the reply of the text-embedding model list.
type EmbeddingModelList struct {
	Data []EmbeddingProvider `json:"data"`
}
