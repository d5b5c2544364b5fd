package domain

// CatalogEntry is one project as reported by the catalog source
type CatalogEntry struct {
	ID              string
	ProjectID       string
	ContractAddress string
	Invocations     string
	MaxInvocations  string
	Name            *string
	Description     *string
	Active          bool
	ArtistName      *string
	CategoryName    *string
	VerticalName    string
	Tags            []string
	StartDatetime   *string
}

// WalletToken is a token held by a wallet
type WalletToken struct {
	TokenID         string `json:"token_id"`
	Invocation      int64  `json:"invocation"`
	ProjectName     string `json:"project_name"`
	ContractAddress string `json:"contract_address"`
}

// FloorToken is the lowest listed token of a project
type FloorToken struct {
	Invocation   int64
	ListEthPrice *float64
}

// OpenProject is a project currently minting
type OpenProject struct {
	ID   string
	Name string
}

// TokenMetadata is the display data of a single token
type TokenMetadata struct {
	Name            string         `json:"name"`
	Artist          string         `json:"artist"`
	CollectionName  string         `json:"collection_name"`
	Platform        string         `json:"platform"`
	ExternalURL     string         `json:"external_url"`
	GeneratorURL    string         `json:"generator_url"`
	PreviewAssetURL string         `json:"preview_asset_url"`
	Features        map[string]any `json:"features"`
}
