package config

import "strings"

const (
	storeFileVar = "STORE_FILE"
	baseURLVar   = "BASE_URL"
)

type Store struct{}

var _ StoreConfig = Store{}

// GetStoreFile returns the path of the JSON resource snapshot used by the CLI.
func (Store) GetStoreFile() string {
	return GetEnv(storeFileVar, "./data/resources.json")
}

// GetBaseURL returns the API base URL new resource hrefs are created under,
// without a trailing slash.
func (Store) GetBaseURL() string {
	return strings.TrimRight(GetEnv(baseURLVar, "https://api.example.com/v1"), "/")
}
