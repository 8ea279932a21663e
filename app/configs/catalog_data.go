package configs

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/brands.json data/templates.json
var dataFS embed.FS

type BrandCatalog struct {
	Sectors     map[string][]string `json:"sectors"`
	IgnoreWords []string            `json:"ignore_words"`
}

type TemplateCategory struct {
	Name      string   `json:"name"`
	Keywords  []string `json:"keywords"`
	Templates []string `json:"templates"`
}

// TemplateCatalog holds fallback descriptions. Categories are tried in
// order; Default applies when no keyword matches.
type TemplateCatalog struct {
	Placeholder string             `json:"placeholder"`
	Categories  []TemplateCategory `json:"categories"`
	Default     []string           `json:"default"`
}

type CatalogData struct {
	Brands    BrandCatalog
	Templates TemplateCatalog
}

// LoadCatalogData parses the embedded brand and template lists. It is meant
// to run once at startup; the result is treated as read-only.
func LoadCatalogData() (*CatalogData, error) {
	var data CatalogData
	if err := readJSON("data/brands.json", &data.Brands); err != nil {
		return nil, err
	}
	if err := readJSON("data/templates.json", &data.Templates); err != nil {
		return nil, err
	}
	if len(data.Templates.Default) == 0 {
		return nil, fmt.Errorf("templates.json: default templates must not be empty")
	}
	return &data, nil
}

func readJSON(name string, v interface{}) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
