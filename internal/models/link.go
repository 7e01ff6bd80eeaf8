// Package models defines the domain types of the link catalog.
package models

// RawEntry is one authored link definition as it appears in a category
// YAML file. Optional fields keep their zero value until normalization
// applies the documented defaults.
type RawEntry struct {
	ID          string   `yaml:"id"`
	Provider    string   `yaml:"provider"`
	Display     string   `yaml:"display"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"`
	Region      string   `yaml:"region"`
	PayWall     string   `yaml:"payWall"`
	URL         string   `yaml:"url"`
	Priority    int      `yaml:"priority"`
	Types       []string `yaml:"types"`
	Autorun     bool     `yaml:"autorun"`
}

// Link is the fully normalized output record. Every field carries a
// concrete value; an empty string is a valid default, never null.
type Link struct {
	ID          string   `json:"id"`
	Provider    string   `json:"provider"`
	Display     string   `json:"display"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Region      string   `json:"region"`
	PayWall     string   `json:"payWall"`
	URL         string   `json:"url"`
	Category    string   `json:"category"`
	Priority    int      `json:"priority"`
	Types       []string `json:"types"`
	Autorun     bool     `json:"autorun"`
}

// Document is the generated catalog as written to disk. Consumers treat
// it as read-only output.
type Document struct {
	Note      string `json:"_note"`
	Version   string `json:"version"`
	UpdatedAt string `json:"updatedAt"`
	Links     []Link `json:"links"`
}
