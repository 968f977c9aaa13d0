package components

import (
	"encoding/json"
	"log"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	// json.Marshal escapes <, > and &, so the result is safe inside a script element
	return string(b)
}

// LegalServiceSchema is the schema.org description embedded as JSON-LD
type LegalServiceSchema struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	AreaServed  string   `json:"areaServed,omitempty"`
	KnowsAbout  []string `json:"knowsAbout,omitempty"`
}

// NewLegalServiceSchema returns the structured data for the firm
func NewLegalServiceSchema(name, description, url string, practiceAreas []string) LegalServiceSchema {
	return LegalServiceSchema{
		Context:     "https://schema.org",
		Type:        "LegalService",
		Name:        name,
		Description: description,
		URL:         url,
		KnowsAbout:  practiceAreas,
	}
}
