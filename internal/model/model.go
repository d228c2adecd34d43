// Package model holds the credential domain model and the JSON payload
// format sealed inside a vault container. The payload is opaque to the
// crypto and codec layers; this package is the only place that knows its
// shape.
package model

import (
	"encoding/json"
	"fmt"
)

// Entry is one stored credential.
type Entry struct {
	Title    string `json:"title"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category,omitempty"`
}

// Category groups entries.
type Category struct {
	Name string `json:"name"`
}

// document is the plaintext payload layout.
type document struct {
	Version    int        `json:"version"`
	Entries    []Entry    `json:"entries"`
	Categories []Category `json:"categories"`
}

const payloadVersion = 1

// Serialize merges entries and categories into the plaintext payload. The
// caller must zero the returned bytes once sealed.
func Serialize(entries []Entry, categories []Category) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	if categories == nil {
		categories = []Category{}
	}
	data, err := json.Marshal(document{
		Version:    payloadVersion,
		Entries:    entries,
		Categories: categories,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault payload: %w", err)
	}
	return data, nil
}

// EmptyStructure returns the payload of a freshly created vault.
func EmptyStructure() ([]byte, error) {
	return Serialize(nil, nil)
}

// DeserializeEntries extracts the entries from a plaintext payload.
func DeserializeEntries(plaintext []byte) ([]Entry, error) {
	doc, err := parse(plaintext)
	if err != nil {
		return nil, err
	}
	return doc.Entries, nil
}

// DeserializeCategories extracts the categories from a plaintext payload.
func DeserializeCategories(plaintext []byte) ([]Category, error) {
	doc, err := parse(plaintext)
	if err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

func parse(plaintext []byte) (*document, error) {
	var doc document
	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vault payload: %w", err)
	}
	return &doc, nil
}
