package models

import (
	"encoding/json"
	"fmt"
)

// EncodeDocument serializes the document as stored in the content slot.
func EncodeDocument(doc AppData) ([]byte, error) {
	data, err := json.Marshal(doc.Clone())
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a stored document. Missing collections come back empty.
func DecodeDocument(data []byte) (AppData, error) {
	var doc AppData
	if err := json.Unmarshal(data, &doc); err != nil {
		return AppData{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc.Clone(), nil
}

// Overview counts the entries of each collection, for the admin dashboard.
type Overview struct {
	Services         int `json:"services"`
	Projects         int `json:"projects"`
	FeaturedProjects int `json:"featuredProjects"`
	Plans            int `json:"plans"`
	Testimonials     int `json:"testimonials"`
	Inquiries        int `json:"inquiries"`
}
