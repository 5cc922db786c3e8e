package util

import (
	"encoding/json"
	"fmt"
	"os"

	"travel-buddy/models"
	"travel-buddy/models/geoapify"
)

// ReadCatalogFromJSON loads the listings catalog from JSON on disk.
func ReadCatalogFromJSON(filePath string) (*models.CatalogFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var file models.CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CatalogFile: %w", err)
	}
	return &file, nil
}

// ReadPlacesResponseFromJSON loads a Geoapify PlacesResponse from JSON on disk.
func ReadPlacesResponseFromJSON(filePath string) (*geoapify.PlacesResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp geoapify.PlacesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlacesResponse: %w", err)
	}
	return &resp, nil
}
