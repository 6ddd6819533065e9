// Package importer reads the CSV seed files the catalog and the property
// listing start from. Seeds are read once at startup; nothing is written back.
package importer

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/MrJamesThe3rd/valueplus/internal/property"
	"github.com/MrJamesThe3rd/valueplus/internal/recommendation"
)

//go:embed seed/*.csv
var seeds embed.FS

const (
	defaultRecommendations = "seed/recommendations.csv"
	defaultProperties      = "seed/properties.csv"
)

// ParseRecommendations reads a recommendation seed.
func ParseRecommendations(r io.Reader) ([]recommendation.Record, error) {
	cols, rows, headerRow, err := readRows(r, recommendationProfile)
	if err != nil {
		return nil, err
	}

	return parseRecommendations(cols, rows, headerRow)
}

// ParseProperties reads a property seed.
func ParseProperties(r io.Reader) ([]property.Record, error) {
	cols, rows, headerRow, err := readRows(r, propertyProfile)
	if err != nil {
		return nil, err
	}

	return parseProperties(cols, rows, headerRow)
}

// LoadRecommendations reads the seed at path, or the embedded default when path is empty.
func LoadRecommendations(path string) ([]recommendation.Record, error) {
	f, err := open(path, defaultRecommendations)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := ParseRecommendations(f)
	if err != nil {
		return nil, fmt.Errorf("loading recommendations: %w", err)
	}

	return recs, nil
}

// LoadProperties reads the seed at path, or the embedded default when path is empty.
func LoadProperties(path string) ([]property.Record, error) {
	f, err := open(path, defaultProperties)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	props, err := ParseProperties(f)
	if err != nil {
		return nil, fmt.Errorf("loading properties: %w", err)
	}

	return props, nil
}

func open(path, fallback string) (io.ReadCloser, error) {
	if path == "" {
		f, err := seeds.Open(fallback)
		if err != nil {
			return nil, fmt.Errorf("opening embedded seed %s: %w", fallback, err)
		}

		return f, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}

	return f, nil
}
