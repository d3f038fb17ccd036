package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const unknownProject = "Unknown"

//go:embed markers.yml
var markersYAML []byte

var (
	markersOnce sync.Once
	markers     []Marker
	markersErr  error
)

// parseMarkers decodes an ordered marker list and checks every entry is complete.
func parseMarkers(data []byte) ([]Marker, error) {
	var list []Marker
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("error parsing marker table: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("marker table is empty")
	}
	for i, m := range list {
		if m.File == "" || m.Label == "" {
			return nil, fmt.Errorf("marker %d: both file and label are required", i)
		}
	}
	return list, nil
}

// projectMarkers returns the embedded marker table, decoded once.
func projectMarkers() ([]Marker, error) {
	markersOnce.Do(func() {
		markers, markersErr = parseMarkers(markersYAML)
	})
	return markers, markersErr
}

// detectProjectType returns the label of the first marker present in dir,
// or "Unknown" if none are.
func detectProjectType(dir string) string {
	list, err := projectMarkers()
	if err != nil {
		log.Warn("marker table unavailable", "error", err)
		return unknownProject
	}
	return matchMarkers(dir, list)
}

// matchMarkers checks list in order. Only existence is tested; a stat error
// of any kind counts as absent.
func matchMarkers(dir string, list []Marker) string {
	for _, m := range list {
		if _, err := os.Stat(filepath.Join(dir, m.File)); err == nil {
			return m.Label
		}
	}
	return unknownProject
}
