package main

// Summary holds the four fields reported for a single run.
type Summary struct {
	Path        string
	Size        string // Already formatted, e.g. "2.00 KB"
	Branch      string
	ProjectType string
}

// Marker pairs a marker filename with the project type it implies.
type Marker struct {
	File  string `yaml:"file"`
	Label string `yaml:"label"`
}
