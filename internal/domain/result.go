package domain

// Stats summarizes a loaded expectations document
type Stats struct {
	Total            int `json:"total"`
	DefaultModeCount int `json:"default_mode"`
	StrictModeCount  int `json:"strict_mode"`
}

// ExportMeta contains metadata about an exported view
type ExportMeta struct {
	Source     string   `json:"source"`
	Search     string   `json:"search,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Matched    int      `json:"matched"`
	Stats      Stats    `json:"stats"`
	Timestamp  string   `json:"timestamp"`
}

// ExportedRecord is a TestRecord with its resolved browser link
type ExportedRecord struct {
	Path  string            `json:"path"`
	URL   string            `json:"url"`
	Modes map[string]string `json:"modes"`
}

// ExportOutput is the complete output structure for an export
type ExportOutput struct {
	Meta    ExportMeta       `json:"meta"`
	Details []ExportedRecord `json:"details"`
}
