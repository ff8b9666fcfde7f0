package cli

import "expview/internal/config"

// Flags holds command-line flags
type Flags struct {
	SourceURL  string
	SourceFile string
	EnvFile    string
	Search     string
	Categories []string
	Output     string
	Verbose    bool
	LogFile    string
	NoProgress bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SourceURL:  f.SourceURL,
		SourceFile: f.SourceFile,
		Search:     f.Search,
		Categories: append([]string(nil), f.Categories...),
		Output:     f.Output,
		Verbose:    f.Verbose,
		LogFile:    f.LogFile,
		NoProgress: f.NoProgress,
	}
}
