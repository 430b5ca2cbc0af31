package cli

import (
	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	OutputPath string
	BatchFile  string
	LogDir     string
	ListModels bool
	NoGUI      bool

	// Completion endpoint flags
	Endpoint       string
	Model          string
	MaxTokens      int
	TimeoutSeconds int
}

// NewFlags creates a new Flags instance with default values. The
// defaults match the constants the pronunciation fetcher uses.
func NewFlags() *Flags {
	return &Flags{
		OutputPath:     "pronunciations.json",
		LogDir:         "logs",
		Endpoint:       pronounce.DefaultEndpoint,
		Model:          pronounce.DefaultModel,
		MaxTokens:      pronounce.DefaultMaxTokens,
		TimeoutSeconds: int(pronounce.DefaultTimeout.Seconds()),
	}
}
