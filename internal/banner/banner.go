package banner

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed banner.txt
var defaultBanner string

// Load returns the banner text. An empty path selects the built in banner.
func Load(path string) (string, error) {
	if len(path) == 0 {
		return defaultBanner, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read banner file: %w", err)
	}

	return string(data), nil
}
