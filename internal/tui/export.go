package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// exportLines writes one value per line to a timestamped text file in the
// current directory and returns the filename.
func exportLines(kind string, lines []string) (string, error) {
	path := fmt.Sprintf("%s_%s.txt", kind, time.Now().Format("20060102_150405"))
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
