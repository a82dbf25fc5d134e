package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// Diff compares generated files with the ones in outputDir and returns a
// unified diff for every file whose content differs. A file missing on disk
// is diffed against empty content. The result is empty when nothing changed.
func Diff(files []GeneratedFile, outputDir string) (string, error) {
	var sb strings.Builder

	for _, file := range files {
		path := filepath.Join(outputDir, file.Filename)

		current, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading %s: %w", file.Filename, err)
		}

		if bytes.Equal(current, file.Content) {
			continue
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(current)),
			B:        difflib.SplitLines(string(file.Content)),
			FromFile: path,
			ToFile:   path + " (generated)",
			Context:  diffContext,
		})
		if err != nil {
			return "", fmt.Errorf("diffing %s: %w", file.Filename, err)
		}

		sb.WriteString(diff)
	}

	return sb.String(), nil
}
