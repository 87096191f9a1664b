package configfile

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches the conventional policy file name anywhere under
// the search root.
const DefaultPattern = "**/typegate.{yml,yaml}"

// Locate returns the first file under root matching the doublestar
// pattern, in lexical order. An empty pattern uses DefaultPattern.
func Locate(root, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return "", fmt.Errorf("glob policy file: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no policy file matching %q under %s", pattern, root)
	}
	sort.Strings(matches)
	if len(matches) > 1 {
		slog.Debug("multiple policy files found, using first",
			"count", len(matches),
			"chosen", matches[0],
		)
	}
	return matches[0], nil
}
