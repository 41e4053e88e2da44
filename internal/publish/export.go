package publish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// Export writes the documents into dir for static hosting and returns the
// paths written.
func Export(dir string, docs *Documents) ([]string, error) {
	if docs == nil {
		return nil, fmt.Errorf("no documents to export")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{constants.SitemapFile, docs.Sitemap},
		{constants.RSSFile, docs.RSS},
		{constants.AtomFile, docs.Atom},
		{constants.RobotsFile, docs.Robots},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
