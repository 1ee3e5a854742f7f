package opponents

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/fsutil"
	"github.com/specialistvlad/seedgrid/internal/model"
)

// Recorded reads competitor plans from a JSON file or from every *.json file
// under a directory.
type Recorded struct {
	Path string
}

var _ Source = (*Recorded)(nil)

// Fetch implements Source. The graph name is not used: a recorded file
// belongs to whichever graph the caller pointed it at.
func (r *Recorded) Fetch(ctx context.Context, graphName string, n int) (model.CompetitorData, error) {
	logger := ctxlog.FromContext(ctx).With("path", r.Path)

	files, err := fsutil.FindFilesByExtension(r.Path, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to find recorded opponents: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No recorded opponent files found.")
		return model.CompetitorData{}, nil
	}

	out := make(model.CompetitorData)
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		data, err := Parse(raw, n)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		if err := mergeInto(out, data); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("Loaded recorded opponents.", "file", file, "teams", len(data))
	}

	logger.Info("Recorded opponents loaded.", "teams", len(out))
	return out, nil
}
