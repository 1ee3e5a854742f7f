package hcl

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/seedgrid/internal/config"
	"github.com/specialistvlad/seedgrid/internal/ctxlog"
	"github.com/specialistvlad/seedgrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

var _ config.Loader = (*Loader)(nil)

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

var liveSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "live"}},
}

// Load parses, decodes and translates the manifest at path.
func (l *Loader) Load(ctx context.Context, path string, vars config.Vars) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx := newEvalContext(vars)

	content, rest, diags := file.Body.PartialContent(liveSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	liveBlock, diags := findUniqueBlock(content.Blocks, "live")
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid HCL file %s: %w", path, diags)
	}

	var root schema.Manifest
	if diags := gohcl.DecodeBody(rest, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	var live *schema.Live
	if liveBlock != nil {
		live = &schema.Live{}
		if diags := gohcl.DecodeBody(liveBlock.Body, evalCtx, live); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode live block in %s: %w", path, diags)
		}
	}

	m, err := translateManifest(&root, live)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.", "strategies", len(m.Strategies), "recorded", len(m.Recorded), "live", m.Live != nil)
	return m, nil
}

// newEvalContext exposes the run's graph name and seed count to expressions.
func newEvalContext(vars config.Vars) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"graph": cty.StringVal(vars.Graph),
			"seeds": cty.NumberIntVal(int64(vars.Seeds)),
		},
	}
}

// translateManifest converts the HCL-specific schema into the agnostic model.
func translateManifest(s *schema.Manifest, live *schema.Live) (*config.Manifest, error) {
	m := &config.Manifest{
		Trials:          s.Trials,
		RandSeed:        s.RandSeed,
		Workers:         s.Workers,
		PrefilterSize:   s.PrefilterSize,
		IsolateFailures: s.IsolateFailures,
		Strict:          s.Strict,
		Strategies:      s.Strategies,
	}
	if s.GraphDir != nil {
		m.GraphDir = *s.GraphDir
	}
	if s.SeedDir != nil {
		m.SeedDir = *s.SeedDir
	}
	if s.Report != nil {
		m.Report = *s.Report
	}
	for _, r := range s.Recorded {
		if r.Path == "" {
			return nil, fmt.Errorf("recorded block has an empty path")
		}
		m.Recorded = append(m.Recorded, r.Path)
	}

	if live != nil {
		feed := &config.LiveFeed{URL: live.URL}
		if live.Namespace != nil {
			feed.Namespace = *live.Namespace
		}
		if live.Timeout != nil {
			d, err := time.ParseDuration(*live.Timeout)
			if err != nil {
				return nil, fmt.Errorf("failed to parse live timeout: %w", err)
			}
			feed.Timeout = d
		}
		m.Live = feed
	}
	return m, nil
}
