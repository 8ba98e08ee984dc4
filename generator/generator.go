package generator

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte4ever/cfngen/splicer"
	"github.com/byte4ever/cfngen/stamper"
)

// DefaultTemplateName is the file name identifying templates in the
// source tree.
const DefaultTemplateName = "template.yaml"

// Config holds all settings for a template assembly run. Use a
// Config struct instead of many arguments.
type Config struct {
	// SourceDir is the root scanned recursively for template
	// files.
	SourceDir string `json:"source_dir"`

	// TargetDir receives assembled documents at the same relative
	// paths as their sources.
	TargetDir string `json:"target_dir"`

	// TemplateName is the file name identifying templates
	// (default "template.yaml").
	TemplateName string `json:"template_name"`

	// IndentSize is the extra indentation applied to spliced
	// content (default 2).
	IndentSize int `json:"indent_size"`

	// StampInfoFiles are workspace status files. When set, {VAR}
	// references in assembled output are substituted after
	// splicing.
	StampInfoFiles []string `json:"stamp_info_files"`

	// Validate decodes each assembled document as YAML and fails
	// the run on parse errors.
	Validate bool `json:"validate"`
}

func (cfg *Config) templateName() string {
	if cfg.TemplateName == "" {
		return DefaultTemplateName
	}

	return cfg.TemplateName
}

// Run assembles every template under SourceDir and writes the
// results under TargetDir. Templates are processed independently
// and sequentially; the first failure aborts the run.
func Run(cfg Config) error {
	const errCtx = "generating templates"

	if cfg.SourceDir == "" || cfg.TargetDir == "" {
		return fmt.Errorf(
			"%s: source and target directories are required",
			errCtx,
		)
	}

	if cfg.IndentSize < 0 {
		return fmt.Errorf(
			"%s: indent size must not be negative, got %d",
			errCtx, cfg.IndentSize,
		)
	}

	stamps, err := stamper.Load(cfg.StampInfoFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	sp := &splicer.Splicer{IndentSize: cfg.IndentSize}

	err = filepath.WalkDir(
		cfg.SourceDir,
		func(pa string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if de.IsDir() || de.Name() != cfg.templateName() {
				return nil
			}

			rel, err := filepath.Rel(cfg.SourceDir, pa)
			if err != nil {
				return err
			}

			return generateOne(
				cfg, sp, stamps, pa,
				filepath.Join(cfg.TargetDir, rel),
			)
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// generateOne assembles a single template and writes it to
// dstPath. The whole document is built in memory first; nothing is
// written when any placeholder fails to expand.
func generateOne(
	cfg Config,
	sp *splicer.Splicer,
	stamps stamper.Stamps,
	srcPath string,
	dstPath string,
) error {
	const errCtx = "generating template"

	raw, err := os.ReadFile(srcPath) //nolint:gosec // path found under the configured source root
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	processed, err := sp.ProcessLines(
		filepath.Dir(srcPath),
		splicer.SplitLines(string(raw)),
	)
	if err != nil {
		return fmt.Errorf(
			"%s: %s: %w", errCtx, srcPath, err,
		)
	}

	content := strings.Join(processed, "")

	if len(cfg.StampInfoFiles) > 0 {
		content = stamps.Expand(content)
	}

	if cfg.Validate {
		if err := validateYAML(content); err != nil {
			return fmt.Errorf(
				"%s: %s: %w", errCtx, srcPath, err,
			)
		}
	}

	same, err := upToDate(dstPath, content)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if same {
		slog.Info("template unchanged", "target", dstPath)

		return nil
	}

	if err := os.MkdirAll(
		filepath.Dir(dstPath), 0o750,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := os.WriteFile(
		dstPath, []byte(content), 0o600,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Info(
		"template generated",
		"source", srcPath,
		"target", dstPath,
	)

	return nil
}

// upToDate reports whether the file at path already holds content,
// compared by SHA-256 digest. A missing output file never matches.
func upToDate(path string, content string) (bool, error) {
	const errCtx = "comparing digests"

	existing, err := fileDigest(path)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	if existing == "" {
		return false, nil
	}

	return existing == contentDigest(content), nil
}
