// Binary cfngen assembles YAML documents from template trees by
// expanding "{{ name.ext }}" file reference placeholders with the
// content of sibling files.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/byte4ever/cfngen/generator"
)

const (
	defaultSourceDir = "src"
	defaultTargetDir = "template"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run() error {
	var (
		stampInfoFile arrayFlags
		source        string
		target        string
		name          string
		cfgPath       string
		indent        int
		validate      bool
	)

	flag.StringVar(
		&source, "source", "",
		`source directory scanned for templates (default "src")`,
	)

	flag.StringVar(
		&target, "target", "",
		`target directory for assembled documents (default "template")`,
	)

	flag.StringVar(
		&name, "template", "",
		`template file name (default "template.yaml")`,
	)

	flag.IntVar(
		&indent, "indent", 0,
		"indentation step for spliced content (default 2)",
	)

	flag.Var(
		&stampInfoFile,
		"stamp_info_file",
		"workspace status file path (repeatable)",
	)

	flag.BoolVar(
		&validate, "validate", false,
		"validate assembled documents as YAML",
	)

	flag.StringVar(
		&cfgPath, "config", "",
		"JSON configuration file path",
	)

	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})

	cfg := generator.Config{
		SourceDir:      source,
		TargetDir:      target,
		TemplateName:   name,
		IndentSize:     indent,
		StampInfoFiles: stampInfoFile,
		Validate:       validate,
	}

	if cfgPath != "" {
		fileCfg, err := generator.LoadConfig(cfgPath)
		if err != nil {
			return err
		}

		cfg = merge(fileCfg, cfg, set)
	}

	if cfg.SourceDir == "" {
		cfg.SourceDir = defaultSourceDir
	}

	if cfg.TargetDir == "" {
		cfg.TargetDir = defaultTargetDir
	}

	return generator.Run(cfg)
}

// merge overlays flag values on top of file values. A flag wins
// whenever it was given on the command line, even when set to its
// zero value.
func merge(
	base generator.Config,
	flags generator.Config,
	set map[string]bool,
) generator.Config {
	if set["source"] {
		base.SourceDir = flags.SourceDir
	}

	if set["target"] {
		base.TargetDir = flags.TargetDir
	}

	if set["template"] {
		base.TemplateName = flags.TemplateName
	}

	if set["indent"] {
		base.IndentSize = flags.IndentSize
	}

	if set["stamp_info_file"] {
		base.StampInfoFiles = flags.StampInfoFiles
	}

	if set["validate"] {
		base.Validate = flags.Validate
	}

	return base
}

func main() {
	if err := run(); err != nil {
		slog.Error("cfngen failed", "err", err)
		os.Exit(1)
	}
}
