package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byte4ever/cfngen/generator"
)

func TestMerge_unset_flags_keep_file_values(t *testing.T) {
	t.Parallel()

	base := generator.Config{
		SourceDir:      "file-src",
		TargetDir:      "file-dst",
		TemplateName:   "stack.yaml",
		IndentSize:     4,
		StampInfoFiles: []string{"status.txt"},
		Validate:       true,
	}

	got := merge(base, generator.Config{}, nil)
	assert.Equal(t, base, got)
}

func TestMerge_set_flags_override_file_values(t *testing.T) {
	t.Parallel()

	base := generator.Config{
		SourceDir:  "file-src",
		TargetDir:  "file-dst",
		IndentSize: 4,
	}

	flags := generator.Config{
		SourceDir:  "flag-src",
		IndentSize: 8,
	}

	got := merge(base, flags, map[string]bool{
		"source": true,
		"indent": true,
	})

	assert.Equal(t, "flag-src", got.SourceDir)
	assert.Equal(t, "file-dst", got.TargetDir)
	assert.Equal(t, 8, got.IndentSize)
}

func TestMerge_explicit_zero_flags_override(t *testing.T) {
	t.Parallel()

	base := generator.Config{
		SourceDir:  "file-src",
		TargetDir:  "file-dst",
		IndentSize: 4,
		Validate:   true,
	}

	// -validate=false and -indent 0 given on the command line
	// must beat the config file.
	got := merge(base, generator.Config{}, map[string]bool{
		"validate": true,
		"indent":   true,
	})

	assert.False(t, got.Validate)
	assert.Equal(t, 0, got.IndentSize)
}
