// Package generator walks a source tree for template files, expands
// their file reference placeholders via the splicer package, and writes
// the assembled YAML documents to the mirrored paths under a target
// directory.
//
// Each template is assembled fully in memory before anything touches
// the target path, so a failed template never leaves partial output.
// Writes are skipped when the existing output already carries the same
// SHA-256 digest. Optional extras: workspace status stamping of the
// assembled output ({VAR} references, see the stamper package) and
// YAML validation of every assembled document.
//
// The main entry point is Run, which accepts a Config struct with all
// parameters for the assembly run.
package generator
