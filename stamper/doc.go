// Package stamper reads workspace status files and substitutes
// single-brace {VAR} placeholders in assembled documents. Load parses
// one or more status files into a Stamps map; the Expand method applies
// the substitution to a document, preserving unknown variables as-is.
package stamper
