// Package splicer expands file reference placeholders inside YAML
// template lines. A placeholder is a double-quoted double-brace token
// naming a sibling file, "{{ name.ext }}"; the splicer locates it,
// loads the referenced file, and splices its content back into the
// line stream with YAML-correct indentation.
//
// Referenced yaml/yml files nest directly into the document (a leading
// "---" document-start line is dropped); any other extension is spliced
// as a literal block behind a "|" block-scalar marker. Single-line
// files are substituted inline. Substitution is strictly line-local and
// one level deep: placeholders inside spliced content are not expanded.
package splicer
