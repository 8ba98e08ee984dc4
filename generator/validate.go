package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// validateYAML decodes every document in content and reports the
// first parse error. Empty documents are accepted.
func validateYAML(content string) error {
	const errCtx = "validating yaml"

	decoder := yaml.NewDecoder(strings.NewReader(content))

	for {
		var doc interface{}

		err := decoder.Decode(&doc)
		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}
