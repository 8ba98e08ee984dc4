package stamper

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Stamps maps workspace status variable names to their values.
type Stamps map[string]interface{}

// Load reads status files and merges them into a single Stamps
// map. Each line is "KEY VALUE" with the first space as delimiter;
// lines without a space are silently skipped. Later files override
// earlier ones.
func Load(paths []string) (Stamps, error) {
	const errCtx = "loading stamps"

	st := make(Stamps)

	for _, pa := range paths {
		content, err := os.ReadFile(pa) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			string(content), "\n",
		) {
			parts := strings.SplitN(line, " ", 2)
			if len(parts) == 2 {
				st[parts[0]] = parts[1]
			}
		}
	}

	return st, nil
}

// Expand substitutes {VAR} references in content with stamp
// values. Unknown variables are preserved as-is.
func (st Stamps) Expand(content string) string {
	return fasttemplate.ExecuteStringStd(
		content, "{", "}", st,
	)
}
