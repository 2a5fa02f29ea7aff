package markdown

import (
	"fmt"
	"sort"
	"strings"
)

const fence = "---\n"

// AddFrontMatter prepends a YAML front-matter block. Keys are sorted and values
// quoted so titles containing colons or backticks stay valid YAML.
func AddFrontMatter(src string, fields map[string]string) string {
	if len(fields) == 0 {
		return src
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(fence)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s: %q\n", k, fields[k]))
	}
	b.WriteString(fence)
	b.WriteString("\n")
	b.WriteString(src)
	return b.String()
}

// StripFrontMatter returns src without a leading front-matter block.
func StripFrontMatter(src string) string {
	if !strings.HasPrefix(src, fence) {
		return src
	}
	end := strings.Index(src[len(fence):], "\n"+fence)
	if end < 0 {
		return src
	}
	rest := src[len(fence)+end+1+len(fence):]
	return strings.TrimPrefix(rest, "\n")
}
