package blogportal

import (
	"fmt"

	gosimple "github.com/gosimple/slug"
)

// makeSlug derives a URL-safe slug from a title or name: lowercased,
// non-alphanumerics collapsed to single separators.
func makeSlug(source string) string {
	return gosimple.Make(source)
}

// uniqueSlug returns base when it is free, otherwise the first
// base-N candidate not present in taken.
func uniqueSlug(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}

	if _, ok := used[base]; !ok {
		return base
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}
