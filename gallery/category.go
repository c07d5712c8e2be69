package gallery

import "strings"

// CategoryAll is the sentinel filter meaning "no category narrowing".
const CategoryAll = "all"

// CategoryUncategorized is assigned when a public ID's path is too short or
// malformed to carry a category segment.
const CategoryUncategorized = "sin-categoria"

// Categories is the closed product-category enumeration.
var Categories = []string{"rave-xl", "rave-l", "medium", "personalizados"}

// ValidCategory reports whether cat is a member of the closed enumeration,
// including the uncategorized bucket.
func ValidCategory(cat string) bool {
	if cat == CategoryUncategorized {
		return true
	}
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidFilter reports whether filter is acceptable on the read path: the
// "all" sentinel or a closed-enum member.
func ValidFilter(filter string) bool {
	return filter == CategoryAll || ValidCategory(filter)
}

// ExtractCategory derives the category positionally from a host public ID
// shaped like base/folder/<category>/<file>. It exists only for identifiers
// coming from the host, whose structure we cannot change; everything this
// service produces carries the category explicitly.
func ExtractCategory(publicID string) string {
	parts := strings.Split(publicID, "/")
	if len(parts) >= 3 && ValidCategory(parts[2]) {
		return parts[2]
	}
	return CategoryUncategorized
}
