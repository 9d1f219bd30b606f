package feature

import "strings"

// listDelimiter separates feature names in cookie and header values.
// The format has no escaping; a feature name containing the delimiter
// cannot be represented.
const listDelimiter = "|"

// containsFeature reports whether list, a delimiter-joined set of feature
// names, contains name exactly. Partial matches do not count: "bet" is
// not a member of "alpha|beta".
func containsFeature(list, name string) bool {
	if list == "" || name == "" {
		return false
	}
	for _, item := range strings.Split(list, listDelimiter) {
		if item == name {
			return true
		}
	}
	return false
}
