package versioning

import "strings"

// DefaultBranchTypeSeparator is the separator most branch naming
// conventions use between the branch type and the base.
const DefaultBranchTypeSeparator = "/"

// ParseBranch splits a branch name at the first occurrence of separator.
// "release/2.0" becomes {Type: "release", Base: "2.0"}. When the separator
// is absent, or appears at the start of the name, the whole name is the
// type and the base is empty.
func ParseBranch(branch, separator string) BranchInfo {
	if separator == "" {
		separator = DefaultBranchTypeSeparator
	}

	pos := strings.Index(branch, separator)
	if pos <= 0 {
		return BranchInfo{Type: branch}
	}

	return BranchInfo{
		Type: branch[:pos],
		Base: branch[pos+len(separator):],
	}
}

// NormalizeBranch maps a branch name onto the identifier character set:
// every character outside [A-Za-z0-9.-_] is replaced with a dash. The
// result is safe to embed in artifact names and is stable under repeated
// normalization.
func NormalizeBranch(branch string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, branch)
}
