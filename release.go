package versioning

import (
	"fmt"
	"regexp"
	"strconv"
)

// nextReleaseVersion computes the display version for a release branch.
// With no prior tags the release line starts at "<base>.0"; otherwise the
// numeric suffix of the first (highest) tag is incremented. Tags are
// expected highest-first, as the backends return them.
func nextReleaseVersion(base string, tags []string) (string, error) {
	if len(tags) == 0 {
		return base + ".0", nil
	}

	re := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `\.(\d+)`)
	matches := re.FindStringSubmatch(tags[0])
	if matches == nil {
		return "", fmt.Errorf("%w: %q does not match %q.<number>", ErrMalformedTag, tags[0], base)
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("%w: parsing number in %q: %v", ErrMalformedTag, tags[0], err)
	}

	return fmt.Sprintf("%s.%d", base, n+1), nil
}
