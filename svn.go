package versioning

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// svnInfoService reads branch and tag metadata by invoking the svn binary
// against the working copy.
type svnInfoService struct {
	// run is replaceable in tests. nil means real command execution.
	run func(dir string, args ...string) ([]byte, error)
}

// Subversion branch names cannot contain slashes, so the convention is a
// dash between type and base, as in "release-2.0".
func (s *svnInfoService) BranchTypeSeparator() string {
	return "-"
}

func (s *svnInfoService) exec(ctx BuildContext, args ...string) ([]byte, error) {
	dir := ctx.Dir
	if dir == "" {
		dir = "."
	}
	if s.run != nil {
		return s.run(dir, args...)
	}

	cmd := exec.Command("svn", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok && isNotWorkingCopy(stderr.String()) {
			return nil, errNotWorkingCopy
		}
		return nil, fmt.Errorf("svn %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// errNotWorkingCopy marks "directory is not under svn control", which the
// service maps to the none sentinel rather than an error.
var errNotWorkingCopy = fmt.Errorf("not an svn working copy")

func isNotWorkingCopy(stderr string) bool {
	return strings.Contains(stderr, "E155007") ||
		strings.Contains(stderr, "is not a working copy")
}

func (s *svnInfoService) Info(ctx BuildContext, cfg Config) (SCMInfo, error) {
	out, err := s.exec(ctx, "info")
	if err == errNotWorkingCopy {
		return SCMInfoNone, nil
	}
	if err != nil {
		return SCMInfoNone, err
	}

	url, revision := parseSVNInfo(out)
	if url == "" || revision == "" {
		return SCMInfoNone, nil
	}

	return SCMInfo{
		Branch:      branchFromSVNURL(url),
		Commit:      revision,
		Abbreviated: revision,
	}, nil
}

func (s *svnInfoService) BaseTags(ctx BuildContext, cfg Config, base string) ([]string, error) {
	out, err := s.exec(ctx, "ls", "^/tags")
	if err == errNotWorkingCopy {
		return nil, nil
	}
	if err != nil {
		// A repository without a tags directory simply has no releases.
		if strings.Contains(err.Error(), "non-existent") {
			return nil, nil
		}
		return nil, err
	}

	prefix := base + "."
	var matched []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		name := strings.TrimSuffix(strings.TrimSpace(scanner.Text()), "/")
		if strings.HasPrefix(name, prefix) {
			matched = append(matched, name)
		}
	}

	sortTagsDescending(matched)
	return matched, nil
}

// parseSVNInfo extracts the URL and last-changed revision from the output
// of "svn info".
func parseSVNInfo(out []byte) (url, revision string) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "URL: "):
			url = strings.TrimSpace(strings.TrimPrefix(line, "URL: "))
		case strings.HasPrefix(line, "Last Changed Rev: "):
			revision = strings.TrimSpace(strings.TrimPrefix(line, "Last Changed Rev: "))
		case strings.HasPrefix(line, "Revision: ") && revision == "":
			revision = strings.TrimSpace(strings.TrimPrefix(line, "Revision: "))
		}
	}
	return url, revision
}

// branchFromSVNURL derives the branch name from a working copy URL
// following the standard trunk/branches/tags layout. Anything else falls
// back to the last path segment.
func branchFromSVNURL(url string) string {
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	for i, part := range parts {
		switch part {
		case "trunk":
			return "trunk"
		case "branches", "tags":
			if i+1 < len(parts) {
				return parts[i+1]
			}
		}
	}
	return parts[len(parts)-1]
}
