package reddit

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	commentsPathPattern = regexp.MustCompile(`/comments/([A-Za-z0-9]+)`)
	galleryPathPattern  = regexp.MustCompile(`^/gallery/([A-Za-z0-9]+)`)
	shortPathPattern    = regexp.MustCompile(`^/([A-Za-z0-9]+)/?$`)
	subredditPattern    = regexp.MustCompile(`/r/([A-Za-z0-9_]+)`)
)

// Fullname prefixes an id with its kind ("t3", "abc" -> "t3_abc"). Ids that
// already carry the prefix are returned unchanged.
func Fullname(kind, id string) string {
	prefix := kind + "_"
	if strings.HasPrefix(id, prefix) {
		return id
	}
	return prefix + id
}

// SubmissionIDFromURL extracts the post id from a reddit.com comments URL,
// a gallery URL or a redd.it short link.
func SubmissionIDFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	if match := commentsPathPattern.FindStringSubmatch(parsed.Path); match != nil {
		return match[1], nil
	}
	if match := galleryPathPattern.FindStringSubmatch(parsed.Path); match != nil {
		return match[1], nil
	}
	if strings.HasSuffix(parsed.Hostname(), "redd.it") {
		if match := shortPathPattern.FindStringSubmatch(parsed.Path); match != nil {
			return match[1], nil
		}
	}

	return "", fmt.Errorf("invalid URL: %s", rawURL)
}

// subredditFromLocation extracts the community name from a redirect target.
func subredditFromLocation(location string) string {
	if match := subredditPattern.FindStringSubmatch(location); match != nil {
		return match[1]
	}
	return ""
}

// submissionFromLocation extracts the post id from a redirect target.
func submissionFromLocation(location string) string {
	if match := commentsPathPattern.FindStringSubmatch(location); match != nil {
		return match[1]
	}
	return ""
}
