package storage

import (
	"fmt"
	"strings"
)

// KeyFromURL recovers the object key from a public URL produced by Put. The
// stored resume_url is the durable reference on a Chat, so this is how later
// generation calls find their way back to the stored resume text.
func KeyFromURL(rawURL string) (string, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(rawURL, "https://"), "http://")

	// virtual-hosted S3: {bucket}.s3.amazonaws.com/{key}
	if idx := strings.Index(s, ".s3.amazonaws.com/"); idx >= 0 {
		key := s[idx+len(".s3.amazonaws.com/"):]
		if key == "" {
			return "", fmt.Errorf("no object key in url %q", rawURL)
		}
		return key, nil
	}

	// path-style (GCS public URLs and custom S3 endpoints): host/{bucket}/{key}
	parts := strings.SplitN(s, "/", 3)
	if len(parts) < 3 || parts[2] == "" {
		return "", fmt.Errorf("unrecognized object url %q", rawURL)
	}
	return parts[2], nil
}
