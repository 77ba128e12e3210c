package util

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"
)

var unsafePart = regexp.MustCompile(`[^a-z0-9_\-]`)

// SanitizePart lowercases s and keeps only characters safe inside an object key.
func SanitizePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafePart.ReplaceAllString(s, "")
	if s == "" {
		return "unknown"
	}
	return s
}

// ObjectName builds "<folder>/<yyyymmddhhmmss>_<suffix>_<name><ext>".
func ObjectName(folder, filename, contentType, suffix string, now time.Time) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	return fmt.Sprintf(
		"%s/%s_%s_%s%s",
		SanitizePart(folder),
		now.UTC().Format("20060102150405"),
		SanitizePart(suffix),
		SanitizePart(base),
		ExtFromFilenameOrMime(filename, contentType),
	)
}

func PublicGCSURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

// JoinURL appends an object key to a public base URL.
func JoinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
