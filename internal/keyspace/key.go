// Package keyspace derives object keys for uploads.
//
// The bucket has no uniqueness enforcement, so every uploaded file name is
// prefixed with the upload time in milliseconds. Two uploads of the same
// name into the same directory within one millisecond still collide and
// the later one silently overwrites the earlier.
package keyspace

import (
	"strconv"
	"strings"
	"time"
)

// Separator delimits path segments inside object keys.
const Separator = "/"

// NormalizeDirectory trims surrounding whitespace and makes sure a non-empty
// directory ends with exactly one Separator. A directory made only of
// separators normalizes to "".
func NormalizeDirectory(directory string) string {
	dir := strings.TrimSpace(directory)
	dir = strings.TrimRight(dir, Separator)
	if dir == "" {
		return ""
	}
	return dir + Separator
}

// BuildKey returns NormalizeDirectory(directory) + now in unix milliseconds
// + "-" + fileName.
func BuildKey(directory, fileName string, now time.Time) string {
	var b strings.Builder
	b.WriteString(NormalizeDirectory(directory))
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteString("-")
	b.WriteString(fileName)
	return b.String()
}
