package scanner

import "strings"

// DefaultContentType is used for every extension missing from contentTypes.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	"html": "text/html",
	"htm":  "text/html",
	"css":  "text/css",
	"js":   "application/javascript",
	"ico":  "image/x-icon",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"txt":  "text/plain",
}

// ContentType classifies a file name by the text after its last dot,
// case-insensitively. A name without a dot is looked up as a whole.
func ContentType(filename string) string {
	ext := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return DefaultContentType
}
