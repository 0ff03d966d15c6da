package sws

import (
	"net/url"
	"strings"
)

// keyPath escapes every part of a composite key while keeping the "," and
// "/" separators SWS expects literally.
func keyPath(key string) string {
	parts := strings.Split(key, ",")
	for i, p := range parts {
		segs := strings.Split(p, "/")
		for j, s := range segs {
			segs[j] = url.PathEscape(s)
		}
		parts[i] = strings.Join(segs, "/")
	}
	return strings.Join(parts, ",")
}
