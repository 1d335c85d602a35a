package handler

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

var terrainNameRe = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ._-]{0,127}$`)

// terrainName resolves the profile name for an upload: the explicit form
// field when present, otherwise the file name without its extension.
func terrainName(explicit, fileName string) (string, error) {
	name := strings.TrimSpace(explicit)
	if name == "" {
		base := filepath.Base(fileName)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if !terrainNameRe.MatchString(name) {
		return "", errors.New("terrain name must be 1-128 letters, digits, spaces, dots, dashes or underscores")
	}

	return name, nil
}

func fileExt(fileName string) string {
	return strings.ToLower(filepath.Ext(fileName))
}
