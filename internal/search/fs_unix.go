//go:build !windows

package search

import "strings"

func listRoots() ([]string, error) {
	return []string{"/"}, nil
}

func isHidden(_ string, name string) bool {
	return strings.HasPrefix(name, ".")
}
