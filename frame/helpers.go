package frame

import (
	"fmt"
	"strings"
)

const illegal = "!@#$%^&*()=+-;:'`/.,>< ~" + `"`

func Has[C comparable](needle C, haystack []C) bool {
	return Position(needle, haystack) >= 0
}

func Position[C comparable](needle C, haystack []C) int {
	for ind, straw := range haystack {
		if needle == straw {
			return ind
		}
	}

	return -1
}

func ValidName(name string) error {
	if name == "" {
		return fmt.Errorf("empty column name")
	}

	if strings.ContainsAny(name, illegal) {
		return fmt.Errorf("invalid column name: %s", name)
	}

	return nil
}

// SafeName strips the characters ValidName rejects, so "Salt Lake" becomes "SaltLake".
func SafeName(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(illegal, r) {
			return -1
		}

		return r
	}, strings.TrimSpace(name))
}

// Transpose swaps rows and columns of a grid. Ragged rows are padded with "".
func Transpose(grid [][]string) [][]string {
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}

	out := make([][]string, cols)
	for c := 0; c < cols; c++ {
		out[c] = make([]string, len(grid))
		for r, row := range grid {
			if c < len(row) {
				out[c][r] = row[c]
			}
		}
	}

	return out
}
