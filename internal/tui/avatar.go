package tui

import (
	_ "embed"
	"strings"
)

//go:embed avatar.txt
var avatarArt string

func avatar() string {
	return strings.TrimRight(avatarArt, "\n")
}
