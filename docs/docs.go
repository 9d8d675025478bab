// ABOUTME: Embedded user-facing help text shared by the Discord bot and the web surface.
// ABOUTME: The source is Markdown; Discord renders it natively and the web renders it with goldmark.
package docs

import (
	_ "embed"
	"strings"
)

//go:embed help.md
var help string

// Help returns the help text as Markdown.
func Help() string {
	return strings.TrimSpace(help)
}

// DiscordHelp returns the help text without the top-level heading, which
// Discord would otherwise render as a large title.
func DiscordHelp() string {
	text := Help()
	if strings.HasPrefix(text, "# ") {
		if i := strings.Index(text, "\n"); i >= 0 {
			return strings.TrimSpace(text[i+1:])
		}
	}
	return text
}
