// Package icon renders status symbols in the variant selected by icons.variant.
package icon

import (
	"github.com/eztv-cli/eztv/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Magnet
	Link
	Season
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", nerd: "\uf00c", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:     {emoji: "💀", nerd: "\uf00d", plain: "✗", kaomoji: "(×_×)", squares: "🟥"},
	Progress: {emoji: "⏳", nerd: "\uf254", plain: "…", kaomoji: "(・_・)", squares: "🟨"},
	Search:   {emoji: "🔍", nerd: "\uf002", plain: "?", kaomoji: "(・・?)", squares: "🟦"},
	Magnet:   {emoji: "🧲", nerd: "\uf076", plain: "⊙", kaomoji: "(ง'̀-'́)ง", squares: "🟪"},
	Link:     {emoji: "🔗", nerd: "\uf0c1", plain: "→", kaomoji: "(っ˘ڡ˘ς)", squares: "⬜"},
	Season:   {emoji: "📺", nerd: "\uf26c", plain: "#", kaomoji: "(⌐■_■)", squares: "🟫"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get renders the icon in the configured variant. An unknown variant renders nothing.
func Get(i Icon) string {
	return icons[i].get()
}
