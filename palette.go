package datatable

import "github.com/charmbracelet/lipgloss"

// Palette maps style tags to terminal styles for Table output. Tags without
// an entry are left unstyled.
type Palette map[Style]lipgloss.Style

// DefaultPalette colours positive and success cells green and negative and
// error cells red.
func DefaultPalette() Palette {
	green := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1A7F37", Dark: "#3FB950"})
	red := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CF222E", Dark: "#F85149"})
	return Palette{
		StylePositive: green,
		StyleSuccess:  green.Bold(true),
		StyleNegative: red,
		StyleError:    red.Bold(true),
	}
}

// NoColor returns a palette that leaves every cell unstyled.
func NoColor() Palette { return Palette{} }

// Render applies the styles of every tag in order. Earlier tags win for
// properties set by more than one tag.
func (p Palette) Render(s string, tags []Style) string {
	var (
		combined lipgloss.Style
		found    bool
	)
	for _, t := range tags {
		st, ok := p[t]
		if !ok {
			continue
		}
		if !found {
			combined = st
			found = true
			continue
		}
		combined = combined.Inherit(st)
	}
	if !found {
		return s
	}
	return combined.Render(s)
}
