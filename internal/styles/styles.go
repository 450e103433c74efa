package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

var (
	AdaptiveGray        = lipgloss.AdaptiveColor{Light: "#545454", Dark: "#989898"}
	AdaptiveGrayTwo     = lipgloss.AdaptiveColor{Light: "#858585", Dark: "#5f5f5f"}
	AdaptivePink        = lipgloss.AdaptiveColor{Light: "#9f008f", Dark: "#f943e3"}
	AdaptiveCyan        = lipgloss.AdaptiveColor{Light: "#006362", Dark: "#96ffec"}
	AdaptiveGreen       = lipgloss.AdaptiveColor{Light: "#41ab00", Dark: "#6cff11"}
	AdaptiveRed         = lipgloss.AdaptiveColor{Light: "#8f0000", Dark: "#be0000"}
	AdaptiveBorderColor = AdaptiveGray

	CursorStyle = lipgloss.NewStyle().Foreground(AdaptivePink)

	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(AdaptivePink).Padding(0, 1)

	ConnectSymbolStyle      = lipgloss.NewStyle().Foreground(AdaptiveGreen)
	DisconnectedSymbolStyle = lipgloss.NewStyle().Foreground(AdaptiveRed)
	FocusedPlaceholderStyle = lipgloss.NewStyle().Foreground(AdaptiveGray)
	BorderStyle             = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(AdaptiveBorderColor)
	SelectedPortStyle       = lipgloss.NewStyle().Foreground(AdaptivePink)
	PortStyle               = lipgloss.NewStyle()
	ButtonStyle             = lipgloss.NewStyle().Foreground(AdaptiveCyan)
	FocusedButtonStyle      = lipgloss.NewStyle().Foreground(AdaptivePink).Bold(true)
	SeparatorStyle          = lipgloss.NewStyle().Foreground(AdaptiveGrayTwo)
	ErrMsgStyle             = lipgloss.NewStyle().Foreground(AdaptiveRed)
	InfoMsgStyle            = lipgloss.NewStyle().Foreground(AdaptiveGray)
	FooterStyle             = lipgloss.NewStyle().Foreground(AdaptiveGray)
	FocusedPromtStyle       = lipgloss.NewStyle().Foreground(AdaptivePink)
	BlurredPromtStyle       = lipgloss.NewStyle().Foreground(AdaptiveGray)
	HelpOverlayBorderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).
				BorderForeground(AdaptiveCyan).Padding(0, 1, 1)
	ConsoleStartRenderStyle = lipgloss.NewStyle().Foreground(AdaptiveGray)
)

// Adds a border with title to viewport and returns viewport string.
func AddBorder(vp viewport.Model, title string, footer string) string {
	border := BorderStyle.GetBorderStyle()
	borderStyle := lipgloss.NewStyle().Foreground(AdaptiveBorderColor)

	var vpTitle string

	if title != "" {
		vpTitle = borderStyle.Render(border.Top + border.MiddleRight + " " + title + " " + border.MiddleLeft)
		// Remove title if width is too low
		if lipgloss.Width(vpTitle) > vp.Width {
			vpTitle = ""
		}
	}

	// Manually construct the top line of the border with the title inside.
	// We calculate the number of "─" characters needed to fill the rest of the line.
	vpTitleBar := lipgloss.JoinHorizontal(
		lipgloss.Left,
		borderStyle.Render(border.TopLeft),
		vpTitle,
		borderStyle.
			Render(strings.Repeat(border.Top, max(0, vp.Width-lipgloss.
				Width(vpTitle)+BorderStyle.GetHorizontalPadding()))),
		borderStyle.Render(border.TopRight),
	)

	var vpFooter string

	if footer != "" {
		vpFooter = borderStyle.Render(border.MiddleRight) + " " + footer + " " +
			borderStyle.Render(border.MiddleLeft+border.Bottom)
		// Remove footer if width is too low
		if lipgloss.Width(vpFooter) > vp.Width {
			vpFooter = ""
		}
	}

	vpFooterBar := lipgloss.JoinHorizontal(
		lipgloss.Left,
		borderStyle.Render(border.BottomLeft),
		borderStyle.
			Render(strings.Repeat(border.Top, max(0, vp.Width-lipgloss.
				Width(vpFooter)+BorderStyle.GetHorizontalPadding()))),
		vpFooter,
		borderStyle.Render(border.BottomRight),
	)

	// Render the viewport content inside a box that has NO top and bottom border.
	vpBody := BorderStyle.BorderTop(false).BorderBottom(false).Render(vp.View())

	return lipgloss.JoinVertical(lipgloss.Left, vpTitleBar, vpBody, vpFooterBar)
}

// Button renders a clickable label like "[Open]".
func Button(label string, focused bool) string {
	if focused {
		return FocusedButtonStyle.Render("[" + label + "]")
	}
	return ButtonStyle.Render("[" + label + "]")
}
