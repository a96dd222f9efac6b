package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	switch m.state {
	case stateMenu:
		if m.flash != "" {
			sb.WriteString(m.styles.OK.Render(m.flash))
			sb.WriteString("\n\n")
		}
		if m.errText != "" {
			sb.WriteString(m.styles.Error.Render(m.errText))
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.menu.View())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("enter select · ctrl+c quit"))

	case stateSearch:
		prompt := "Enter the weapon name to search for:"
		if m.kind == kindModules {
			prompt = "Enter the module name to search for:"
		}
		sb.WriteString(m.styles.Header.Render(prompt))
		sb.WriteString("\n\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
		if m.errText != "" {
			sb.WriteString("\n")
			sb.WriteString(m.styles.Error.Render(m.errText))
			sb.WriteString("\n")
		}
		if len(m.suggestions) > 0 {
			sb.WriteString("\n")
			sb.WriteString(m.styles.Muted.Render("Suggestions: " + strings.Join(m.suggestions, ", ")))
			sb.WriteString("\n")
		} else if len(m.recent) > 0 {
			sb.WriteString("\n")
			sb.WriteString(m.styles.Muted.Render("Recent: " + strings.Join(m.recent, ", ")))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("enter search · tab complete · esc back"))

	case statePickResult:
		sb.WriteString(m.picker.View())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("enter select · esc back"))

	case statePickRange:
		sb.WriteString(m.rangePick.View())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("enter select · esc back"))

	case stateDetail:
		sb.WriteString(m.detail)
		sb.WriteString("\n")
		sb.WriteString(m.postPick.View())

	case stateExportDir:
		sb.WriteString(m.styles.Header.Render("Select the output directory:"))
		sb.WriteString("\n\n")
		sb.WriteString(m.fp.View())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("enter select · esc back"))

	case stateExportName:
		sb.WriteString(m.styles.Header.Render(fmt.Sprintf("Exporting to %s", m.exportDir)))
		sb.WriteString("\n\n")
		sb.WriteString("Enter the CSV file name (without extension):\n")
		sb.WriteString(m.nameInput.View())
		if m.errText != "" {
			sb.WriteString("\n\n")
			sb.WriteString(m.styles.Error.Render(m.errText))
		}

	case stateRefreshing:
		sb.WriteString(fmt.Sprintf("%s Refreshing cache...", m.spin.View()))

	case stateStatus:
		sb.WriteString(m.statusText)
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("press any key to return"))
	}

	sb.WriteString("\n")
	return sb.String()
}
