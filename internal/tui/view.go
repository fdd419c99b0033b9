package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pkoester/boardwalk/internal/tui/component"
	"github.com/pkoester/boardwalk/internal/tui/keymap"
	"github.com/pkoester/boardwalk/internal/tui/styles"
	"github.com/pkoester/boardwalk/internal/util"
)

// View renders the full screen: header, the three panels, and the
// status and help bars.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelpPanel())
	} else {
		b.WriteString(m.renderBoard())
	}
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	if m.cfg.UI.ShowHelpBar {
		b.WriteString("\n")
		b.WriteString(m.renderHelpBar())
	}

	return b.String()
}

// renderHeader renders the title bar.
func (m Model) renderHeader() string {
	title := "Boardwalk"
	counts := fmt.Sprintf("%d active · %d finished", m.active.Len(), m.finished.Len())
	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(counts)-2, 1)
	return styles.Header.Width(m.width).Render(title + strings.Repeat(" ", gap) + styles.Subtitle.Render(counts))
}

// renderBoard renders the three panels side by side.
func (m Model) renderBoard() string {
	panelWidth := max((m.width-4)/3, 24)
	panelHeight := max(m.height-styles.HeaderFooterReserved, 8)
	contentWidth := max(panelWidth-6, 20)

	formPanel := m.renderPanel(m.form, panelWidth, panelHeight, contentWidth, m.mode == keymap.ModeForm)
	activePanel := m.renderPanel(m.active, panelWidth, panelHeight, contentWidth,
		m.mode == keymap.ModeNormal && m.focusedListPanel() == m.active)
	finishedPanel := m.renderPanel(m.finished, panelWidth, panelHeight, contentWidth,
		m.mode == keymap.ModeNormal && m.focusedListPanel() == m.finished)

	return lipgloss.JoinHorizontal(lipgloss.Top, formPanel, " ", activePanel, " ", finishedPanel)
}

// renderPanel wraps a component's content in a bordered panel. The
// focused panel gets the highlighted border.
func (m Model) renderPanel(c component.Component, width, height, contentWidth int, focused bool) string {
	style := styles.Panel
	if focused {
		style = styles.PanelFocused
	}
	return style.
		Width(width - 2).
		Height(height).
		MaxHeight(height + 2).
		Render(c.RenderContent(contentWidth))
}

// renderStatusBar renders the mode badge, counts, and the most urgent
// pending message.
func (m Model) renderStatusBar() string {
	badge := styles.ModeBadgeNormal.Render(" NORMAL ")
	switch m.mode {
	case keymap.ModeForm:
		badge = styles.ModeBadgeForm.Render(" FORM ")
	case keymap.ModeCommand:
		badge = styles.ModeBadgeCommand.Render(" COMMAND ")
	}

	var msg string
	switch {
	case m.form.Error() != "":
		msg = styles.ErrorMsg.Render(m.form.Error())
	case m.errorMessage != "":
		msg = styles.ErrorMsg.Render("Error: " + m.errorMessage)
	case m.infoMessage != "":
		msg = styles.SuccessMsg.Render(m.infoMessage)
	case m.form.Note() != "":
		msg = styles.SuccessMsg.Render(m.form.Note())
	}

	line := badge
	if msg != "" {
		// Long messages (export paths, config errors) must not wrap the
		// one-line bar.
		line += "  " + util.TruncateANSI(msg, max(m.width-lipgloss.Width(badge)-4, 10))
	}
	return styles.StatusBar.Width(m.width).Render(line)
}

// renderHelpBar renders the one-line key hints for the current mode.
// In command mode it shows the command line being typed instead.
func (m Model) renderHelpBar() string {
	if m.mode == keymap.ModeCommand {
		return styles.HelpBar.Render(
			styles.CommandPrompt.Render(":") + styles.Primary.Render(m.commandBuffer) +
				styles.Muted.Render("█") + "  " +
				styles.HelpKey.Render("[Enter]") + " run  " +
				styles.HelpKey.Render("[Esc]") + " cancel  " +
				styles.Muted.Render("Commands: q e t h"),
		)
	}

	if m.mode == keymap.ModeForm {
		keys := []string{
			styles.HelpKey.Render("[Enter]") + " next/submit",
			styles.HelpKey.Render("[Ctrl+S]") + " submit",
			styles.HelpKey.Render("[Tab]") + " field",
			styles.HelpKey.Render("[Esc]") + " back",
		}
		return styles.HelpBar.Render(strings.Join(keys, "  "))
	}

	keys := []string{
		styles.HelpKey.Render("[i]") + " new project",
		styles.HelpKey.Render("[Tab]") + " switch list",
		styles.HelpKey.Render("[j/k]") + " move",
		styles.HelpKey.Render("[:]") + " cmd",
		styles.HelpKey.Render("[Ctrl+E]") + " export",
		styles.HelpKey.Render("[?]") + " help",
		styles.HelpKey.Render("[q]") + " quit",
	}
	return styles.HelpBar.Render(strings.Join(keys, "  "))
}

// renderHelpPanel renders the full help overlay, generated from the
// keymap grouped by category.
func (m Model) renderHelpPanel() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Boardwalk Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Press ? or :h to close"))
	b.WriteString("\n\n")

	modes := []struct {
		mode  keymap.Mode
		label string
	}{
		{keymap.ModeNormal, "Normal mode"},
		{keymap.ModeForm, "Form mode"},
		{keymap.ModeCommand, "Command mode"},
	}

	for _, section := range modes {
		b.WriteString(styles.PanelTitle.Render(section.label))
		b.WriteString("\n")

		byCategory := m.km.GetBindingsByCategory(section.mode)
		for _, category := range m.km.GetCategories(section.mode) {
			b.WriteString(styles.FormLabel.Render(category))
			b.WriteString("\n")
			for _, kb := range byCategory[category] {
				key := styles.HelpKey.Render(fmt.Sprintf("  %-12s", kb.String()))
				b.WriteString(key)
				b.WriteString(" ")
				b.WriteString(kb.Description)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.PanelTitle.Render("Ex commands"))
	b.WriteString("\n")
	for _, line := range []string{
		":q :quit          Quit",
		":e :export [fmt]  Export the board (json, yaml, markdown)",
		":t :theme <name>  Switch theme",
		":h :help          Toggle this help",
	} {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	height := max(m.height-styles.HeaderFooterReserved, 8)
	return styles.Panel.
		Width(m.width - 4).
		Height(height).
		MaxHeight(height + 2).
		Render(b.String())
}
