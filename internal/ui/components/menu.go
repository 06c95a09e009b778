package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a keyboard-driven list of buttons. Up/down and left/right both
// move the selection so the same menu works stacked or in a row.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	m.Selected = m.firstEnabled()
	return m
}

func (m Menu) firstEnabled() int {
	for i, item := range m.Items {
		if !item.Disabled {
			return i
		}
	}
	return 0
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k", "left", "h", "shift+tab":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j", "right", "l", "tab":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// SelectedLabel returns the label of the highlighted item.
func (m Menu) SelectedLabel() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected].Label
}

// View renders the menu as stacked arcade buttons.
func (m Menu) View(width int) string {
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		buttons = append(buttons, m.button(i, item, width))
	}
	return strings.Join(buttons, "\n")
}

// ViewRow renders the menu as a horizontal row of buttons.
func (m Menu) ViewRow(buttonWidth int) string {
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		buttons = append(buttons, m.button(i, item, buttonWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (m Menu) button(i int, item MenuItem, width int) string {
	if item.Disabled {
		return DisabledButton(item.Label, width)
	}
	return ArcadeButton(item.Label, i == m.Selected, width)
}

// DisabledButton renders a greyed-out button.
func DisabledButton(label string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}
