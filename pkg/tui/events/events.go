// Package events defines the typed messages widgets emit across the page.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BlurMsg{Component: component}
	}
}

// BoxOpenedMsg announces that today's blind box was just revealed.
type BoxOpenedMsg struct {
	Component ComponentID
	Date      string
}

// Describe renders the reveal in a human-friendly format for logs.
func (m BoxOpenedMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, m.Date)
}

// BoxOpenedCmd wraps BoxOpenedMsg in a tea.Cmd.
func BoxOpenedCmd(component ComponentID, date string) tea.Cmd {
	return func() tea.Msg {
		return BoxOpenedMsg{Component: component, Date: date}
	}
}

// ChooserDoneMsg announces that the daily chooser finished with a reply.
type ChooserDoneMsg struct {
	Component ComponentID
	Date      string
	Reply     string
}

// Describe renders the completion for logs.
func (m ChooserDoneMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q reply:%q`, m.Component, m.Date, m.Reply)
}

// ChooserDoneCmd wraps ChooserDoneMsg in a tea.Cmd.
func ChooserDoneCmd(component ComponentID, date, reply string) tea.Cmd {
	return func() tea.Msg {
		return ChooserDoneMsg{Component: component, Date: date, Reply: reply}
	}
}

// WidgetResetMsg announces a testing-affordance reset of a widget's per-day
// state.
type WidgetResetMsg struct {
	Component ComponentID
	Date      string
}

// Describe renders the reset for logs.
func (m WidgetResetMsg) Describe() string {
	return fmt.Sprintf(`component:%q date:%q`, m.Component, m.Date)
}

// WidgetResetCmd wraps WidgetResetMsg in a tea.Cmd.
func WidgetResetCmd(component ComponentID, date string) tea.Cmd {
	return func() tea.Msg {
		return WidgetResetMsg{Component: component, Date: date}
	}
}
