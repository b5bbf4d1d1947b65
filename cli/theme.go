// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of headings and messages
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Warn     lipgloss.Style
	Error    lipgloss.Style
}

// DefaultTheme returns the default styles
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

var theme = DefaultTheme()
