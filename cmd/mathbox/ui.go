package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/mathbox/box"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleError     = lipgloss.NewStyle().Bold(true).Foreground(colorRed)

	styleChar     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleSequence = lipgloss.NewStyle().Foreground(colorBlue)
)

func kindStyle(k box.Kind) lipgloss.Style {
	switch k {
	case box.KindChar:
		return styleChar
	case box.KindHorizontal, box.KindVertical:
		return styleSequence
	default:
		return styleDim
	}
}
