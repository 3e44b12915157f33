package ui

import (
	"github.com/AntonioJCosta/hiring/internal/core/domain/response"
	"github.com/fatih/color"
)

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the run id
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Pipeline Colors
var (
	StageColor = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// DisableColors turns colour output off for the whole process.
func DisableColors() {
	color.NoColor = true
}

// KindColor picks the colour for a response kind in summaries.
func KindColor(k response.Kind) func(a ...interface{}) string {
	switch {
	case k == response.Echo:
		return SuccessColor
	case k == response.Info:
		return InfoColor
	case k.IsError():
		return ErrorColor
	default:
		return DetailColor
	}
}
