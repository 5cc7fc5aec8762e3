package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "llc-replacer.png"
)

// LoadLogoResource loads the application logo from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
