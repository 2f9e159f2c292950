package main

import (
	"log"
	"os/exec"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"confirmpanel/slideconfirm"
)

// createPanelMenuButton creates a button that shows the panel's housekeeping
// menu when clicked.
func createPanelMenuButton(w fyne.Window, slider *slideconfirm.SlideToConfirm) *widget.Button {
	menuItems := []*fyne.MenuItem{
		fyne.NewMenuItem("Open configuration folder", func() {
			if err := openFileExplorer(panelInstallDir); err != nil {
				dialog.ShowError(err, w)
			}
		}),
		fyne.NewMenuItem("Re-arm slider", func() {
			slider.Reset()
		}),
		fyne.NewMenuItem("Kill stale process", func() {
			if err := killLockingProcess(); err != nil {
				log.Printf("Kill stale process: %v", err)
				dialog.ShowError(err, w)
			}
		}),
	}

	btn := widget.NewButton("Panel ▼", nil)
	btn.OnTapped = func() {
		menu := fyne.NewMenu("", menuItems...)
		canvas := fyne.CurrentApp().Driver().CanvasForObject(btn)
		pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(btn)
		pos.Y += btn.Size().Height // Position below the button
		widget.ShowPopUpMenuAtPosition(menu, canvas, pos)
	}
	return btn
}

func openFileExplorer(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
