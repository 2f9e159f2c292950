package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"confirmpanel/shared"
	"confirmpanel/slideconfirm"
)

var (
	panelInstallDir = "confirmpanel"
	statusLabel     *widget.Label
)

type myTheme struct {
	fyne.Theme
}

func newMyTheme() *myTheme {
	return &myTheme{Theme: theme.LightTheme()}
}

func (m myTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.White
	}
	if name == theme.ColorNameForeground {
		return color.Black
	}
	if name == theme.ColorNameShadow {
		return color.NRGBA{R: 0, G: 0, B: 0, A: 40}
	}
	return m.Theme.Color(name, variant)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(shared.NewLogPathShorteningWriter(os.Stderr))

	a := app.NewWithID("app.confirmpanel")
	a.Settings().SetTheme(newMyTheme())
	w := a.NewWindow("Confirm Panel")
	w.Resize(fyne.NewSize(600, 300))

	InitEnv()

	statusLabel = widget.NewLabel("")
	statusLabel.Wrapping = fyne.TextWrapWord

	launchButton := widget.NewButton("Launch", nil)

	// The slider guards the stop action: the managed command is only
	// stopped once a drag is released past the threshold.
	cfg := SliderConfig()
	var slider *slideconfirm.SlideToConfirm
	cfg.OnCompletion = func() {
		go func() {
			if err := stopManaged(); err != nil {
				log.Printf("Stop failed: %v", err)
				dialog.ShowError(err, w)
				slider.Reset()
			}
		}()
	}
	slider = slideconfirm.New("Slide to stop", cfg)

	// Progress readout next to the slider, fed from the exposed binding.
	progressLabel := widget.NewLabelWithData(
		binding.FloatToStringWithFormat(slider.PercentageBinding(), "%.0f%%"))
	sliderBox := container.NewBorder(nil, nil, nil, progressLabel, slider)
	sliderBox.Hide()

	launchButton.OnTapped = func() {
		launchButton.Disable()
		statusLabel.SetText("Starting the managed command...")
		err := launchManaged(
			func(pid int) {
				statusLabel.SetText(fmt.Sprintf("Running (PID: %d). Slide to stop.", pid))
				sliderBox.Show()
			},
			func(err error, stoppedByUser bool) {
				// Re-arm for the next run regardless of how it ended.
				slider.Reset()
				sliderBox.Hide()
				launchButton.Enable()
				switch {
				case stoppedByUser:
					statusLabel.SetText("The managed command was stopped.")
				case err != nil:
					statusLabel.SetText(fmt.Sprintf("The managed command terminated with an error: %v", err))
				default:
					statusLabel.SetText("The managed command exited.")
				}
			})
		if err != nil {
			statusLabel.SetText("")
			launchButton.Enable()
			dialog.ShowError(err, w)
		}
	}

	updateBox := container.NewVBox()
	mainContent := container.NewVBox(
		widget.NewLabelWithStyle("Confirm Panel", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		updateBox,
		container.NewHBox(launchButton, createPanelMenuButton(w, slider)),
		statusLabel,
		sliderBox,
	)
	w.SetContent(mainContent)

	// Check for updates in the background once the window is up.
	go func() {
		url := GetReleasesURL()
		if url == "" {
			return
		}
		if !shared.CheckForInternet() {
			return
		}
		names, err := shared.FetchReleaseNames(url)
		if err != nil {
			log.Printf("Error fetching releases: %v", err)
			return
		}
		if newer := shared.NewerRelease(panelVersion, names); newer != "" {
			updateBox.Add(shared.CreateUpdateNotification(newer, nil))
			updateBox.Refresh()
		}
	}()

	w.SetCloseIntercept(func() {
		if managedPID != 0 {
			if err := stopManaged(); err != nil {
				log.Printf("Stop on close failed: %v", err)
			}
		}
		w.Close()
	})

	w.ShowAndRun()
}
