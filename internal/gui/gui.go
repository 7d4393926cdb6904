package gui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
)

// Run launches the Gio band editor and blocks until the window closes.
func Run() error {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("OpenTraceResistor"), app.Size(unit.Dp(960), unit.Dp(600)))
		if err := newApp(w).run(); err != nil {
			log.Printf("gui: %v", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
