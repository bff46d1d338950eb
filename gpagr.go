//go:build gui

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/metcalfc/pagr/internal/config"
	"github.com/metcalfc/pagr/internal/display"
	"github.com/metcalfc/pagr/internal/logging"
	"github.com/metcalfc/pagr/internal/reader"
	"github.com/metcalfc/pagr/internal/session"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const windowTitle = "256x256 eInk Reader (Simulation)"

type window struct {
	*session.Session
	win    fyne.Window
	status *widget.Label
}

// show surfaces a notice as a dialog and refreshes the status line.
func (w *window) show(n session.Notice) {
	w.status.SetText(w.Status())
	w.win.SetTitle(w.WindowTitle(windowTitle))

	switch n.Level {
	case session.Info, session.Warning:
		dialog.ShowInformation(n.Title, n.Text, w.win)
	case session.Error:
		dialog.ShowError(errors.New(n.Text), w.win)
	}
}

func (w *window) openDialog() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w.win)
			return
		}
		if rc == nil {
			return // cancelled
		}
		path := rc.URI().Path()
		rc.Close()
		w.show(w.Open(path))
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter(reader.Extensions()))
	fd.Show()
}

func (w *window) pageSizeDialog() {
	if !w.Loaded() {
		w.show(w.SetPageSize(w.PageSize()))
		return
	}

	entry := widget.NewEntry()
	entry.SetText(fmt.Sprint(w.PageSize()))
	entry.Validator = func(s string) error {
		_, err := config.ParsePageSize(s)
		return err
	}

	items := []*widget.FormItem{
		widget.NewFormItem("Enter the number of words per page:", entry),
	}
	dialog.ShowForm("Words per Page", "OK", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		n, err := config.ParsePageSize(entry.Text)
		if err != nil {
			return
		}
		w.show(w.SetPageSize(n))
	}, w.win)
}

func main() {
	configPath := flag.String("config", config.Path(), "Path to the YAML config file")
	flag.Int("n", 0, "Words per page (1-9999, default from config or 20)")
	flag.String("log", "", "Write a JSON log to this file")
	flag.Bool("debug", false, "Log at debug level")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Gpagr - GUI E-Ink Reader Simulator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  gpagr [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gpagr                     Start empty, open a book from the toolbar\n")
		fmt.Fprintf(os.Stderr, "  gpagr -n 50 book.epub     Open book.epub at 50 words per page\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("gpagr %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Override(flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := app.New()
	panel := display.NewFyne(float32(cfg.Panel))

	w := &window{
		Session: session.New(panel,
			session.WithPageSize(cfg.PageSize),
			session.WithLogger(logger),
		),
		win:    a.NewWindow(windowTitle),
		status: widget.NewLabel(""),
	}
	w.status.SetText(w.Status())

	toolbar := container.NewHBox(
		widget.NewButton("Open ePub", w.openDialog),
		widget.NewButton("Previous", func() { w.show(w.Previous()) }),
		widget.NewButton("Next", func() { w.show(w.Next()) }),
		widget.NewButton("Set Words/Page", w.pageSizeDialog),
		layout.NewSpacer(),
		widget.NewButton("Exit", a.Quit),
	)

	w.win.SetContent(container.NewBorder(
		toolbar,
		w.status,
		nil, nil,
		container.NewCenter(panel.Object()),
	))

	w.win.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeyRight, fyne.KeyPageDown:
			w.show(w.Next())
		case fyne.KeyLeft, fyne.KeyPageUp:
			w.show(w.Previous())
		case fyne.KeyHome:
			w.show(w.First())
		case fyne.KeyEnd:
			w.show(w.Last())
		}
	})

	if flag.NArg() > 0 {
		w.show(w.Open(flag.Arg(0)))
	}

	w.win.Resize(fyne.NewSize(float32(cfg.Panel)+200, float32(cfg.Panel)+150))
	w.win.ShowAndRun()
}
