package main

import (
	"flag"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/jesse-james522/The-Isle-Stat-Reader/src/curves"
	"github.com/jesse-james522/The-Isle-Stat-Reader/src/gamedata"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	rootDir  string
	dinosaur string
	catalog  *gamedata.Catalog

	// data behind the currently rendered plot
	plotTitle string
	series    []curves.PlotSeries
	yLabel    string

	// widgets
	dinoSelect *widget.Select
	attrSelect *widget.Select
	actionBtn  *widget.Button
	rootLabel  *widget.Label
	plotCanvas *canvas.Image
	overlay    *crosshairOverlay

	crosshairEnabled bool
	showHints        bool
}

func main() {
	var dirFlag string
	var logLevel string
	flag.StringVar(&dirFlag, "dir", "", "Path to the exported JSONs root directory")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug|info|warn|error")
	flag.Parse()
	gamedata.SetLogLevel(logLevel)

	a := app.NewWithID("com.theisle.statreader")
	w := a.NewWindow("The Isle Stat Reader")
	w.Resize(fyne.NewSize(1000, 760))

	state := &uiState{app: a, window: w}
	// Load toggles before creating the overlay so it reflects them immediately.
	state.crosshairEnabled = a.Preferences().BoolWithFallback("crosshair", true)
	state.showHints = a.Preferences().BoolWithFallback("showHints", false)

	state.rootLabel = widget.NewLabel("Locating JSONs folder...")
	rootEntry := widget.NewEntry()
	rootEntry.SetPlaceHolder("Override JSONs folder location...")

	// Selects are created without callbacks and wired after the canvas
	// exists, so the initial population cannot touch a nil image.
	state.dinoSelect = widget.NewSelect(nil, nil)
	state.dinoSelect.PlaceHolder = "No Dinosaurs found"
	state.attrSelect = widget.NewSelect(nil, nil)
	state.attrSelect.PlaceHolder = "No files found"

	state.actionBtn = widget.NewButton("Plot Data", nil)
	state.actionBtn.Disable()

	crosshairChk := widget.NewCheck("Crosshair", nil)
	crosshairChk.SetChecked(state.crosshairEnabled)
	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	state.plotCanvas = canvas.NewImageFromImage(blank(700, 420))
	state.plotCanvas.FillMode = canvas.ImageFillContain
	state.plotCanvas.SetMinSize(fyne.NewSize(700, 420))
	state.overlay = newCrosshairOverlay(state)

	top := container.NewVBox(
		container.NewHBox(
			widget.NewButton("Open Root…", func() { openRootDialog(state) }),
			widget.NewButton("Auto-Locate", func() { autoLocateRoot(state, dirFlag) }),
			widget.NewLabel("Root:"), state.rootLabel,
		),
		container.NewBorder(nil, nil, nil,
			widget.NewButton("Use Manual Path", func() { useManualRoot(state, rootEntry.Text) }),
			rootEntry,
		),
		container.NewHBox(
			widget.NewLabel("Dinosaur:"), state.dinoSelect,
			widget.NewLabel("Attribute:"), state.attrSelect,
			state.actionBtn,
			crosshairChk, hintsChk,
		),
	)
	content := container.NewBorder(top, nil, nil, nil,
		container.NewStack(state.plotCanvas, state.overlay))
	w.SetContent(content)

	rootEntry.OnSubmitted = func(v string) { useManualRoot(state, v) }
	state.dinoSelect.OnChanged = func(v string) { selectDinosaur(state, v) }
	state.attrSelect.OnChanged = func(v string) { updateActionButton(state, v) }
	state.actionBtn.OnTapped = func() { activateSelection(state) }
	crosshairChk.OnChanged = func(b bool) {
		state.crosshairEnabled = b
		savePrefs(state)
		if state.overlay != nil {
			state.overlay.enabled = b
			state.overlay.Refresh()
		}
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		refreshPlot(state)
	}

	// Redraw the chart when the window width changes so it scales with the
	// window, the way a figure canvas would.
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() { refreshPlot(state) })
					}
				}
			}
		}()
	}

	buildMenus(state)
	autoLocateRoot(state, dirFlag)

	w.ShowAndRun()
}

// autoLocateRoot resolves the JSONs root: an explicit -dir flag, then the
// environment override, then the folder next to the executable, and as a
// final fallback the last root the user opened.
func autoLocateRoot(state *uiState, flagDir string) {
	dir, err := gamedata.ResolveRoot(flagDir)
	if err != nil {
		if last := state.app.Preferences().String("lastRoot"); last != "" {
			if d, lastErr := gamedata.ResolveRoot(last); lastErr == nil {
				setRoot(state, d)
				return
			}
		}
		gamedata.Errorf("%v", err)
		state.rootLabel.SetText("JSONs folder not found")
		return
	}
	setRoot(state, dir)
}

func useManualRoot(state *uiState, path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	dir, err := gamedata.ResolveRoot(path)
	if err != nil {
		gamedata.Errorf("manual path rejected: %v", err)
		state.rootLabel.SetText("Invalid Path")
		return
	}
	setRoot(state, dir)
}

func openRootDialog(state *uiState) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		setRoot(state, uri.Path())
	}, state.window)
	d.Show()
}

func setRoot(state *uiState, dir string) {
	state.rootDir = dir
	state.rootLabel.SetText(truncatePath(dir, 48))
	addRecentRoot(state, dir)
	savePrefs(state)
	buildMenus(state)
	reloadDinosaurs(state)
}

func reloadDinosaurs(state *uiState) {
	dinos, err := gamedata.ListDinosaurs(state.rootDir)
	if err != nil {
		gamedata.Warnf("listing dinosaurs: %v", err)
		dinos = nil
	}
	state.dinoSelect.Options = dinos
	if len(dinos) == 0 {
		state.dinoSelect.Selected = ""
		state.dinoSelect.Refresh()
		clearSelection(state)
		return
	}
	pick := dinos[0]
	if last := state.app.Preferences().String("lastDinosaur"); last != "" {
		for _, d := range dinos {
			if d == last {
				pick = d
				break
			}
		}
	}
	// SetSelected triggers selectDinosaur, which rebuilds the catalog.
	state.dinoSelect.SetSelected(pick)
	state.dinoSelect.Refresh()
}

// selectDinosaur rebuilds the per-creature catalog from scratch. The old
// catalog is dropped wholesale; nothing derived survives a creature change.
func selectDinosaur(state *uiState, dino string) {
	if dino == "" {
		return
	}
	state.dinosaur = dino
	savePrefs(state)
	cat, err := gamedata.LoadCatalog(state.rootDir, dino)
	if err != nil {
		gamedata.Warnf("loading %s: %v", dino, err)
		clearSelection(state)
		return
	}
	state.catalog = cat
	names := cat.Names()
	state.attrSelect.Options = names
	if len(names) == 0 {
		state.attrSelect.Selected = ""
		state.attrSelect.Refresh()
		state.actionBtn.Disable()
		return
	}
	state.attrSelect.SetSelected(names[0])
	state.attrSelect.Refresh()
}

func clearSelection(state *uiState) {
	state.catalog = nil
	state.attrSelect.Options = nil
	state.attrSelect.Selected = ""
	state.attrSelect.Refresh()
	state.actionBtn.Disable()
}

// updateActionButton flips the action between plotting a curve and showing
// the balance table, depending on what kind of entry is selected.
func updateActionButton(state *uiState, name string) {
	if state.catalog == nil {
		state.actionBtn.Disable()
		return
	}
	e, ok := state.catalog.Lookup(name)
	if !ok {
		state.actionBtn.Disable()
		return
	}
	if e.Kind == gamedata.KindBalanceTable {
		state.actionBtn.SetText("Show Data Table")
	} else {
		state.actionBtn.SetText("Plot Data")
	}
	state.actionBtn.Enable()
}

func activateSelection(state *uiState) {
	if state.catalog == nil {
		return
	}
	name := state.attrSelect.Selected
	e, ok := state.catalog.Lookup(name)
	if !ok {
		return
	}
	switch e.Kind {
	case gamedata.KindBalanceTable:
		showBalanceTable(state, e.Path)
	case gamedata.KindStoredCurve:
		rec, err := gamedata.LoadRecord(e.Path)
		if err != nil {
			gamedata.Warnf("plotting %s: %v", name, err)
			return
		}
		set, err := curves.Normalize(rec)
		if err != nil {
			gamedata.Warnf("plotting %s: %v", name, err)
			return
		}
		state.series, state.yLabel = curves.BuildSeries(set, name)
		state.plotTitle = name
		refreshPlot(state)
	case gamedata.KindVirtualCurve:
		// Virtual curves go through the same post-processor; their axis
		// label is fixed by the derivation, not by the name.
		series, _ := curves.BuildSeries(e.Virtual.Curves, name)
		state.series = series
		state.yLabel = e.Virtual.YLabel
		state.plotTitle = e.Virtual.DisplayName
		refreshPlot(state)
	}
}

func refreshPlot(state *uiState) {
	if state.plotCanvas == nil {
		return
	}
	img := renderCurveChart(state)
	state.plotCanvas.Image = img
	cw, chh := chartSize(state)
	state.plotCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
	state.plotCanvas.Refresh()
	if state.overlay != nil {
		state.overlay.Refresh()
	}
}

// menus and shortcuts
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, r := range recentRoots(state) {
		r := r
		items = append(items, fyne.NewMenuItem(truncatePath(r, 60), func() { setRoot(state, r) }))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentRoots(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Root…", func() { openRootDialog(state) }),
		fyne.NewMenuItem("Reload", func() { reloadDinosaurs(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart PNG…", func() { exportChartPNG(state, "curve_chart.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { openRootDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { openRootDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { reloadDinosaurs(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { reloadDinosaurs(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// recent roots
func recentRoots(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentRoots", "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, "\n") {
		if p == "" {
			continue
		}
		if _, err := gamedata.ResolveRoot(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentRoot(state *uiState, dir string) {
	filtered := []string{dir}
	for _, r := range recentRoots(state) {
		if r != dir && len(filtered) < 8 {
			filtered = append(filtered, r)
		}
	}
	state.app.Preferences().SetString("recentRoots", strings.Join(filtered, "\n"))
}

func clearRecentRoots(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentRoots", "")
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("lastRoot", state.rootDir)
	prefs.SetString("lastDinosaur", state.dinosaur)
	prefs.SetBool("crosshair", state.crosshairEnabled)
	prefs.SetBool("showHints", state.showHints)
}

// truncatePath shortens a path for display, keeping the base name readable.
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	i := strings.LastIndexByte(p, '/')
	base := p
	if i >= 0 {
		base = p[i+1:]
	}
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := p
	if i >= 0 {
		dir = p[:i]
	}
	left := n - len(base) - 4
	if left <= 0 {
		return "..." + base
	}
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
