package main

import (
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/jesse-james522/The-Isle-Stat-Reader/src/gamedata"
)

// showBalanceTable opens a read-only window listing every balance attribute
// and its percentage value, in file order.
func showBalanceTable(state *uiState, path string) {
	bt, err := gamedata.LoadBalanceTable(path)
	if err != nil {
		gamedata.Warnf("balance table: %v", err)
		dialog.ShowError(err, state.window)
		return
	}

	win := state.app.NewWindow(filepath.Base(path))
	table := widget.NewTable(
		func() (int, int) { return len(bt.Keys) + 1, 2 },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			if id.Row == 0 {
				if id.Col == 0 {
					lbl.SetText("Attribute")
				} else {
					lbl.SetText("Percentage")
				}
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			key := bt.Keys[id.Row-1]
			if id.Col == 0 {
				lbl.SetText(key)
			} else {
				lbl.SetText(strconv.FormatFloat(bt.Values[key], 'g', -1, 64))
			}
		},
	)
	table.SetColumnWidth(0, 320)
	table.SetColumnWidth(1, 140)

	win.SetContent(table)
	win.Resize(fyne.NewSize(520, 600))
	win.Show()
}
