package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/vtelikepalli/uccharana/internal/logging"
)

const logTailLines = 20

// LogPanel is a side panel showing the current log file and its most
// recent lines on demand.
type LogPanel struct {
	widget.BaseWidget

	container *fyne.Container
	infoLabel *widget.Label
	tailEntry *widget.Entry

	log *logging.Logger
}

// NewLogPanel creates the log side panel
func NewLogPanel(log *logging.Logger) *LogPanel {
	p := &LogPanel{log: log}

	p.infoLabel = widget.NewLabel("")
	p.infoLabel.Wrapping = fyne.TextWrapWord

	p.tailEntry = widget.NewMultiLineEntry()
	p.tailEntry.Disable()
	p.tailEntry.Wrapping = fyne.TextWrapWord
	p.tailEntry.TextStyle = fyne.TextStyle{Monospace: true}

	tailScroll := container.NewScroll(p.tailEntry)
	tailScroll.SetMinSize(fyne.NewSize(280, 0))

	refreshBtn := widget.NewButton("Show recent log lines", p.refreshTail)

	p.container = container.NewBorder(
		container.NewVBox(widget.NewLabel("Log:"), p.infoLabel, refreshBtn),
		nil, nil, nil,
		tailScroll,
	)

	p.ExtendBaseWidget(p)
	p.UpdateInfo()
	return p
}

// CreateRenderer implements fyne.Widget
func (p *LogPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.container)
}

// UpdateInfo refreshes the log file path and size display.
func (p *LogPanel) UpdateInfo() {
	if p.log == nil || p.log.FilePath() == "" {
		p.infoLabel.SetText("No log file configured.")
		return
	}

	size, err := p.log.Size()
	if err != nil {
		p.infoLabel.SetText(p.log.FilePath())
		return
	}
	p.infoLabel.SetText(fmt.Sprintf("%s (%d bytes)", p.log.FilePath(), size))
}

func (p *LogPanel) refreshTail() {
	if p.log == nil || p.log.FilePath() == "" {
		return
	}

	lines, err := p.log.Tail(logTailLines)
	if err != nil {
		p.tailEntry.SetText(fmt.Sprintf("failed to read log: %v", err))
		return
	}
	p.tailEntry.SetText(strings.Join(lines, "\n"))
	p.UpdateInfo()
}
