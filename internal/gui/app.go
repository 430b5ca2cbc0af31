package gui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/vtelikepalli/uccharana/internal"
	"codeberg.org/vtelikepalli/uccharana/internal/batch"
	"codeberg.org/vtelikepalli/uccharana/internal/logging"
	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
)

const sampleWordList = "toilet, computer, water"

// Application represents the interactive form
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window

	// UI elements
	wordInput    *CustomMultiLineEntry
	convertBtn   *ttwidget.Button
	saveBtn      *ttwidget.Button
	statusLabel  *widget.Label
	totalLabel   *widget.Label
	successLabel *widget.Label
	failedLabel  *widget.Label
	resultsView  *widget.Accordion
	logPanel     *LogPanel

	// Dependencies
	fetcher *pronounce.Fetcher
	log     *logging.Logger

	// State management
	mu         sync.Mutex
	processing bool
	results    pronounce.ResultSet

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds GUI application configuration
type Config struct {
	Fetcher *pronounce.Fetcher
	Log     *logging.Logger
}

// New creates a new GUI application
func New(config *Config) *Application {
	ctx, cancel := context.WithCancel(context.Background())

	myApp := app.NewWithID("org.codeberg.vtelikepalli.uccharana")

	a := &Application{
		app:     myApp,
		fetcher: config.Fetcher,
		log:     config.Log,
		ctx:     ctx,
		cancel:  cancel,
	}

	a.setupUI()
	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("Uccharana v%s - English to Telugu Pronunciation", internal.Version))
	a.window.Resize(fyne.NewSize(900, 650))

	// Input section
	a.wordInput = NewCustomMultiLineEntry()
	a.wordInput.SetText(sampleWordList)
	a.wordInput.SetPlaceHolder("English words, comma-separated...")
	a.wordInput.SetOnEscape(func() {
		a.window.Canvas().Unfocus()
	})

	a.convertBtn = ttwidget.NewButtonWithIcon("Convert", theme.ConfirmIcon(), a.onConvert)
	a.saveBtn = ttwidget.NewButtonWithIcon("Download JSON", theme.DocumentSaveIcon(), a.onSave)
	a.saveBtn.Disable()

	inputSection := container.NewBorder(
		widget.NewLabel("Enter English words (comma-separated) to get their pronunciation in English and Telugu:"),
		container.NewHBox(a.convertBtn, a.saveBtn),
		nil, nil,
		a.wordInput,
	)

	// Results section
	a.resultsView = widget.NewAccordion()
	resultsScroll := container.NewScroll(a.resultsView)
	resultsScroll.SetMinSize(fyne.NewSize(0, 260))

	// Summary counters
	a.totalLabel = widget.NewLabel("Total: 0")
	a.successLabel = widget.NewLabel("Successful: 0")
	a.failedLabel = widget.NewLabel("Failed: 0")
	counters := container.NewHBox(
		a.totalLabel,
		widget.NewSeparator(),
		a.successLabel,
		widget.NewSeparator(),
		a.failedLabel,
	)

	resultsSection := container.NewBorder(
		container.NewVBox(widget.NewLabel("Results:"), counters),
		nil, nil, nil,
		resultsScroll,
	)

	// Status section
	a.statusLabel = widget.NewLabel("Ready")

	// Log side panel
	a.logPanel = NewLogPanel(a.log)

	content := container.NewBorder(
		inputSection,
		a.statusLabel,
		nil,
		a.logPanel,
		resultsSection,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	a.convertBtn.SetToolTip("Fetch pronunciations for all words")
	a.saveBtn.SetToolTip("Save the results as a timestamped JSON file")

	a.window.SetOnClosed(func() {
		a.cancel()
		a.wg.Wait()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.log.Info("interactive form started")
	a.window.ShowAndRun()
}

// onConvert handles the Convert button
func (a *Application) onConvert() {
	a.mu.Lock()
	if a.processing {
		a.mu.Unlock()
		return
	}

	input := a.wordInput.Text
	a.log.Info("convert triggered", "input", input)

	words := batch.SplitWords(input)
	if len(words) == 0 {
		a.mu.Unlock()
		a.log.Warn("no valid words entered")
		a.statusLabel.SetText("Please enter at least one word.")
		dialog.ShowInformation("No words", "Please enter at least one word.", a.window)
		return
	}

	a.processing = true
	a.mu.Unlock()

	a.log.Info("starting processing", "words", len(words))
	a.convertBtn.Disable()
	a.saveBtn.Disable()
	a.resultsView.Items = nil
	a.resultsView.Refresh()

	a.wg.Add(1)
	go a.processWords(words)
}

// processWords runs the sequential per-word loop in the background so
// the UI stays responsive. All widget updates go through fyne.Do.
func (a *Application) processWords(words []string) {
	defer a.wg.Done()

	start := time.Now()

	runner := batch.NewRunner(a.fetcher)
	runner.SetProgress(func(index, total int, word string) {
		fyne.Do(func() {
			a.statusLabel.SetText(fmt.Sprintf("Processing %d/%d: %s", index, total, word))
		})
	})

	results := runner.Run(a.ctx, words)

	total, succeeded, failed := results.Counts()
	a.log.Info("processing completed",
		"duration", time.Since(start).Round(time.Millisecond).String(),
		"total", total, "succeeded", succeeded, "failed", failed)

	a.mu.Lock()
	a.results = results
	a.processing = false
	a.mu.Unlock()

	fyne.Do(func() {
		a.showResults(results)
	})
}

// showResults renders the result set and updates the counters.
func (a *Application) showResults(results pronounce.ResultSet) {
	items := make([]*widget.AccordionItem, 0, len(results))
	for _, result := range results {
		label := widget.NewLabel(ResultJSON(result))
		label.TextStyle = fyne.TextStyle{Monospace: true}
		items = append(items, widget.NewAccordionItem(ResultTitle(result), label))
	}
	a.resultsView.Items = items
	a.resultsView.Refresh()

	total, succeeded, failed := results.Counts()
	a.totalLabel.SetText(fmt.Sprintf("Total: %d", total))
	a.successLabel.SetText(fmt.Sprintf("Successful: %d", succeeded))
	a.failedLabel.SetText(fmt.Sprintf("Failed: %d", failed))

	a.statusLabel.SetText(fmt.Sprintf("Done: %d word(s), %d failed", total, failed))
	a.convertBtn.Enable()
	a.saveBtn.Enable()
	a.logPanel.UpdateInfo()
}

// onSave offers the current result set as a timestamped JSON download.
func (a *Application) onSave() {
	a.mu.Lock()
	results := a.results
	a.mu.Unlock()

	if len(results) == 0 {
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		data, err := results.MarshalPretty()
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(fmt.Errorf("failed to save results: %w", err), a.window)
			return
		}

		a.log.Info("results saved", "file", writer.URI().Name(), "bytes", len(data))
		a.statusLabel.SetText(fmt.Sprintf("Saved %s", writer.URI().Name()))
	}, a.window)

	d.SetFileName(SaveFilename(time.Now()))
	d.Show()
}

// ShowFatalConfigError renders a blocking error window instead of the
// form. Used when the API credential is missing at startup.
func ShowFatalConfigError(message string) {
	myApp := app.NewWithID("org.codeberg.vtelikepalli.uccharana")
	window := myApp.NewWindow("Uccharana - Configuration Error")
	window.Resize(fyne.NewSize(480, 160))

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	quitBtn := widget.NewButton("Quit", myApp.Quit)

	window.SetContent(container.NewBorder(nil, quitBtn, nil, nil, label))
	window.ShowAndRun()
}
