// Package gui implements the interactive pronunciation form: a word
// input, per-word results with success/failure counters, a JSON
// download button and a log side panel.
package gui
