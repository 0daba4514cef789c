// Package viz renders arrays and timing charts for the terminal.
//
// The renderers return plain strings styled with lipgloss so that any
// Bubble Tea view (or a plain writer) can compose them:
//
//   - [FormatArray]: abbreviated array text for headers
//   - [ArrayChart]: vertical block bars, one column per value
//   - [BrailleBars]: dense bars for arrays wider than the terminal
//   - [PerfChart]: horizontal timing bars with a reveal percentage
//   - Theme selection with 5 built-in color schemes
package viz
