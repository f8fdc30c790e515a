// Package cli provides the interactive creami command-line tool.
//
// The App owns the session list (catalog.Session) and wires it to article
// storage, the print configuration, the renderers and the auto-save
// debouncer. App.Run blocks in a read-eval-print loop until the user exits
// or input ends, then flushes any pending auto-save.
//
// Key features:
//   - Capture articles (add) and undo the last one
//   - Search, list grouped by category, show one article, statistics
//   - Print through the system browser, Markdown preview
//   - Export to CSV, JSON, PDF and XLSX, scoped to all, a category or one article
//   - Manual save, rotating backups, file backup/restore and import
//   - Print configuration: show, set, reset
package cli
