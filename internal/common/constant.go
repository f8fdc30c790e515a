package common

// FormatVersion is stamped on every persisted blob and export file.
const FormatVersion = "1.0.0"

// ExportType marks JSON files produced by the export path.
const ExportType = "CREAMI_EXPORT"

// DateLayout is the display layout of article insertion dates (it-IT).
const DateLayout = "02/01/2006"
