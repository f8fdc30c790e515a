package models

// PaperSize names a supported sheet format.
type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperLetter PaperSize = "Letter"
	PaperLegal  PaperSize = "Legal"
	PaperA3     PaperSize = "A3"
)

// Dimensions returns width and height in millimetres for portrait sheets.
// Unknown sizes fall back to A4.
func (p PaperSize) Dimensions() (width, height float64) {
	switch p {
	case PaperLetter:
		return 216, 279
	case PaperLegal:
		return 216, 356
	case PaperA3:
		return 297, 420
	default:
		return 210, 297
	}
}

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Margins are page margins in millimetres.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// PrintConfiguration holds the print-layout preferences of the installation.
// Scale is a percentage.
type PrintConfiguration struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	PaperSize          PaperSize   `json:"paperSize"`
	Orientation        Orientation `json:"orientation"`
	Margins            Margins     `json:"margins"`
	Scale              int         `json:"scale"`
	ShowHeaders        bool        `json:"showHeaders"`
	ShowFooters        bool        `json:"showFooters"`
	IncludeDate        bool        `json:"includeDate"`
	IncludePageNumbers bool        `json:"includePageNumbers"`
}

func DefaultPrintConfiguration() PrintConfiguration {
	return PrintConfiguration{
		ID:                 "default",
		Name:               "Stampante Predefinita",
		PaperSize:          PaperA4,
		Orientation:        OrientationPortrait,
		Margins:            Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Scale:              100,
		ShowHeaders:        true,
		ShowFooters:        true,
		IncludeDate:        true,
		IncludePageNumbers: true,
	}
}
