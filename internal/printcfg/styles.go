package printcfg

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/creami/internal/models"
)

// PageStyles renders the @media print rules that apply cfg to a document:
// sheet size and orientation, margins, and the scale as a transform.
func PageStyles(cfg models.PrintConfiguration) string {
	width, height := cfg.PaperSize.Dimensions()
	if cfg.Orientation == models.OrientationLandscape {
		width = height
	}

	var b strings.Builder
	b.WriteString("@media print {\n")
	fmt.Fprintf(&b, "  @page {\n    size: %s %s;\n    margin: %smm %smm %smm %smm;\n",
		cfg.PaperSize, cfg.Orientation,
		mm(cfg.Margins.Top), mm(cfg.Margins.Right), mm(cfg.Margins.Bottom), mm(cfg.Margins.Left))
	if cfg.IncludePageNumbers {
		b.WriteString("    @bottom-center { content: \"Pagina \" counter(page) \" di \" counter(pages); font-size: 10px; }\n")
	}
	b.WriteString("  }\n")
	fmt.Fprintf(&b, "  body {\n    transform: scale(%s);\n    transform-origin: top left;\n    width: %smm;\n  }\n",
		ratio(cfg.Scale), mm(width))
	b.WriteString("  .no-print { display: none !important; }\n")
	b.WriteString("  .page-break { page-break-before: always; }\n")
	b.WriteString("}\n")
	return b.String()
}

func mm(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func ratio(scale int) string {
	return mm(float64(scale) / 100)
}
