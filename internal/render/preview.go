package render

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

var previewConverter = newPreviewConverter()

func newPreviewConverter() *md.Converter {
	conv := md.NewConverter("", true, nil)
	conv.Use(plugin.GitHubFlavored())
	conv.Remove("head", "script", "style")
	return conv
}

// Preview renders the print page of doc as Markdown for the terminal.
func Preview(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := HTML(&buf, doc); err != nil {
		return "", err
	}

	out, err := previewConverter.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("convert preview: %w", err)
	}
	return strings.TrimSpace(out), nil
}
