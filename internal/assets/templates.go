// Package assets renders exported documents from text templates.
package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

const studySheetTemplateName = "study-sheet.md.go.tmpl"

//go:embed templates/study-sheet.md.go.tmpl
var fallbackStudySheetTemplate string

// ParseStudySheetTemplate parses the template at templatePath,
// or the embedded template when the path is empty or cannot be parsed.
func ParseStudySheetTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, studySheetTemplateName, fallbackStudySheetTemplate)
}

func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":   strings.Join,
		"weight": formatWeight,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func formatWeight(weight float64) string {
	return strconv.FormatFloat(weight, 'g', -1, 64)
}
