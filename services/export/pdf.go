package exportsvc

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/trezcool/isko/core"
	"github.com/trezcool/isko/core/academic"
)

const (
	pageMargin = 48.0
	lineHeight = 16.0
)

type pdfService struct {
	dir string
}

var _ academic.Exporter = (*pdfService)(nil)

func NewPDFService(conf *core.Config) academic.Exporter {
	return &pdfService{dir: conf.Export.Dir}
}

func (svc pdfService) Export(_ context.Context, rep academic.Report) (string, error) {
	if err := os.MkdirAll(svc.dir, 0o755); err != nil {
		return "", core.NewExportError(errors.Wrap(err, "creating export dir"))
	}

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	for i, line := range rep.Lines {
		if i == 0 {
			// report title
			doc.SetFont("Helvetica", "B", 18)
			doc.CellFormat(0, lineHeight+8, line, "", 1, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 11)
			continue
		}
		doc.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}

	path := filepath.Join(svc.dir, rep.File("pdf"))
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", core.NewExportError(errors.Wrap(err, "writing PDF report"))
	}
	return path, nil
}
