package exportsvc

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/isko/core"
	"github.com/trezcool/isko/core/academic"
)

const reportSheet = "Sheet1"

type excelService struct {
	dir string
}

var _ academic.Exporter = (*excelService)(nil)

func NewExcelService(conf *core.Config) academic.Exporter {
	return &excelService{dir: conf.Export.Dir}
}

func (svc excelService) Export(_ context.Context, rep academic.Report) (string, error) {
	if err := os.MkdirAll(svc.dir, 0o755); err != nil {
		return "", core.NewExportError(errors.Wrap(err, "creating export dir"))
	}

	f := excelize.NewFile()
	for i, line := range rep.Lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", core.NewExportError(errors.Wrap(err, "addressing report cell"))
		}
		if err := f.SetCellValue(reportSheet, cell, line); err != nil {
			return "", core.NewExportError(errors.Wrap(err, "writing report cell"))
		}
	}

	path := filepath.Join(svc.dir, rep.File("xlsx"))
	if err := f.SaveAs(path); err != nil {
		return "", core.NewExportError(errors.Wrap(err, "writing spreadsheet report"))
	}
	return path, nil
}
