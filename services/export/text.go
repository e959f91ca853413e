package exportsvc

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/isko/core"
	"github.com/trezcool/isko/core/academic"
)

type textService struct {
	dir string
}

var _ academic.Exporter = (*textService)(nil)

func NewTextService(conf *core.Config) academic.Exporter {
	return &textService{dir: conf.Export.Dir}
}

func (svc textService) Export(_ context.Context, rep academic.Report) (string, error) {
	if err := os.MkdirAll(svc.dir, 0o755); err != nil {
		return "", core.NewExportError(errors.Wrap(err, "creating export dir"))
	}
	path := filepath.Join(svc.dir, rep.File("txt"))
	if err := os.WriteFile(path, []byte(strings.Join(rep.Lines, "\n")+"\n"), 0o644); err != nil {
		return "", core.NewExportError(errors.Wrap(err, "writing text report"))
	}
	return path, nil
}
