package experiment

import (
	"fmt"
	"io"

	"github.com/hupe1980/bellrunner/core"
)

// WriteReports writes one display line per report, in order.
func WriteReports(w io.Writer, reports []core.Report) error {
	for _, rep := range reports {
		if _, err := fmt.Fprintln(w, rep.String()); err != nil {
			return err
		}
	}
	return nil
}
