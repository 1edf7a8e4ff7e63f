package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/csvcheck/pkg/config"
	"github.com/dmitrymomot/csvcheck/pkg/csvvalidator"
)

type sourceReport struct {
	Source string `json:"source"`
	*csvvalidator.Report
}

func writeReports(w io.Writer, format string, reports []sourceReport) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		status := "valid"
		if !r.Valid {
			status = fmt.Sprintf("invalid (%d issues)", len(r.Issues))
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Source, status); err != nil {
			return err
		}
		for _, line := range r.Lines() {
			if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
