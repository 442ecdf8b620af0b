package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gobeaver/fileclass"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// verdict renders the one-line outcome of a report.
func verdict(r fileclass.Report) string {
	if r.Accepted {
		return "ok"
	}
	return "invalid: " + strings.Join(r.Problems, "; ")
}

func writeVerdicts(w io.Writer, reports []fileclass.Report) {
	for _, r := range reports {
		fmt.Fprintf(w, "%s: %s\n", r.Filename, verdict(r))
	}
}

func anyRejected(reports []fileclass.Report) bool {
	for _, r := range reports {
		if !r.Accepted {
			return true
		}
	}
	return false
}
