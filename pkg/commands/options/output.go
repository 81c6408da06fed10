package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/tcutils/pkg/catalog"
)

// OutputOptions selects JSON rendering of command errors.
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

// AddOutputArg registers --json.
func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Report errors as a JSON object on stdout.")
}

type errorOutput struct {
	Error string `json:"error"`
	Op    string `json:"op,omitempty"`
	Path  string `json:"path,omitempty"`
}

// HandleError prints err as JSON and swallows it when --json is set. File
// errors also carry the failed operation and path.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}

	out := errorOutput{Error: err.Error()}
	var ioErr *catalog.IOError
	if errors.As(err, &ioErr) {
		out.Op, out.Path = ioErr.Op, ioErr.Path
	}
	b, jerr := json.Marshal(out)
	if jerr != nil {
		return jerr
	}

	w := o.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}
