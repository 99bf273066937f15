package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// readParams joins the arguments, falling back to everything on stdin when
// no argument is given.
func readParams(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("couldn't read stdin: %w", err)
	}
	return string(content), nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(appUI.Writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// reportedError carries failures that were already shown to the user, per
// input, so Execute only turns it into a non-zero exit code.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

func reported(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return reportedError{errors.Join(errs...)}
}
