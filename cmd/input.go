package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/songsheet/file"
	"github.com/spf13/cobra"
)

// readSheet reads the sheet named by the first arg. No arg or "-" means
// stdin.
func readSheet(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		dat, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(dat), nil
	}
	return file.ReadSheet(appFs, args[0])
}

// writeSheet writes to out, or to stdout when out is empty.
func writeSheet(cmd *cobra.Command, out, text string) error {
	if out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	return file.WriteSheet(appFs, out, text)
}
