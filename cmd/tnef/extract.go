// extract.go implements the "extract" command that writes the attachments
// of a TNEF file to an output directory.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/newpavlov/tnef"
	"github.com/newpavlov/tnef/extract"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract attachments from a TNEF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		atts, err := tnef.ReadAttachments(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		files := extract.FromAttachments(atts)
		if len(files) == 0 {
			fmt.Println("No attachments to extract.")
			return nil
		}
		for _, f := range files {
			if err := writeFile(extractOut, f.Name, f.Data); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "output", "o", ".", "output directory")
	rootCmd.AddCommand(extractCmd)
}
