// view.go implements the "view" command that prints a summary of a
// decoded TNEF file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/newpavlov/tnef"
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Show a summary of a TNEF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		r, err := tnef.NewReader(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filepath.Base(args[0]), err)
		}
		atts, err := tnef.ReadAttachments(data)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filepath.Base(args[0]), err)
		}

		fmt.Printf("File:        %s (%s)\n", filepath.Base(args[0]), humanSize(len(data)))
		fmt.Printf("Code page:   %d\n", r.CodePage())
		fmt.Println(strings.Repeat("─", 60))
		if len(atts) == 0 {
			fmt.Println("Attachments: None")
			return nil
		}
		fmt.Printf("Attachments: %d item(s)\n", len(atts))
		for i, att := range atts {
			fmt.Printf("  %d. %-36s %8s  [%s]\n", i+1, att.Filename(), humanSize(len(att.Data)), att.RendData.Type)
			fmt.Printf("     created %s, modified %s\n",
				att.CreateDate.Format("2006-01-02 15:04:05"),
				att.ModifyDate.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
