// scan.go implements the "scan" command that finds TNEF parts embedded in
// mail messages and mbox archives, listing or unpacking them.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/newpavlov/tnef"
	"github.com/newpavlov/tnef/extract"
	"github.com/newpavlov/tnef/winmail"
)

var (
	scanOut    string
	scanUnpack bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Find TNEF parts in a mail message or mbox archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		// An mbox archive starts every message with a "From " line;
		// anything else is treated as a single RFC 5322 message.
		br := bufio.NewReader(f)
		head, _ := br.Peek(5)

		var parts []winmail.Part
		if bytes.Equal(head, []byte("From ")) {
			parts, err = winmail.FromMbox(br, slog.Default())
		} else {
			parts, err = winmail.FromMessage(br)
		}
		if err != nil {
			return fmt.Errorf("scanning %s: %w", args[0], err)
		}
		if len(parts) == 0 {
			fmt.Println("No TNEF parts found.")
			return nil
		}

		for _, p := range parts {
			name := p.Filename
			if name == "" {
				name = "winmail.dat"
			}
			fmt.Printf("message %d: %s (%s)\n", p.Message, name, humanSize(len(p.Data)))
			if scanUnpack {
				if err := unpackPart(p); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanOut, "output", "o", ".", "output directory for --unpack")
	scanCmd.Flags().BoolVar(&scanUnpack, "unpack", false, "extract the attachments of every TNEF part found")
	rootCmd.AddCommand(scanCmd)
}

// unpackPart decodes one found TNEF part and writes its attachments,
// prefixed with the mbox message index to keep sources apart. Parts that
// fail to decode are reported and skipped so a single broken payload does
// not stop the scan.
func unpackPart(p winmail.Part) error {
	atts, err := tnef.ReadAttachments(p.Data)
	if err != nil {
		slog.Warn("skipping undecodable TNEF part", "message", p.Message, "err", err)
		return nil
	}
	for _, f := range extract.FromAttachments(atts) {
		name := f.Name
		if p.Message > 0 {
			name = fmt.Sprintf("msg%03d_%s", p.Message, f.Name)
		}
		if err := writeFile(scanOut, name, f.Data); err != nil {
			return err
		}
	}
	return nil
}
