// inspect.go implements the "inspect" command, a low-level diagnostic that
// dumps the raw attribute and MAPI property structure of a TNEF file.

package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/newpavlov/tnef"
	"github.com/newpavlov/tnef/mapi"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump the raw attribute and MAPI property structure of a TNEF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		r, err := tnef.NewReader(data)
		if err != nil {
			return err
		}
		fmt.Printf("TNEF file: %s (%d bytes), code page %d\n\n", args[0], len(data), r.CodePage())

		attNum := 0
		for {
			attr, err := r.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}

			lvStr := "MSG"
			if attr.ID.Section() == tnef.AttachmentSection {
				lvStr = "ATT"
			}
			fmt.Printf("[%s] 0x%08X %-26s size=%d\n", lvStr, attr.ID.Code(), attr.ID, len(attr.Data))

			if id, ok := attr.ID.Attachment(); ok {
				switch id {
				case tnef.AttachRendData:
					attNum++
					fmt.Printf("       >>> Attachment #%d\n", attNum)
				case tnef.AttachTitle:
					fmt.Printf("       Title: %q\n", mapi.CleanString(attr.Data))
				case tnef.AttachData:
					fmt.Printf("       AttachData: %d bytes\n", len(attr.Data))
				case tnef.AttachProps:
					dumpProps(attr.Data, "       ")
				}
			}
			if id, ok := attr.ID.Message(); ok && id == tnef.MsgProps {
				dumpProps(attr.Data, "       ")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// dumpProps parses and prints all MAPI properties in a raw property stream.
func dumpProps(data []byte, ind string) {
	props := mapi.Decode(data)
	fmt.Printf("%sMAPI props: %d\n", ind, len(props))
	for _, p := range props {
		fmt.Printf("%s  0x%04X %-30s %-10s %d", ind, p.ID, p.Name(), mapi.TypeName(p.Type), len(p.Data))
		switch p.Type {
		case mapi.TypeString8, mapi.TypeUnicode:
			if len(p.Data) <= 200 {
				fmt.Printf("  %q", mapi.CleanString(p.Data))
			}
		case mapi.TypeLong:
			if len(p.Data) >= 4 {
				fmt.Printf("  val=%d", binary.LittleEndian.Uint32(p.Data))
			}
		case mapi.TypeBoolean:
			if len(p.Data) >= 4 {
				fmt.Printf("  val=%v", binary.LittleEndian.Uint32(p.Data) != 0)
			}
		}
		fmt.Println()
	}
}
