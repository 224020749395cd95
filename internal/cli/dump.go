package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sigurn/crc8"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the process image to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = a.cfg.DumpFile
			}

			out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("can not create dump file %s: %w", path, err)
			}
			defer out.Close()

			sum := newCRCWriter()
			if err := a.ctl.DumpTo(io.MultiWriter(out, sum)); err != nil {
				return fmt.Errorf("dump to %s: %w", path, err)
			}

			a.log.WithFields(logrus.Fields{
				"prefix": "dump",
				"file":   path,
				"bytes":  sum.count,
				"crc8":   fmt.Sprintf("0x%02x", sum.Sum()),
			}).Info("process image dumped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "the output file path")

	return cmd
}

// crcWriter checksums everything written through it, so consecutive dumps
// can be compared from the log line alone.
type crcWriter struct {
	table *crc8.Table
	crc   uint8
	count int64
}

func newCRCWriter() *crcWriter {
	table := crc8.MakeTable(crc8.CRC8)
	return &crcWriter{
		table: table,
		crc:   crc8.Init(table),
	}
}

func (w *crcWriter) Write(p []byte) (int, error) {
	w.crc = crc8.Update(w.crc, p, w.table)
	w.count += int64(len(p))
	return len(p), nil
}

func (w *crcWriter) Sum() uint8 {
	return crc8.Complete(w.crc, w.table)
}
