package cli

import (
	"fmt"
	"strconv"
)

type valueFormat int

const (
	formatDecimal valueFormat = iota
	formatHex
	formatBinary
)

func parseFormat(s string) (valueFormat, error) {
	switch s {
	case "d":
		return formatDecimal, nil
	case "h":
		return formatHex, nil
	case "b":
		return formatBinary, nil
	}

	return 0, fmt.Errorf("unknown format %q, expected d, h or b", s)
}

func formatValue(value uint32, format valueFormat) string {
	switch format {
	case formatHex:
		return "0x" + strconv.FormatUint(uint64(value), 16)
	case formatBinary:
		return "0b" + strconv.FormatUint(uint64(value), 2)
	}

	return strconv.FormatUint(uint64(value), 10)
}
