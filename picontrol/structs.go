package picontrol

// The raw structs below are passed to the driver by pointer. Field order and
// types mirror the kernel ABI exactly, natural Go alignment reproduces the C
// layout (asserted by the tests in structs_test.go).

type spiVariable struct {
	Name    [32]byte
	Address uint16
	Bit     uint8
	Length  uint16
}

type spiValue struct {
	Address uint16
	Bit     uint8
	Value   uint8
}

type sDeviceInfo struct {
	Address      uint8
	SerialNumber uint32
	ModuleType   uint16
	HWRevision   uint16
	SWMajor      uint16
	SWMinor      uint16
	SVNRevision  uint32
	InputLength  uint16
	OutputLength uint16
	ConfigLength uint16
	BaseOffset   uint16
	InputOffset  uint16
	OutputOffset uint16
	ConfigOffset uint16
	FirstEntry   uint16
	Entries      uint16
	ModuleState  uint8
	Active       uint8
	Reserved     [30]uint8
}

// Variable describes a named value in the process image. Length is the
// declared size in bits, 1 for boolean variables and otherwise 8, 16 or 32.
// Bit is only meaningful for boolean variables.
type Variable struct {
	Name    string
	Address uint16
	Bit     uint8
	Length  uint16
}

// BitValue addresses a single bit in the process image. Bit indices of 8 or
// more are folded into the byte address before the driver is called.
type BitValue struct {
	Address uint16
	Bit     uint8
	Value   uint8
}

// DeviceInfo describes one module attached to the controller.
type DeviceInfo struct {
	Address      uint8
	SerialNumber uint32
	ModuleType   uint16
	HWRevision   uint16
	SWMajor      uint16
	SWMinor      uint16
	SVNRevision  uint32
	InputLength  uint16
	OutputLength uint16
	ConfigLength uint16
	BaseOffset   uint16
	InputOffset  uint16
	OutputOffset uint16
	ConfigOffset uint16
	FirstEntry   uint16
	Entries      uint16
	ModuleState  uint8
	Active       bool
}

func deviceInfoFromRaw(raw *sDeviceInfo) DeviceInfo {
	return DeviceInfo{
		Address:      raw.Address,
		SerialNumber: raw.SerialNumber,
		ModuleType:   raw.ModuleType,
		HWRevision:   raw.HWRevision,
		SWMajor:      raw.SWMajor,
		SWMinor:      raw.SWMinor,
		SVNRevision:  raw.SVNRevision,
		InputLength:  raw.InputLength,
		OutputLength: raw.OutputLength,
		ConfigLength: raw.ConfigLength,
		BaseOffset:   raw.BaseOffset,
		InputOffset:  raw.InputOffset,
		OutputOffset: raw.OutputOffset,
		ConfigOffset: raw.ConfigOffset,
		FirstEntry:   raw.FirstEntry,
		Entries:      raw.Entries,
		ModuleState:  raw.ModuleState,
		Active:       raw.Active > 0,
	}
}
