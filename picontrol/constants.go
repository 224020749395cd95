package picontrol

// DefaultDevice is the device node created by the piControl kernel driver.
const DefaultDevice = "/dev/piControl0"

const (
	// devCntMax is the maximum number of modules the driver reports.
	devCntMax = 64

	// lastMessageLen is the size of the driver's message buffer.
	lastMessageLen = 256
)

// All piControl requests are plain _IO codes with the 'K' magic, no size or
// direction bits are encoded.
const kbIocMagic uintptr = 'K'

const (
	kbResetIoctl                uintptr = kbIocMagic<<8 | 12
	kbGetDeviceInfoListIoctl    uintptr = kbIocMagic<<8 | 13
	kbGetDeviceInfoIoctl        uintptr = kbIocMagic<<8 | 14
	kbGetValueIoctl             uintptr = kbIocMagic<<8 | 15
	kbSetValueIoctl             uintptr = kbIocMagic<<8 | 16
	kbFindVariableIoctl         uintptr = kbIocMagic<<8 | 17
	kbSetExportedOutputsIoctl   uintptr = kbIocMagic<<8 | 18
	kbUpdateDeviceFirmwareIoctl uintptr = kbIocMagic<<8 | 19
	kbDIOResetCounterIoctl      uintptr = kbIocMagic<<8 | 20
	kbGetLastMessageIoctl       uintptr = kbIocMagic<<8 | 21
	kbStopIOIoctl               uintptr = kbIocMagic<<8 | 22
	kbWaitForEventIoctl         uintptr = kbIocMagic<<8 | 50
)

// NotConnected is set in a module type code when the module is configured
// but was not found on the bus. The lower bits hold the actual type.
const (
	NotConnected     uint32 = 0x8000
	notConnectedMask uint32 = 0x7fff
)

// Software module type codes.
const (
	moduleModbusTCPSlave  uint32 = 0x6001
	moduleModbusRTUSlave  uint32 = 0x6002
	moduleModbusTCPMaster uint32 = 0x6003
	moduleModbusRTUMaster uint32 = 0x6004
)
