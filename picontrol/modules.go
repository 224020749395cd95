package picontrol

// ModuleName returns a friendly name for a module type code. The
// not-connected flag is masked off first, unknown codes map to
// "unknown moduletype".
func ModuleName(moduleType uint32) string {
	switch moduleType & notConnectedMask {
	case 95:
		return "RevPi Core"
	case 96:
		return "RevPi DIO"
	case 97:
		return "RevPi DI"
	case 98:
		return "RevPi DO"
	case 103:
		return "RevPi AIO"
	case moduleModbusTCPSlave:
		return "ModbusTCP Slave Adapter"
	case moduleModbusRTUSlave:
		return "ModbusRTU Slave Adapter"
	case moduleModbusTCPMaster:
		return "ModbusTCP Master Adapter"
	case moduleModbusRTUMaster:
		return "ModbusRTU Master Adapter"
	case 100:
		return "Gateway DMX"
	case 71:
		return "Gateway CANopen"
	case 73:
		return "Gateway DeviceNet"
	case 74:
		return "Gateway EtherCAT"
	case 75:
		return "Gateway EtherNet/IP"
	case 93:
		return "Gateway ModbusTCP"
	case 76:
		return "Gateway Powerlink"
	case 77:
		return "Gateway Profibus"
	case 79:
		return "Gateway Profinet IRT"
	case 81:
		return "Gateway SercosIII"
	}

	return "unknown moduletype"
}

// IsModuleConnected reports whether the not-connected flag is clear in the
// given module type code. This is independent of the per-device Active flag,
// an absent but configured module keeps its type code with the flag set.
func IsModuleConnected(moduleType uint32) bool {
	return moduleType&NotConnected == 0
}
