// Package picontrol is a binding to the piControl kernel driver found on the
// Revolution Pi family of industrial controllers. It gives access to the
// process image through plain reads and writes, and to the driver's ioctl
// surface (variable lookup, bit access, device enumeration, reset).
//
// The package only returns errors, it never logs. All calls are synchronous
// and a handle must not be shared between goroutines.
package picontrol

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unsafe"
)

var (
	// ErrNotConnected is returned when an operation needs an open handle
	ErrNotConnected = errors.New("piControl device is not open")
)

// PiControl is a handle to the piControl driver. It owns at most one file
// descriptor. Create it with New or NewAt, it starts out unopened.
type PiControl struct {
	path string
	file *os.File

	// replaced by the tests to fake the driver
	ioctl func(f *os.File, cmd uintptr, data unsafe.Pointer) (int, error)
}

// New returns an unopened handle bound to the default device node.
func New() *PiControl {
	return NewAt(DefaultDevice)
}

// NewAt returns an unopened handle bound to an alternative device path.
func NewAt(path string) *PiControl {
	return &PiControl{
		path:  path,
		ioctl: ioctlPtr,
	}
}

// Open opens the device read+write. Calling Open on an already open handle
// succeeds without reopening.
func (p *PiControl) Open() error {
	if p.file != nil {
		return nil
	}

	f, err := os.OpenFile(p.path, os.O_RDWR, 0600)
	if err != nil {
		return fmt.Errorf("can not open piControl device %s: %w", p.path, err)
	}

	p.file = f
	return nil
}

// Close releases the file descriptor if one is held. It is safe to call
// multiple times, callers typically defer it right after Open.
func (p *PiControl) Close() error {
	if p.file == nil {
		return nil
	}

	err := p.file.Close()
	p.file = nil
	return err
}

// Reset restarts the piControl driver, making it reread its configuration.
func (p *PiControl) Reset() error {
	if p.file == nil {
		return ErrNotConnected
	}

	_, err := p.ioctl(p.file, kbResetIoctl, nil)
	return err
}

// Read reads exactly length bytes of process data starting at offset. A
// short read is an error, never a truncated or padded result.
func (p *PiControl) Read(offset int64, length int) ([]byte, error) {
	if p.file == nil {
		return nil, ErrNotConnected
	}

	if _, err := p.file.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to offset %d in %s: %w", offset, p.path, err)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(p.file, buf); err != nil {
		return nil, fmt.Errorf("read %d bytes at offset %d from %s: %w", length, offset, p.path, err)
	}

	return buf, nil
}

// Write writes all of data to the process image starting at offset.
func (p *PiControl) Write(offset int64, data []byte) error {
	if p.file == nil {
		return ErrNotConnected
	}

	if _, err := p.file.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to offset %d in %s: %w", offset, p.path, err)
	}

	if _, err := p.file.Write(data); err != nil {
		return fmt.Errorf("write %d bytes at offset %d to %s: %w", len(data), offset, p.path, err)
	}

	return nil
}

// GetVariableInfo looks up a variable configured in piCtory by name. The
// name must fit a 32 byte buffer including its zero terminator.
func (p *PiControl) GetVariableInfo(name string) (Variable, error) {
	var result Variable

	if p.file == nil {
		return result, ErrNotConnected
	}

	var raw spiVariable
	if len(name) >= len(raw.Name) {
		return result, fmt.Errorf("variable name %q is longer than %d bytes", name, len(raw.Name)-1)
	}
	copy(raw.Name[:], name)

	if _, err := p.ioctl(p.file, kbFindVariableIoctl, unsafe.Pointer(&raw)); err != nil {
		return result, err
	}

	result = Variable{
		Name:    bytesToString(raw.Name[:]),
		Address: raw.Address,
		Bit:     raw.Bit,
		Length:  raw.Length,
	}

	return result, nil
}

// GetDeviceInfoList enumerates all modules known to the driver. The driver
// reports how many slots of the fixed buffer are valid, only those are
// returned.
func (p *PiControl) GetDeviceInfoList() ([]DeviceInfo, error) {
	if p.file == nil {
		return nil, ErrNotConnected
	}

	var raw [devCntMax]sDeviceInfo
	cnt, err := p.ioctl(p.file, kbGetDeviceInfoListIoctl, unsafe.Pointer(&raw[0]))
	if err != nil {
		return nil, err
	}
	if cnt > devCntMax {
		cnt = devCntMax
	}

	devices := make([]DeviceInfo, cnt)
	for i := range devices {
		devices[i] = deviceInfoFromRaw(&raw[i])
	}

	return devices, nil
}

// GetDeviceInfo returns the record of the single module with the given
// address in the current configuration.
func (p *PiControl) GetDeviceInfo(address uint8) (DeviceInfo, error) {
	if p.file == nil {
		return DeviceInfo{}, ErrNotConnected
	}

	raw := sDeviceInfo{Address: address}
	if _, err := p.ioctl(p.file, kbGetDeviceInfoIoctl, unsafe.Pointer(&raw)); err != nil {
		return DeviceInfo{}, err
	}

	return deviceInfoFromRaw(&raw), nil
}

// GetBitValue reads the value of one bit in the process image into val.
func (p *PiControl) GetBitValue(val *BitValue) error {
	return p.bitValue(val, kbGetValueIoctl)
}

// SetBitValue sets the value of one bit in the process image.
func (p *PiControl) SetBitValue(val *BitValue) error {
	return p.bitValue(val, kbSetValueIoctl)
}

func (p *PiControl) bitValue(val *BitValue, cmd uintptr) error {
	if p.file == nil {
		return ErrNotConnected
	}

	normalizeBit(val)

	raw := spiValue{
		Address: val.Address,
		Bit:     val.Bit,
		Value:   val.Value,
	}

	if _, err := p.ioctl(p.file, cmd, unsafe.Pointer(&raw)); err != nil {
		return err
	}

	val.Value = raw.Value
	return nil
}

// normalizeBit folds excess bit index into the byte address. The driver only
// accepts bit indices 0-7.
func normalizeBit(val *BitValue) {
	val.Address += uint16(val.Bit) / 8
	val.Bit %= 8
}

// GetLastMessage returns the last error or status message recorded by the
// driver.
func (p *PiControl) GetLastMessage() (string, error) {
	if p.file == nil {
		return "", ErrNotConnected
	}

	var msg [lastMessageLen]byte
	if _, err := p.ioctl(p.file, kbGetLastMessageIoctl, unsafe.Pointer(&msg[0])); err != nil {
		return "", err
	}

	return bytesToString(msg[:]), nil
}

// StopIO suspends or resumes the cyclic I/O communication. While stopped the
// process image can be modified freely, which is useful for simulation.
func (p *PiControl) StopIO(stop bool) error {
	if p.file == nil {
		return ErrNotConnected
	}

	var val int32
	if stop {
		val = 1
	}

	_, err := p.ioctl(p.file, kbStopIOIoctl, unsafe.Pointer(&val))
	return err
}

// WaitForEvent blocks until the driver signals an event, typically a reset,
// and returns the event code.
func (p *PiControl) WaitForEvent() (int32, error) {
	if p.file == nil {
		return 0, ErrNotConnected
	}

	var event int32
	if _, err := p.ioctl(p.file, kbWaitForEventIoctl, unsafe.Pointer(&event)); err != nil {
		return 0, err
	}

	return event, nil
}

// ReadVariableValue looks up a variable by name and reads its current value.
func (p *PiControl) ReadVariableValue(name string) (uint32, error) {
	v, err := p.GetVariableInfo(name)
	if err != nil {
		return 0, err
	}

	return p.ReadVariable(v)
}

// ReadVariable reads the current value of a previously looked up variable.
// Boolean variables go through the bit ioctl, all other widths through the
// process image file.
func (p *PiControl) ReadVariable(v Variable) (uint32, error) {
	if v.Length == 1 {
		val := BitValue{Address: v.Address, Bit: v.Bit}
		if err := p.GetBitValue(&val); err != nil {
			return 0, err
		}
		return uint32(val.Value), nil
	}

	size, err := byteLength(v)
	if err != nil {
		return 0, err
	}

	data, err := p.Read(int64(v.Address), size)
	if err != nil {
		return 0, err
	}

	return DecodeValue(data)
}

// WriteVariableValue looks up a variable by name and writes value to it.
func (p *PiControl) WriteVariableValue(name string, value uint32) error {
	v, err := p.GetVariableInfo(name)
	if err != nil {
		return err
	}

	return p.WriteVariable(v, value)
}

// WriteVariable writes value to a previously looked up variable using the
// variable's declared width.
func (p *PiControl) WriteVariable(v Variable, value uint32) error {
	if v.Length == 1 {
		val := BitValue{Address: v.Address, Bit: v.Bit}
		if value != 0 {
			val.Value = 1
		}
		return p.SetBitValue(&val)
	}

	if _, err := byteLength(v); err != nil {
		return err
	}

	data, err := NumToBytes(uint64(value), int(v.Length))
	if err != nil {
		return err
	}

	return p.Write(int64(v.Address), data)
}

// byteLength converts a variable's bit length to bytes. Anything other than
// 8, 16 or 32 bits means the driver and this binding disagree on the ABI.
func byteLength(v Variable) (int, error) {
	switch v.Length {
	case 8, 16, 32:
		return int(v.Length) / 8, nil
	}

	return 0, fmt.Errorf("variable %s has unsupported bit length %d", v.Name, v.Length)
}

// DumpTo copies the complete process image, starting at offset 0, to w.
func (p *PiControl) DumpTo(w io.Writer) error {
	if p.file == nil {
		return ErrNotConnected
	}

	if _, err := p.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek to start of %s: %w", p.path, err)
	}

	return redirectStream(p.file, w, make([]byte, smallBufferSize))
}

// Dump writes the complete process image to the file at path, raw bytes
// without any header.
func (p *PiControl) Dump(path string) error {
	if p.file == nil {
		return ErrNotConnected
	}

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("can not create dump file %s: %w", path, err)
	}
	defer out.Close()

	return p.DumpTo(out)
}
