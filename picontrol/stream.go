package picontrol

import "io"

const (
	smallBufferSize = 256
	largeBufferSize = 64 * 1024
)

// redirectStream copies reader to writer until the end of the stream. While
// reads keep filling the buffer completely it is extended by the size of the
// last read, capped at largeBufferSize. Errors stop the copy immediately.
func redirectStream(reader io.Reader, writer io.Writer, buf []byte) error {
	for {
		n, err := reader.Read(buf)

		if n > 0 {
			if _, werr := writer.Write(buf[:n]); werr != nil {
				return werr
			}
		}

		if err == io.EOF || (err == nil && n == 0) {
			return nil
		}
		if err != nil {
			return err
		}

		if n == len(buf) && len(buf) < largeBufferSize {
			buf = append(buf, make([]byte, n)...)
		}
	}
}
