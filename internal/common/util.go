package common

// WipeByteArray zeroes the buffer in place. Used to scrub passwords
// read from the terminal once they have been sent.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
