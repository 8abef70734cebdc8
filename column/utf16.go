// utf16.go - UTF-16LE decoding for NChar/NVarChar/SysName and the boot-page database name
package column

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// DecodeUTF16LE decodes raw UTF-16LE bytes into a Go string.
func DecodeUTF16LE(b []byte) (string, error) {
	out, err := utf16le.Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
