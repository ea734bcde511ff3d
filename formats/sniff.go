package formats

// SniffTIFF reports whether the payload starts with a TIFF header in
// either byte order. The check is advisory: the vendor's metadata block is
// embedded as text, so extraction scans the decoded content regardless of
// what the container looks like.
func SniffTIFF(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	// Little-endian "II*\0" or big-endian "MM\0*"
	if data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00 {
		return true
	}
	return data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A
}
