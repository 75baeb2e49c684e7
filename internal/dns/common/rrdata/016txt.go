package rrdata

// decodeTXTData decodes a TXT record rdata: a single length-prefixed
// character string (see RFC 1035 section 3.3.14).
func decodeTXTData(data []byte) (string, error) {
	return decodeCharString(data)
}
