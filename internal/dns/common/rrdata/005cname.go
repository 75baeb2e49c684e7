package rrdata

// decodeCNAMEData decodes a CNAME record rdata. Canonical names arrive as
// a single character string in this scheme, so the TXT decoding applies.
func decodeCNAMEData(data []byte) (string, error) {
	return decodeTXTData(data)
}
