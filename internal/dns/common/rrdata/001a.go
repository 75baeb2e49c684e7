package rrdata

import "fmt"

// decodeAData decodes an A record rdata into dotted-decimal form.
func decodeAData(data []byte) (string, error) {
	// data = [192, 168, 0, 1]
	if len(data) != 4 {
		return "", fmt.Errorf("A record rdata must be 4 bytes, got %d", len(data))
	}
	return fmt.Sprintf("%d.%d.%d.%d", data[0], data[1], data[2], data[3]), nil
}
