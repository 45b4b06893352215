package transcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// fingerprintBytes is how much of the file's head is hashed. Combined with
// the file size this distinguishes media files without reading gigabytes.
const fingerprintBytes = 4 << 20

// Fingerprint derives a stable cache key component from the file's leading
// bytes and its total size.
func Fingerprint(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}

	h := sha256.New()
	if _, err := io.CopyN(h, f, fingerprintBytes); err != nil && err != io.EOF {
		return "", fmt.Errorf("fingerprint %s: %w", path, err)
	}
	fmt.Fprintf(h, "size:%d", info.Size())
	return hex.EncodeToString(h.Sum(nil)), nil
}
