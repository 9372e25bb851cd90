package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// Generator writes driver identity QR codes into a fixed directory. The
// encoded payload is license_number + nic + username, so every registered
// driver gets a scannable code unique to that triple.
type Generator struct {
	dir string
}

func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir}
}

// Write renders the identity code as a PNG named after the license number
// and returns the path that gets stored on the driver row.
func (g *Generator) Write(licenseNumber, nic, username string) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", err
	}

	payload := fmt.Sprintf("%s_%s_%s", licenseNumber, nic, username)
	path := filepath.Join(g.dir, licenseNumber+".png")
	if err := qrcode.WriteFile(payload, qrcode.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}
