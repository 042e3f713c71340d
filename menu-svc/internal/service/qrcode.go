package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(table int) ([]byte, error)
}

// DefaultQRGenerator encodes the menu deep link printed on each table.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(table int) ([]byte, error) {
	return qrcode.Encode(g.TableURL(table), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) TableURL(table int) string {
	return fmt.Sprintf("%s/menu?table=%d", g.BaseURL, table)
}
