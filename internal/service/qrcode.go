package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const qrSize = 256

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(foodID primitive.ObjectID) ([]byte, error) {
	return qrcode.Encode(g.Link(foodID), qrcode.Medium, qrSize)
}

// Link is the URL encoded into a food's QR code.
func (g DefaultQRGenerator) Link(foodID primitive.ObjectID) string {
	return fmt.Sprintf("%s/food/%s", g.BaseURL, foodID.Hex())
}
