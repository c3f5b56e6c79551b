package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const confirmationCodeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateConfirmationCode returns the customer-facing receipt token:
// 8 uppercase base-36 characters. No uniqueness check happens anywhere;
// the keyspace makes collisions statistically irrelevant.
func GenerateConfirmationCode() string {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(confirmationCodeCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		code[i] = confirmationCodeCharset[n.Int64()]
	}
	return string(code)
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("£%.2f", price)
}

func FormatEventDate(t time.Time) string {
	return t.Format("Monday, 2 January 2006, 15:04")
}
