package service

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	bookingNumberPrefix = "BK"
	bookingNumberRandom = 6
	base36Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	otpMin = 1000
	otpMax = 9999
)

// newBookingNumber формирует номер вида BK + YYMMDD + 6 символов base36.
// Уникальность обеспечивает индекс в БД, повторная проверка не делается.
func newBookingNumber(now time.Time) string {
	var sb strings.Builder
	sb.Grow(len(bookingNumberPrefix) + 6 + bookingNumberRandom)
	sb.WriteString(bookingNumberPrefix)
	sb.WriteString(now.Format("060102"))
	for i := 0; i < bookingNumberRandom; i++ {
		sb.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}
	return sb.String()
}

func newOTP() string {
	return strconv.Itoa(otpMin + rand.IntN(otpMax-otpMin+1))
}
