package services

import (
	"errors"
	"time"

	"evdealer/utils"
	"evdealer/validators"
)

var (
	errDBDown = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")
	ict       = time.FixedZone("ICT", 7*60*60)
	testKey   = "0123456789abcdef0123456789abcdef"
)

func fixedNow() time.Time {
	return time.Date(2026, 10, 16, 18, 30, 0, 0, ict)
}

func testValidator() *validators.Validator {
	return validators.New(fixedNow)
}

func testCipher() *utils.FieldCipher {
	c, err := utils.NewFieldCipher(testKey)
	if err != nil {
		panic(err)
	}
	return c
}
