package tools

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

func RandomStr() string {
	name := make([]byte, 20)
	if _, err := rand.Read(name); err != nil {
		panic("can not generate random name")
	}

	return hex.EncodeToString(name)
}

func TimeStr() string {
	return strconv.Itoa(int(time.Now().UnixNano()))
}
