package user

import (
	"bytes"

	"golang.org/x/crypto/argon2"
)

const saltLen = 8

func HashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), salt, 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}

func CheckPass(passHash []byte, plainPassword string) bool {
	if len(passHash) <= saltLen {
		return false
	}

	salt := make([]byte, saltLen)
	copy(salt, passHash[0:saltLen])
	return bytes.Equal(HashPass(salt, plainPassword), passHash)
}
