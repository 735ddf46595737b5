package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const passwordCharacters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!@#$%&*"

const MinGeneratedPasswordLength = 12

// GeneratePassword gera uma senha aleatória para novos usuários
func GeneratePassword(length int) (string, error) {
	if length < MinGeneratedPasswordLength {
		length = MinGeneratedPasswordLength
	}
	return gonanoid.Generate(passwordCharacters, length)
}
