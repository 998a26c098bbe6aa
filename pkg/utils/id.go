package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSessionID gera um identificador curto para sessões simuladas do openEO
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, 10)
}
