package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration = 24 * time.Hour

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-this-secret-in-production"
	}
	JWTSecret = []byte(secret)
}
