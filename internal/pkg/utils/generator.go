package utils

import (
	"fmt"
	"time"

	"clinicore-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateSessionJWT(sessionID, secret string, jwtExpiryTimeInHour int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(jwtExpiryTimeInHour) * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateInvoiceNumber produces the time-based human label used when the
// caller did not supply one, e.g. INV-1717171717171.
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("%s%d", constvars.InvoiceNumberPrefix, time.Now().UnixMilli())
}
