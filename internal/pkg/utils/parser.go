package utils

import (
	"fmt"
	"time"

	"clinicore-service/internal/pkg/constvars"
	"clinicore-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

func ParseSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionID, nil
}

// ParseAppointmentStartsAt combines the form's date and time fields into a
// single instant. time.Parse rejects calendar-invalid combinations such as
// 2024-02-30, so the check happens before any store write.
func ParseAppointmentStartsAt(date, timeOfDay string) (time.Time, error) {
	startsAt, err := time.ParseInLocation(
		constvars.AppointmentDateTimeLayout,
		fmt.Sprintf("%sT%s", date, timeOfDay),
		time.Local,
	)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidTimestamp(err)
	}
	return startsAt, nil
}

// ParseDob parses an optional YYYY-MM-DD date of birth. Empty input yields nil.
func ParseDob(dob string) (*time.Time, error) {
	if dob == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(constvars.PatientDobLayout, dob, time.Local)
	if err != nil {
		return nil, exceptions.ErrInvalidTimestamp(err)
	}
	return &parsed, nil
}
