package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CheckInToken is what a volunteer's QR code decodes to.
type CheckInToken struct {
	VolunteerID int64
	EventID     int64
	TokenID     string
	ExpiresAt   time.Time
}

// CheckInTokenService signs and validates the short-lived tokens embedded
// in volunteer QR codes.
type CheckInTokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewCheckInTokenService(secretKey []byte, ttl time.Duration) *CheckInTokenService {
	return &CheckInTokenService{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

// Generate mints a token naming one volunteer. The token only proves which
// volunteer the QR code belongs to; who performs the check-in comes from
// the request.
func (s *CheckInTokenService) Generate(volunteerID, eventID int64) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.ttl)

	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(volunteerID, 10),
		"event_id": strconv.FormatInt(eventID, 10),
		"jti":      uuid.New().String(),
		"exp":      expiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses a token and returns its claims. Expired or tampered
// tokens fail.
func (s *CheckInTokenService) Validate(tokenString string) (*CheckInToken, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, _ := claims["sub"].(string)
	volunteerID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.New("token missing volunteer id")
	}

	eventIDStr, _ := claims["event_id"].(string)
	eventID, err := strconv.ParseInt(eventIDStr, 10, 64)
	if err != nil {
		return nil, errors.New("token missing event id")
	}

	result := &CheckInToken{
		VolunteerID: volunteerID,
		EventID:     eventID,
	}
	if jti, ok := claims["jti"].(string); ok {
		result.TokenID = jti
	}
	if exp, ok := claims["exp"].(float64); ok {
		result.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return result, nil
}
