package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"gatepass/internal/clock"
	"gatepass/internal/model"
)

const (
	// AccessTokenExpiry is the duration for which access tokens are valid.
	AccessTokenExpiry = 15 * time.Minute
	// RefreshTokenExpiry is the duration for which refresh tokens are valid.
	RefreshTokenExpiry = 7 * 24 * time.Hour
)

// Token kinds, carried in the "kind" claim.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims represents JWT claims.
type Claims struct {
	UserID uint       `json:"user_id"`
	Phone  string     `json:"phone"`
	Role   model.Role `json:"role"`
	Kind   string     `json:"kind"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	clock  clock.Clock
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return NewJWTServiceWithClock(secret, clock.Real())
}

// NewJWTServiceWithClock is NewJWTService with an injected time source.
func NewJWTServiceWithClock(secret string, c clock.Clock) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		clock:  c,
	}
}

// Secret returns the signing key, for wiring the echo-jwt middleware.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// GenerateAccessToken generates a new access token for the user. Access
// tokens carry a jti so that logout can blacklist them.
func (s *JWTService) GenerateAccessToken(user *model.User) (tokenID string, token string, err error) {
	return s.sign(user, KindAccess, AccessTokenExpiry)
}

// GenerateRefreshToken generates a new refresh token for the user.
// The refresh token ID is returned separately for storage in Redis.
func (s *JWTService) GenerateRefreshToken(user *model.User) (tokenID string, token string, err error) {
	return s.sign(user, KindRefresh, RefreshTokenExpiry)
}

func (s *JWTService) sign(user *model.User, kind string, ttl time.Duration) (string, string, error) {
	now := s.clock.Now()
	tokenID := generateTokenID()
	claims := &Claims{
		UserID: user.ID,
		Phone:  user.Phone,
		Role:   user.Role,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	return tokenID, token, err
}

// ValidateToken validates a JWT token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateAccessToken is ValidateToken restricted to access tokens.
func (s *JWTService) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Kind != KindAccess {
		return nil, errors.New("not an access token")
	}
	return claims, nil
}

// ExtractTokenID extracts the token ID (JTI) from a token.
func (s *JWTService) ExtractTokenID(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("token ID not found")
	}
	return claims.ID, nil
}

// generateTokenID generates a unique token ID.
func generateTokenID() string {
	return uuid.New().String()
}
