package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/emala/emala-backend/internal/domain/ports"
)

// DefaultTokenExpiry é a validade padrão dos tokens de acesso
const DefaultTokenExpiry = 24 * time.Hour

var (
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
	ErrInvalidToken            = errors.New("invalid token")
)

// Claims são as claims JWT emitidas no login
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService implementa ports.TokenProvider com JWT HS256 assinado e
// expirável. Substitui o token determinístico "user-token-<id>" da
// primeira versão da API.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService cria um serviço de tokens com o segredo e validade dados
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate emite um token assinado para a identidade informada
func (s *TokenService) Generate(tc ports.TokenClaims) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: tc.UserID,
		Email:  tc.Email,
		Role:   tc.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifica assinatura e expiração e devolve as claims
func (s *TokenService) Validate(tokenString string) (*ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
