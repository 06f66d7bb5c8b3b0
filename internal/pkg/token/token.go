package token

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service is the identity collaborator: it verifies bearer credentials and,
// for development setups, mints access tokens carrying an opaque user id.
// The attendance core never touches tokens; it only receives the user id.
type Service interface {
	GenerateAccessToken(userID string) (token string, expiresAt int64, err error)
	UserIDFromToken(t jwt.Token) (string, bool)
	JWTAuth() *jwtauth.JWTAuth
}

type tokenService struct {
	secretKey        string
	accessExpiration string
	tokenAuth        *jwtauth.JWTAuth
}

func NewService(secretKey string, accessExpiration string) Service {
	return &tokenService{
		secretKey:        secretKey,
		accessExpiration: accessExpiration,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *tokenService) GenerateAccessToken(userID string) (string, int64, error) {
	expDuration, err := time.ParseDuration(s.accessExpiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
		"exp":     expiresAt,
	})
	return tokenString, expiresAt, err
}

// UserIDFromToken extracts the opaque user id claim from a verified token.
func (s *tokenService) UserIDFromToken(t jwt.Token) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.Get("user_id")
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}
