package controllers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token inválido")
var ErrTokenExpired = errors.New("token expirado")

// authClaims carrega o mínimo: id do usuário + claims padrão (iat/exp).
type authClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

func tokenValidity() time.Duration {
	return time.Duration(conf.Security.TokenValidDays) * 24 * time.Hour
}

func resetTokenValidity() time.Duration {
	return time.Duration(conf.Security.ResetTokenValidMins) * time.Minute
}

// SignToken emite um JWT HS256 com validade configurada (default 7 dias).
func SignToken(userID int64) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(tokenValidity())
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(conf.Security.JwtSecret))
	return signed, exp, err
}

// VerifyToken valida assinatura e expiração e devolve o id do usuário.
// A expiração é checada aqui, no momento da verificação.
func VerifyToken(tokenString string) (int64, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(conf.Security.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}
	if !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
