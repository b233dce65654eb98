package services

import (
	"os"

	"hms/dto"
	"hms/errors"

	"github.com/dgrijalva/jwt-go"
)

// ActorFromToken xác thực token và trích xuất actor (userID, role).
// Việc phát hành token thuộc về lớp auth bên ngoài; ở đây chỉ verify.
func ActorFromToken(tokenString string) (dto.Actor, error) {
	if tokenString == "" {
		return dto.Actor{}, errors.NewAppError(errors.ErrCodeMissingToken, "missing token", nil)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return dto.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return dto.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "token has no user info", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return dto.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "token has no user id", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return dto.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "token has no role", nil)
	}

	return dto.Actor{UserID: uint(userID), Role: int(role)}, nil
}
