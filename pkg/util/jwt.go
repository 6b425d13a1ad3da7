package util

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what a login token carries. CompanyID is nil for
// users that do not own a registered company.
type SessionClaims struct {
	UserID    int
	Role      string
	CompanyID *int
}

// GenerateJWT creates a token for a given session.
func GenerateJWT(session SessionClaims, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": session.UserID,
		"role":    session.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	if session.CompanyID != nil {
		claims["company_id"] = *session.CompanyID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT validates a token and extracts the session claims.
func ParseJWT(tokenStr, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, jwt.ErrTokenMalformed
	}

	session := &SessionClaims{UserID: int(userIDFloat)}

	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}
	if companyIDFloat, ok := claims["company_id"].(float64); ok {
		companyID := int(companyIDFloat)
		session.CompanyID = &companyID
	}

	return session, nil
}

func ExtractToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}

	return parts[1]
}
