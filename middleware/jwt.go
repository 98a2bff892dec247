package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/winelabelmaker/winelabel-go/config"
	"github.com/winelabelmaker/winelabel-go/models"
)

var jwtKey []byte

// TokenLifetime is the fixed expiry window set at issuance. There is no
// refresh mechanism.
const TokenLifetime = 4 * time.Hour

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

type Claims struct {
	UserID      string `json:"uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	CompanyName string `json:"company_name"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed token carrying the caller's identity and
// display fields, so downstream handlers never go back to the user table.
var GenerateToken = func(user models.User) (string, time.Time, error) {
	expiration := time.Now().Add(TokenLifetime)
	claims := &Claims{
		UserID:      user.ID,
		Username:    user.Email,
		Email:       user.Email,
		Role:        string(user.Role),
		Name:        user.Name,
		Surname:     user.Surname,
		CompanyName: user.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(jwtKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signedToken, expiration, nil
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

// JWTAuthMiddleware validates the Bearer token in the Authorization header.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// Explicitly enforce expiration to avoid lax parser behavior
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
