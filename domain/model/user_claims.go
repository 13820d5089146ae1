package model

import "github.com/golang-jwt/jwt"

// UserClaims is the JWT payload accepted by the API auth middleware
type UserClaims struct {
	UserName string `json:"userName"`
	jwt.StandardClaims
}
