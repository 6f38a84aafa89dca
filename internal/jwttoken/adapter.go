package jwttoken

import (
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
	authmw "tipline/pkg/platform/middleware/auth"
)

// JWTServiceAdapter bridges JWTService to the auth middleware contract.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateAccessToken(tokenString string) (*authmw.Claims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return &authmw.Claims{
		UserID: userID,
		Admin:  claims.Admin,
	}, nil
}
