// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/patientcare/auth-service/internal/auth/domain"
	customValidation "github.com/patientcare/auth-service/internal/validation"
)

// MinPasswordLength is the shortest password accepted by the login endpoint.
const MinPasswordLength = 8

// LoginRequest contains the credentials posted to /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.RuneLength(MinPasswordLength, 0),
		),
	)
}

// ToInput converts the request into the use case input.
func (r *LoginRequest) ToInput() *authDomain.LoginInput {
	return &authDomain.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
