package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// LoginRequest is the credential login payload.
type LoginRequest struct {
	Email    string `json:"email" valid:"email"`
	Password string `json:"password" valid:"password"`
}

// ValidateLogin validates the credential login payload.
func ValidateLogin(c *gin.Context) (LoginRequest, error) {
	rules := govalidator.MapData{
		"email":    []string{"required", "email"},
		"password": []string{"required"},
	}

	messages := govalidator.MapData{
		"email": []string{
			"required:O e-mail é obrigatório",
			"email:O e-mail informado é inválido",
		},
		"password": []string{
			"required:A senha é obrigatória",
		},
	}

	return ValidateRequest[LoginRequest](c, rules, messages)
}

// OAuthCallbackRequest carries the authorization code sent back by the SPA.
type OAuthCallbackRequest struct {
	Code string `json:"code" valid:"code"`
}

// ValidateOAuthCallback validates the social-login payload.
func ValidateOAuthCallback(c *gin.Context) (OAuthCallbackRequest, error) {
	rules := govalidator.MapData{
		"code": []string{"required"},
	}

	messages := govalidator.MapData{
		"code": []string{
			"required:O código de autorização é obrigatório",
		},
	}

	return ValidateRequest[OAuthCallbackRequest](c, rules, messages)
}
