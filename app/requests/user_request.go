package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// UserCreateRequest creates one back-office user with a credential login.
type UserCreateRequest struct {
	Name     string `json:"name" valid:"name"`
	Email    string `json:"email" valid:"email"`
	Password string `json:"password" valid:"password"`
	Role     string `json:"role" valid:"role"`
}

// ValidateUserCreate validates the admin's create-user payload.
func ValidateUserCreate(c *gin.Context) (UserCreateRequest, error) {
	rules := govalidator.MapData{
		"name":     []string{"required", "min:2", "max:100"},
		"email":    []string{"required", "email"},
		"password": []string{"required", "min:8"},
		"role":     []string{"required", "in:admin,planner,guest"},
	}

	messages := govalidator.MapData{
		"name": []string{
			"required:O nome é obrigatório",
			"min:O nome deve ter no mínimo 2 caracteres",
			"max:O nome deve ter no máximo 100 caracteres",
		},
		"email": []string{
			"required:O e-mail é obrigatório",
			"email:O e-mail informado é inválido",
		},
		"password": []string{
			"required:A senha é obrigatória",
			"min:A senha deve ter no mínimo 8 caracteres",
		},
		"role": []string{
			"required:O papel é obrigatório",
			"in:O papel deve ser admin, planner ou guest",
		},
	}

	return ValidateRequest[UserCreateRequest](c, rules, messages)
}

// UserUpdateRequest changes a user's display name and/or role.
type UserUpdateRequest struct {
	Name string `json:"name" valid:"name"`
	Role string `json:"role" valid:"role"`
}

// ValidateUserUpdate validates the admin's update-user payload.
func ValidateUserUpdate(c *gin.Context) (UserUpdateRequest, error) {
	rules := govalidator.MapData{
		"name": []string{"min:2", "max:100"},
		"role": []string{"in:admin,planner,guest"},
	}

	messages := govalidator.MapData{
		"name": []string{
			"min:O nome deve ter no mínimo 2 caracteres",
			"max:O nome deve ter no máximo 100 caracteres",
		},
		"role": []string{
			"in:O papel deve ser admin, planner ou guest",
		},
	}

	return ValidateRequest[UserUpdateRequest](c, rules, messages)
}
