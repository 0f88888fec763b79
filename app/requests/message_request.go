package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// MessageCreateRequest posts one guestbook entry.
type MessageCreateRequest struct {
	Name    string `json:"name" valid:"name"`
	Content string `json:"content" valid:"content"`
	Email   string `json:"email" valid:"email"`
}

// ValidateMessageCreate validates a guestbook post: name and content are
// required, the e-mail is optional but must be well-formed when present.
func ValidateMessageCreate(c *gin.Context) (MessageCreateRequest, error) {
	rules := govalidator.MapData{
		"name":    []string{"required", "min:1", "max:100"},
		"content": []string{"required", "min:1", "max:2000"},
		"email":   []string{"email"},
	}

	messages := govalidator.MapData{
		"name": []string{
			"required:O nome é obrigatório",
			"max:O nome deve ter no máximo 100 caracteres",
		},
		"content": []string{
			"required:A mensagem não pode ser vazia",
			"max:A mensagem deve ter no máximo 2000 caracteres",
		},
		"email": []string{
			"email:O e-mail informado é inválido",
		},
	}

	return ValidateRequest[MessageCreateRequest](c, rules, messages)
}
