package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"

	"casamento/pkg/pix"
)

// PixKeySaveRequest creates or updates one stored PIX key.
type PixKeySaveRequest struct {
	Name     string `json:"name" valid:"name"`
	KeyValue string `json:"key_value" valid:"key_value"`
	KeyType  string `json:"key_type" valid:"key_type"`
}

// ValidatePixKeySave validates the payload, including the per-type key
// check (CPF/CNPJ check digits, e-mail and phone shapes, EVP format).
func ValidatePixKeySave(c *gin.Context) (PixKeySaveRequest, error) {
	rules := govalidator.MapData{
		"name":      []string{"required", "min:2", "max:100"},
		"key_value": []string{"required", "max:140"},
		"key_type":  []string{"required", "in:CPF,CNPJ,EMAIL,TELEFONE,ALEATORIA"},
	}

	messages := govalidator.MapData{
		"name": []string{
			"required:O nome da chave é obrigatório",
			"min:O nome deve ter no mínimo 2 caracteres",
			"max:O nome deve ter no máximo 100 caracteres",
		},
		"key_value": []string{
			"required:O valor da chave é obrigatório",
			"max:A chave deve ter no máximo 140 caracteres",
		},
		"key_type": []string{
			"required:O tipo da chave é obrigatório",
			"in:O tipo deve ser CPF, CNPJ, EMAIL, TELEFONE ou ALEATORIA",
		},
	}

	req, err := ValidateRequest[PixKeySaveRequest](c, rules, messages)
	if err != nil {
		return req, err
	}

	if err := pix.ValidateKey(pix.KeyType(req.KeyType), req.KeyValue); err != nil {
		return req, ValidationError{Errors: map[string][]string{
			"key_value": {err.Error()},
		}}
	}

	return req, nil
}
