package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// GiftSaveRequest creates or updates one registry item.
type GiftSaveRequest struct {
	Name        string   `json:"name" valid:"name"`
	Description string   `json:"description" valid:"description"`
	Price       *float64 `json:"price"`
	PixKeyRaw   string   `json:"pix_key_raw" valid:"pix_key_raw"`
	PixKeyID    *uint64  `json:"pix_key_id"`
	ImageURL    string   `json:"image_url" valid:"image_url"`
}

// ValidateGiftSave validates the gift payload.
func ValidateGiftSave(c *gin.Context) (GiftSaveRequest, error) {
	rules := govalidator.MapData{
		"name":        []string{"required", "min:2", "max:100"},
		"description": []string{"max:2000"},
		"pix_key_raw": []string{"max:140"},
		"image_url":   []string{"url"},
	}

	messages := govalidator.MapData{
		"name": []string{
			"required:O nome do presente é obrigatório",
			"min:O nome deve ter no mínimo 2 caracteres",
			"max:O nome deve ter no máximo 100 caracteres",
		},
		"description": []string{
			"max:A descrição deve ter no máximo 2000 caracteres",
		},
		"pix_key_raw": []string{
			"max:A chave PIX deve ter no máximo 140 caracteres",
		},
		"image_url": []string{
			"url:A URL da imagem é inválida",
		},
	}

	req, err := ValidateRequest[GiftSaveRequest](c, rules, messages)
	if err != nil {
		return req, err
	}

	if req.Price != nil && *req.Price < 0 {
		return req, ValidationError{Errors: map[string][]string{
			"price": {"O preço não pode ser negativo"},
		}}
	}

	return req, nil
}
