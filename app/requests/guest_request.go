package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// GuestSaveRequest creates or updates one party by hand.
type GuestSaveRequest struct {
	Name       string   `json:"name" valid:"name"`
	Spouse     string   `json:"spouse" valid:"spouse"`
	Children   []string `json:"children"`
	Companions []string `json:"companions"`
}

// ValidateGuestSave validates the manual create/update payload.
func ValidateGuestSave(c *gin.Context) (GuestSaveRequest, error) {
	rules := govalidator.MapData{
		"name":   []string{"required", "min:2", "max:100"},
		"spouse": []string{"max:100"},
	}

	messages := govalidator.MapData{
		"name": []string{
			"required:O nome do convidado é obrigatório",
			"min:O nome deve ter no mínimo 2 caracteres",
			"max:O nome deve ter no máximo 100 caracteres",
		},
		"spouse": []string{
			"max:O nome do cônjuge deve ter no máximo 100 caracteres",
		},
	}

	return ValidateRequest[GuestSaveRequest](c, rules, messages)
}

// BulkImportRequest carries the raw names of a bulk import.
type BulkImportRequest struct {
	Names []string `json:"names" valid:"names"`
}

// ValidateBulkImport validates the bulk-import payload. Per-name validation
// (trimming, lengths, duplicates) happens in the import itself, which
// reports problems per name instead of failing the batch.
func ValidateBulkImport(c *gin.Context) (BulkImportRequest, error) {
	rules := govalidator.MapData{
		"names": []string{"required"},
	}

	messages := govalidator.MapData{
		"names": []string{
			"required:A lista de nomes é obrigatória",
		},
	}

	return ValidateRequest[BulkImportRequest](c, rules, messages)
}

// PersonConfirmationRequest is the admin's single-person override.
type PersonConfirmationRequest struct {
	Kind      string `json:"kind" valid:"kind"`
	Name      string `json:"name"`
	Confirmed bool   `json:"confirmed"`
}

// ValidatePersonConfirmation validates the manual-override payload.
func ValidatePersonConfirmation(c *gin.Context) (PersonConfirmationRequest, error) {
	rules := govalidator.MapData{
		"kind": []string{"required", "in:main,spouse,child,companion"},
	}

	messages := govalidator.MapData{
		"kind": []string{
			"required:Informe qual pessoa da família está sendo confirmada",
			"in:O tipo de pessoa deve ser main, spouse, child ou companion",
		},
	}

	return ValidateRequest[PersonConfirmationRequest](c, rules, messages)
}
