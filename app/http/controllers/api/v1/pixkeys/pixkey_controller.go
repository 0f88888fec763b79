// Package pixkeys manages the stored PIX payment keys (admin only).
package pixkeys

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"casamento/app/models/pixkey"
	"casamento/app/repositories"
	"casamento/app/requests"
	"casamento/pkg/pix"
	"casamento/pkg/response"
)

// PixKeyController serves the stored key CRUD.
type PixKeyController struct {
	pixKeys *repositories.PixKeyRepository
}

// NewPixKeyController builds the controller.
func NewPixKeyController() *PixKeyController {
	return &PixKeyController{
		pixKeys: repositories.NewPixKeyRepository(),
	}
}

// Index lists the stored keys.
func (pc *PixKeyController) Index(c *gin.Context) {
	keys, err := pc.pixKeys.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível carregar as chaves PIX")
		return
	}
	response.Data(c, keys)
}

// Store registers one key.
func (pc *PixKeyController) Store(c *gin.Context) {
	req, err := requests.ValidatePixKeySave(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	k := pixkey.PixKey{
		Name:     req.Name,
		KeyValue: req.KeyValue,
		KeyType:  pix.KeyType(req.KeyType),
	}

	if err := pc.pixKeys.Create(c.Request.Context(), &k); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Abort409(c, "Esta chave PIX já está cadastrada")
			return
		}
		response.ServerError(c, err, "Não foi possível cadastrar a chave PIX")
		return
	}

	response.Created(c, k)
}

// Update edits one key.
func (pc *PixKeyController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	k, err := pc.pixKeys.GetByID(c.Request.Context(), id)
	if err != nil {
		pc.respondLookupError(c, err)
		return
	}

	req, err := requests.ValidatePixKeySave(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	k.Name = req.Name
	k.KeyValue = req.KeyValue
	k.KeyType = pix.KeyType(req.KeyType)

	if err := pc.pixKeys.Update(c.Request.Context(), k); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Abort409(c, "Esta chave PIX já está cadastrada")
			return
		}
		response.ServerError(c, err, "Não foi possível salvar a chave PIX")
		return
	}

	response.Data(c, k)
}

// Destroy removes one key. Gifts referencing it fall back to whatever raw
// key they carry.
func (pc *PixKeyController) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := pc.pixKeys.Delete(c.Request.Context(), id); err != nil {
		pc.respondLookupError(c, err)
		return
	}
	response.Data(c, gin.H{"deleted": true})
}

func (pc *PixKeyController) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Abort404(c, "Chave PIX não encontrada")
		return
	}
	response.ServerError(c, err)
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "Identificador inválido")
		return 0, false
	}
	return id, true
}
