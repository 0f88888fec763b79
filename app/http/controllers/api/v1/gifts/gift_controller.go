// Package gifts exposes the public registry and its admin management.
package gifts

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"casamento/app/models/gift"
	"casamento/app/repositories"
	"casamento/app/requests"
	"casamento/pkg/config"
	"casamento/pkg/pix"
	"casamento/pkg/response"
)

// GiftController serves the gift registry.
type GiftController struct {
	gifts   *repositories.GiftRepository
	pixKeys *repositories.PixKeyRepository
}

// NewGiftController builds the controller.
func NewGiftController() *GiftController {
	return &GiftController{
		gifts:   repositories.NewGiftRepository(),
		pixKeys: repositories.NewPixKeyRepository(),
	}
}

// Index lists the registry. Public: this is what guests browse.
func (gc *GiftController) Index(c *gin.Context) {
	gifts, err := gc.gifts.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível carregar a lista de presentes")
		return
	}
	response.Data(c, gifts)
}

// Store creates one gift.
func (gc *GiftController) Store(c *gin.Context) {
	req, err := requests.ValidateGiftSave(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	if !gc.pixKeyExists(c, req.PixKeyID) {
		return
	}

	g := gift.Gift{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		PixKeyRaw:   req.PixKeyRaw,
		PixKeyID:    req.PixKeyID,
		ImageURL:    req.ImageURL,
	}

	if err := gc.gifts.Create(c.Request.Context(), &g); err != nil {
		response.ServerError(c, err, "Não foi possível criar o presente")
		return
	}

	response.Created(c, g)
}

// Update edits one gift.
func (gc *GiftController) Update(c *gin.Context) {
	g, err := gc.loadGift(c)
	if err != nil {
		return
	}

	req, err := requests.ValidateGiftSave(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	if !gc.pixKeyExists(c, req.PixKeyID) {
		return
	}

	g.Name = req.Name
	g.Description = req.Description
	g.Price = req.Price
	g.PixKeyRaw = req.PixKeyRaw
	g.PixKeyID = req.PixKeyID
	g.PixKey = nil
	g.ImageURL = req.ImageURL

	if err := gc.gifts.Update(c.Request.Context(), g); err != nil {
		response.ServerError(c, err, "Não foi possível salvar o presente")
		return
	}

	response.Data(c, g)
}

// Destroy removes one gift.
func (gc *GiftController) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := gc.gifts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Abort404(c, "Presente não encontrado")
			return
		}
		response.ServerError(c, err)
		return
	}
	response.Data(c, gin.H{"deleted": true})
}

// Pix returns the copia-e-cola payload for a gift's payment key.
func (gc *GiftController) Pix(c *gin.Context) {
	payload, ok := gc.buildPayload(c)
	if !ok {
		return
	}
	response.Data(c, gin.H{"copia_e_cola": payload})
}

// QRCode renders the same payload as a PNG QR code.
func (gc *GiftController) QRCode(c *gin.Context) {
	payload, ok := gc.buildPayload(c)
	if !ok {
		return
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 320)
	if err != nil {
		response.ServerError(c, err, "Não foi possível gerar o QR code")
		return
	}

	c.Data(200, "image/png", png)
}

func (gc *GiftController) buildPayload(c *gin.Context) (string, bool) {
	g, err := gc.loadGift(c)
	if err != nil {
		return "", false
	}

	key := g.KeyValue()
	if key == "" {
		response.Abort404(c, "Este presente não possui chave PIX cadastrada")
		return "", false
	}

	var amount float64
	if g.Price != nil {
		amount = *g.Price
	}

	payload, err := pix.BRCode(pix.Payload{
		Key:          key,
		MerchantName: config.GetString("pix.merchant_name"),
		MerchantCity: config.GetString("pix.merchant_city"),
		Amount:       amount,
		TxID:         fmt.Sprintf("PRESENTE%d", g.ID),
	})
	if err != nil {
		response.ServerError(c, err, "Não foi possível montar o pagamento PIX")
		return "", false
	}
	return payload, true
}

func (gc *GiftController) loadGift(c *gin.Context) (*gift.Gift, error) {
	id, ok := parseID(c)
	if !ok {
		return nil, errors.New("invalid id")
	}

	g, err := gc.gifts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Abort404(c, "Presente não encontrado")
			return nil, err
		}
		response.ServerError(c, err)
		return nil, err
	}
	return g, nil
}

// pixKeyExists rejects references to stored keys that do not exist. Returns
// false after responding.
func (gc *GiftController) pixKeyExists(c *gin.Context, id *uint64) bool {
	if id == nil {
		return true
	}
	if _, err := gc.pixKeys.GetByID(c.Request.Context(), *id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Abort400(c, "A chave PIX referenciada não existe")
			return false
		}
		response.ServerError(c, err)
		return false
	}
	return true
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Abort400(c, "Identificador inválido")
		return 0, false
	}
	return id, true
}
