// Package confirmation exposes the self-service RSVP endpoints keyed by
// token or 6-digit code.
package confirmation

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"casamento/app/models/guest"
	"casamento/app/repositories"
	"casamento/pkg/response"
)

// ConfirmationController serves the invitee-facing confirmation flow.
type ConfirmationController struct {
	guests *repositories.GuestRepository
}

// NewConfirmationController builds the controller.
func NewConfirmationController() *ConfirmationController {
	return &ConfirmationController{
		guests: repositories.NewGuestRepository(),
	}
}

// guestView is what the invitee sees: the party plus its aggregate state.
func guestView(g guest.Guest) gin.H {
	return gin.H{
		"guest": g,
		"party": g.Party(),
	}
}

// GetByToken fetches a party by its opaque link token.
func (cc *ConfirmationController) GetByToken(c *gin.Context) {
	g, err := cc.guests.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		cc.respondLookupError(c, err)
		return
	}
	response.Data(c, guestView(*g))
}

// UpdateByToken applies a confirmation submission to a party found by token.
func (cc *ConfirmationController) UpdateByToken(c *gin.Context) {
	g, err := cc.guests.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		cc.respondLookupError(c, err)
		return
	}
	cc.applyUpdate(c, *g)
}

// GetByCode fetches a party by its 6-digit code. The format check runs
// before any query: a malformed code is a client error, not a miss.
func (cc *ConfirmationController) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if !guest.CodePattern.MatchString(code) {
		response.Abort400(c, "O código de confirmação deve ter exatamente 6 dígitos")
		return
	}

	g, err := cc.guests.GetByCode(c.Request.Context(), code)
	if err != nil {
		cc.respondLookupError(c, err)
		return
	}
	response.Data(c, guestView(*g))
}

// UpdateByCode applies a confirmation submission to a party found by code.
func (cc *ConfirmationController) UpdateByCode(c *gin.Context) {
	code := c.Param("code")
	if !guest.CodePattern.MatchString(code) {
		response.Abort400(c, "O código de confirmação deve ter exatamente 6 dígitos")
		return
	}

	g, err := cc.guests.GetByCode(c.Request.Context(), code)
	if err != nil {
		cc.respondLookupError(c, err)
		return
	}
	cc.applyUpdate(c, *g)
}

// Resolve turns whatever was pasted into the lookup box (code, token or a
// full confirmation link) into the lookup kind and value the client should
// use.
func (cc *ConfirmationController) Resolve(c *gin.Context) {
	kind, value, err := guest.ParseConfirmationInput(c.Query("input"))
	if err != nil {
		response.Abort400(c, err.Error())
		return
	}

	response.Data(c, gin.H{
		"kind":  kind,
		"value": value,
	})
}

// applyUpdate merges the submission into the guest and persists it. The
// merge silently filters structurally invalid bits (spouse flag without a
// spouse, map keys outside the party); omitted fields keep their prior
// values. Re-submitting is idempotent and last write wins.
func (cc *ConfirmationController) applyUpdate(c *gin.Context, g guest.Guest) {
	var upd guest.ConfirmationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BadRequest(c, err, "Não foi possível interpretar a confirmação enviada")
		return
	}

	updated := guest.ApplyConfirmationUpdate(g, upd)
	if err := cc.guests.Update(c.Request.Context(), &updated); err != nil {
		response.ServerError(c, err, "Não foi possível salvar a confirmação")
		return
	}

	response.Data(c, guestView(updated))
}

func (cc *ConfirmationController) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Abort404(c, "Convite não encontrado, confira o código ou o link recebido")
		return
	}
	response.ServerError(c, err)
}
