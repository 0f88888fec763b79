// Package guests exposes the admin guest-list management endpoints.
package guests

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/app/models/guest"
	"casamento/app/repositories"
	"casamento/app/requests"
	"casamento/pkg/logger"
	"casamento/pkg/response"
)

// GuestController serves the back-office guest list.
type GuestController struct {
	guests *repositories.GuestRepository
}

// NewGuestController builds the controller.
func NewGuestController() *GuestController {
	return &GuestController{
		guests: repositories.NewGuestRepository(),
	}
}

// listItem is one guest plus its aggregate confirmation state.
type listItem struct {
	Guest guest.Guest        `json:"guest"`
	Party guest.PartySummary `json:"party"`
}

// Index lists every party. An optional status query (full, partial, none)
// filters by aggregate state, computed in one place by the party summary.
func (gc *GuestController) Index(c *gin.Context) {
	all, err := gc.guests.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível carregar a lista de convidados")
		return
	}

	statusFilter := c.Query("status")
	items := make([]listItem, 0, len(all))
	for _, g := range all {
		party := g.Party()
		if statusFilter != "" && string(party.Status) != statusFilter {
			continue
		}
		items = append(items, listItem{Guest: g, Party: party})
	}

	response.Data(c, items)
}

// Store creates one party by hand.
func (gc *GuestController) Store(c *gin.Context) {
	req, err := requests.ValidateGuestSave(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	g, err := gc.newGuest(c.Request.Context(), req.Name, nil)
	if err != nil {
		response.ServerError(c, err, "Não foi possível gerar o código de confirmação")
		return
	}
	*g = guest.UpdateFamily(*g, req.Spouse, req.Children, req.Companions)

	if err := gc.guests.Create(c.Request.Context(), g); err != nil {
		response.ServerError(c, err, "Não foi possível criar o convidado")
		return
	}

	response.Created(c, listItem{Guest: *g, Party: g.Party()})
}

// Update edits a party's name and family composition. Confirmations of
// removed people are pruned by the model helper.
func (gc *GuestController) Update(c *gin.Context) {
	g, err := gc.guests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.respondLookupError(c, err)
		return
	}

	req, err := requests.ValidateGuestSave(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	g.Name = req.Name
	updated := guest.UpdateFamily(*g, req.Spouse, req.Children, req.Companions)

	if err := gc.guests.Update(c.Request.Context(), &updated); err != nil {
		response.ServerError(c, err, "Não foi possível salvar o convidado")
		return
	}

	response.Data(c, listItem{Guest: updated, Party: updated.Party()})
}

// Destroy removes a party permanently.
func (gc *GuestController) Destroy(c *gin.Context) {
	if err := gc.guests.Delete(c.Request.Context(), c.Param("id")); err != nil {
		gc.respondLookupError(c, err)
		return
	}
	response.Data(c, gin.H{"deleted": true})
}

// SetPersonConfirmation is the admin's manual override for one person of a
// party. Unlike the self-service flow this rejects unknown names so a typo
// in the dialog surfaces instead of disappearing.
func (gc *GuestController) SetPersonConfirmation(c *gin.Context) {
	g, err := gc.guests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.respondLookupError(c, err)
		return
	}

	req, err := requests.ValidatePersonConfirmation(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	key := guest.PersonKey{Kind: guest.PersonKind(req.Kind), Name: req.Name}
	updated, err := guest.SetPersonConfirmation(*g, key, req.Confirmed)
	if err != nil {
		response.Abort400(c, err.Error())
		return
	}

	if err := gc.guests.Update(c.Request.Context(), &updated); err != nil {
		response.ServerError(c, err, "Não foi possível salvar a confirmação")
		return
	}

	response.Data(c, listItem{Guest: updated, Party: updated.Party()})
}

// BulkImport ingests a batch of bare names. The outcome is three buckets:
// created guests, names skipped as duplicates and names rejected with a
// reason. Duplicates and rejections are result data, not request failures.
func (gc *GuestController) BulkImport(c *gin.Context) {
	req, err := requests.ValidateBulkImport(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	existing, err := gc.guests.ExistingNamesLower(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível verificar os convidados existentes")
		return
	}

	result := guest.PrepareImport(req.Names, existing)

	imported := make([]guest.Guest, 0, len(result.Accepted))
	batchCodes := make(map[string]bool, len(result.Accepted))
	for _, name := range result.Accepted {
		g, err := gc.newGuest(c.Request.Context(), name, batchCodes)
		if err != nil {
			if errors.Is(err, guest.ErrCodeExhausted) {
				logger.ErrorString("Guests", "BulkImport", err.Error())
			}
			response.ServerError(c, err, "Não foi possível gerar os códigos de confirmação")
			return
		}
		imported = append(imported, *g)
	}

	if err := gc.guests.CreateBatch(c.Request.Context(), imported); err != nil {
		response.ServerError(c, err, "Não foi possível importar os convidados")
		return
	}

	response.Data(c, gin.H{
		"imported":   imported,
		"duplicates": result.Duplicates,
		"errors":     result.Errors,
	})
}

// newGuest assembles a fresh party with a unique token and confirmation
// code. Codes handed out earlier in the same batch (not yet persisted) are
// tracked in taken so a bulk import cannot collide with itself.
func (gc *GuestController) newGuest(ctx context.Context, name string, taken map[string]bool) (*guest.Guest, error) {
	code, err := guest.GenerateConfirmationCode(func(code string) (bool, error) {
		if taken[code] {
			return true, nil
		}
		return gc.guests.CodeExists(ctx, code)
	})
	if err != nil {
		return nil, err
	}
	if taken != nil {
		taken[code] = true
	}

	return &guest.Guest{
		ID:                      uuid.New().String(),
		Name:                    name,
		Token:                   uuid.New().String(),
		ConfirmationCode:        code,
		Children:                guest.NameList{},
		Companions:              guest.NameList{},
		ChildrenConfirmations:   guest.ConfirmationMap{},
		CompanionsConfirmations: guest.ConfirmationMap{},
	}, nil
}

func (gc *GuestController) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Abort404(c, "Convidado não encontrado")
		return
	}
	response.ServerError(c, err)
}
