// Package users manages the back-office accounts (admin only).
package users

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/app/http/middlewares"
	"casamento/app/models/user"
	"casamento/app/repositories"
	"casamento/app/requests"
	"casamento/pkg/response"
)

// UserController serves the account management endpoints.
type UserController struct {
	users *repositories.UserRepository
}

// NewUserController builds the controller.
func NewUserController() *UserController {
	return &UserController{
		users: repositories.NewUserRepository(),
	}
}

// Index lists every account, active or not.
func (uc *UserController) Index(c *gin.Context) {
	all, err := uc.users.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Não foi possível carregar os usuários")
		return
	}
	response.Data(c, all)
}

// Store creates one credential account.
func (uc *UserController) Store(c *gin.Context) {
	req, err := requests.ValidateUserCreate(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	u := user.User{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   user.Role(req.Role),
		Active: true,
	}
	if err := u.SetPassword(req.Password); err != nil {
		response.ServerError(c, err)
		return
	}

	if err := uc.users.Create(c.Request.Context(), &u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			response.Abort409(c, "Já existe um usuário com este e-mail")
			return
		}
		response.ServerError(c, err, "Não foi possível criar o usuário")
		return
	}

	response.Created(c, u)
}

// Update changes a user's name and/or role. Empty fields keep their prior
// values.
func (uc *UserController) Update(c *gin.Context) {
	u, err := uc.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		uc.respondLookupError(c, err)
		return
	}

	req, err := requests.ValidateUserUpdate(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Role != "" {
		u.Role = user.Role(req.Role)
	}

	if err := uc.users.Update(c.Request.Context(), u); err != nil {
		response.ServerError(c, err, "Não foi possível salvar o usuário")
		return
	}

	response.Data(c, u)
}

// Destroy deactivates an account instead of deleting it; the auth middleware
// kills the user's live sessions on their next request. Admins cannot
// deactivate themselves.
func (uc *UserController) Destroy(c *gin.Context) {
	current, ok := middlewares.GetCurrentUser(c)
	if ok && current.ID == c.Param("id") {
		response.Abort400(c, "Você não pode desativar a sua própria conta")
		return
	}

	if err := uc.users.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		uc.respondLookupError(c, err)
		return
	}
	response.Data(c, gin.H{"deactivated": true})
}

func (uc *UserController) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Abort404(c, "Usuário não encontrado")
		return
	}
	response.ServerError(c, err)
}
