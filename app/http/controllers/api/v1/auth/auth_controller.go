// Package auth handles login, social login and session teardown.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"casamento/app/http/middlewares"
	"casamento/app/models/user"
	"casamento/app/repositories"
	"casamento/app/requests"
	"casamento/pkg/logger"
	"casamento/pkg/oauth"
	"casamento/pkg/response"
	"casamento/pkg/session"
)

// AuthController serves the authentication endpoints.
type AuthController struct {
	users    *repositories.UserRepository
	sessions *session.Store
	oauth    *oauth.Service
}

// NewAuthController builds the controller. The oauth service may be nil
// when no provider is configured; the callback endpoint then answers 503.
func NewAuthController() *AuthController {
	return &AuthController{
		users:    repositories.NewUserRepository(),
		sessions: session.NewStore(middlewares.SessionTTL()),
		oauth:    oauth.NewServiceFromConfig(),
	}
}

// Login trades credentials for a bearer token. Wrong e-mail and wrong
// password get the same answer so the endpoint does not leak which accounts
// exist.
func (ac *AuthController) Login(c *gin.Context) {
	req, err := requests.ValidateLogin(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	u, err := ac.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Abort401(c, "E-mail ou senha incorretos")
			return
		}
		response.ServerError(c, err)
		return
	}

	if !u.CheckPassword(req.Password) {
		response.Abort401(c, "E-mail ou senha incorretos")
		return
	}

	if !u.Active {
		response.Abort403(c, "Este acesso foi revogado")
		return
	}

	ac.issueSession(c, u)
}

// OAuthCallback finishes a social login: the SPA posts the authorization
// code, we trade it for a profile and find or create the matching account.
func (ac *AuthController) OAuthCallback(c *gin.Context) {
	if ac.oauth == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"status":  false,
			"message": "Login social não está habilitado",
		})
		return
	}

	req, err := requests.ValidateOAuthCallback(c)
	if err != nil {
		requests.RespondError(c, err)
		return
	}

	accessToken, err := ac.oauth.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger.ErrorString("Auth", "OAuthCallback", err.Error())
		response.Abort401(c, "Não foi possível validar o login social")
		return
	}

	profile, err := ac.oauth.FetchProfile(c.Request.Context(), accessToken)
	if err != nil {
		logger.ErrorString("Auth", "OAuthCallback", err.Error())
		response.Abort401(c, "Não foi possível obter o perfil do login social")
		return
	}

	u, err := ac.findOrCreateOAuthUser(c, profile)
	if err != nil {
		response.ServerError(c, err, "Não foi possível concluir o login social")
		return
	}

	if !u.Active {
		response.Abort403(c, "Este acesso foi revogado")
		return
	}

	ac.issueSession(c, u)
}

// Logout destroys the caller's session. Always succeeds: a token that no
// longer resolves is already logged out.
func (ac *AuthController) Logout(c *gin.Context) {
	if token := middlewares.BearerToken(c); token != "" {
		ac.sessions.Destroy(token)
	}
	response.Data(c, gin.H{"logged_out": true})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	u, ok := middlewares.GetCurrentUser(c)
	if !ok {
		response.Abort401(c)
		return
	}
	response.Data(c, u)
}

// findOrCreateOAuthUser resolves a provider profile to a local account:
// match by provider identity first, then link by e-mail, then create a new
// guest-role account.
func (ac *AuthController) findOrCreateOAuthUser(c *gin.Context, p *oauth.Profile) (*user.User, error) {
	ctx := c.Request.Context()

	u, err := ac.users.GetByProvider(ctx, p.Provider, p.ProviderID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if p.Email != "" {
		u, err = ac.users.GetByEmail(ctx, p.Email)
		if err == nil {
			u.Provider = p.Provider
			u.ProviderID = p.ProviderID
			if u.AvatarURL == "" {
				u.AvatarURL = p.AvatarURL
			}
			if err := ac.users.Update(ctx, u); err != nil {
				return nil, err
			}
			return u, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	created := &user.User{
		ID:         uuid.New().String(),
		Name:       p.Name,
		Email:      p.Email,
		Provider:   p.Provider,
		ProviderID: p.ProviderID,
		AvatarURL:  p.AvatarURL,
		Role:       user.RoleGuest,
		Active:     true,
	}
	if err := ac.users.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (ac *AuthController) issueSession(c *gin.Context, u *user.User) {
	token, err := ac.sessions.Create(u.ID)
	if err != nil {
		response.ServerError(c, err, "Não foi possível iniciar a sessão")
		return
	}

	response.Data(c, gin.H{
		"token": token,
		"user":  u,
	})
}
