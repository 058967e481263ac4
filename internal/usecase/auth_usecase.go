package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"obradash/internal/adapter/backend/dto"
	"obradash/internal/adapter/backend/mapper"
	"obradash/internal/domain/entities"
	"obradash/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidCompanyName = errors.New("invalid company name")
	ErrInvalidFirebaseUID = errors.New("invalid firebase_uid")
	ErrMissingToken       = errors.New("backend returned no token")
)

const (
	defaultUserName         = "Usuario"
	trialSubscriptionStatus = "trial"
)

type RegisterInput struct {
	Email       string
	Password    string
	CompanyName string
	Phone       string
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.Session, error)
	Register(ctx context.Context, in RegisterInput) (entities.Session, error)
	Sync(ctx context.Context, firebaseUID string) (string, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthUseCase struct {
	auth          interfaces.IAuthGateway
	constructoras interfaces.IConstructoraGateway
	sessions      interfaces.ISessionManager
	now           func() time.Time
	log           *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(auth interfaces.IAuthGateway, constructoras interfaces.IConstructoraGateway, sessions interfaces.ISessionManager, logger *zap.Logger) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{auth: auth, constructoras: constructoras, sessions: sessions, now: time.Now, log: logger}
}

// Login authenticates against the backend and opens a session holding its token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	resp, err := u.auth.Login(ctx, dto.LoginPayload{Email: email, Password: password})
	if err != nil {
		u.log.Warn("[auth][usecase] login failed", zap.String("email", email), zap.Error(err))
		return entities.Session{}, err
	}
	return u.open(ctx, resp, email, "")
}

// Register signs a constructora up on a trial subscription, then logs it in.
func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (entities.Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	if in.Email == "" || in.Password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}
	if in.CompanyName == "" {
		return entities.Session{}, ErrInvalidCompanyName
	}

	_, err := u.auth.Register(ctx, dto.RegisterPayload{
		Email:    in.Email,
		Password: in.Password,
		UserType: string(entities.UserRoleConstructora),
		UserData: dto.RegisterUserData{
			NombreEmpresa:         in.CompanyName,
			Email:                 in.Email,
			Telefono:              strings.TrimSpace(in.Phone),
			SubscriptionStatus:    trialSubscriptionStatus,
			SubscriptionStartDate: mapper.FormatTimestamp(u.now()),
			IsActive:              true,
		},
	})
	if err != nil {
		u.log.Warn("[auth][usecase] register failed", zap.String("email", in.Email), zap.Error(err))
		return entities.Session{}, err
	}
	u.log.Info("[auth][usecase] registered", zap.String("email", in.Email))

	resp, err := u.auth.Login(ctx, dto.LoginPayload{Email: in.Email, Password: in.Password})
	if err != nil {
		return entities.Session{}, err
	}
	if resp.User == nil {
		resp.User = &dto.BackendUser{}
	}
	resp.User.UserType = string(entities.UserRoleConstructora)
	return u.open(ctx, resp, in.Email, in.CompanyName)
}

func (u *AuthUseCase) Sync(ctx context.Context, firebaseUID string) (string, error) {
	firebaseUID = strings.TrimSpace(firebaseUID)
	if firebaseUID == "" {
		return "", ErrInvalidFirebaseUID
	}
	resp, err := u.auth.Sync(ctx, dto.SyncPayload{FirebaseUID: firebaseUID})
	if err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return u.sessions.Clear(ctx, sessionID)
}

// open builds the session user from the login response. The constructora lookup runs with
// the new token bound to ctx; failing it only leaves ConstructoraID empty.
func (u *AuthUseCase) open(ctx context.Context, resp dto.AuthLoginResponse, email, name string) (entities.Session, error) {
	token := resp.IDToken
	if token == "" {
		token = resp.Token
	}
	if token == "" {
		u.log.Error("[auth][usecase] login response without token", zap.String("email", email))
		return entities.Session{}, ErrMissingToken
	}

	bu := dto.BackendUser{}
	if resp.User != nil {
		bu = *resp.User
	}
	user := entities.User{
		ID:    firstNonEmpty(bu.FirebaseUID, bu.ID, fmt.Sprintf("user-%d", u.now().UnixMilli())),
		Email: firstNonEmpty(bu.Email, email),
		Name:  firstNonEmpty(name, bu.Name, defaultUserName),
		Role:  entities.UserRoleResidente,
	}
	if strings.EqualFold(bu.UserType, string(entities.UserRoleConstructora)) {
		user.Role = entities.UserRoleConstructora
	}

	if bu.ID != "" {
		switch user.Role {
		case entities.UserRoleConstructora:
			bound := u.sessions.Bind(ctx, entities.Session{Token: token})
			c, err := u.constructoras.GetConstructoraByUser(bound, bu.ID)
			if err != nil {
				u.log.Warn("[auth][usecase] constructora lookup failed", zap.String("user_id", bu.ID), zap.Error(err))
			}
			user.ConstructoraID = c.ID
		case entities.UserRoleResidente:
			user.ResidenteID = bu.ID
		}
	}

	s, err := u.sessions.Start(ctx, token, user)
	if err != nil {
		return entities.Session{}, err
	}
	u.log.Info("[auth][usecase] login success", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return s, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
