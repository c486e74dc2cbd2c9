package service

//go:generate mockgen -source=auth_service.go -destination=mocks/mock_auth_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"distrital4/internal/access"
	"distrital4/internal/auth"
	"distrital4/internal/dto"
	"distrital4/internal/model"
	"distrital4/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// BootstrapAdminUsername is the account guaranteed to exist after startup.
const BootstrapAdminUsername = "admin"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error)
	ListUsers(ctx context.Context) ([]dto.UsuarioResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	EnsureAdmin(ctx context.Context, password string) (bool, error)
	ResetCredentials(ctx context.Context, username, password, role string) error
}

type authService struct {
	repo    repository.UsuarioRepository
	hasher  *auth.PasswordHasher
	session *auth.SessionIssuer
}

func NewAuthService(repo repository.UsuarioRepository, hasher *auth.PasswordHasher, session *auth.SessionIssuer) AuthService {
	return &authService{repo: repo, hasher: hasher, session: session}
}

func mapUsuario(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Name:      u.Name,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Hierarchy: u.Hierarchy,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Debug().Str("username", req.Username).Msg("login: usuario inexistente")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		log.Debug().Str("username", req.Username).Msg("login: contraseña incorrecta")
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.session.Issue(auth.Identity{ID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.session.TTL().Seconds()),
		User:      dto.SessionUser{ID: user.ID, Username: user.Username, Role: user.Role},
	}, nil
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	_, err := s.repo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = string(access.DefaultRole)
	}
	user := &model.Usuario{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		Name:         nonEmpty(req.Name),
		LastName:     nonEmpty(req.LastName),
		Phone:        nonEmpty(req.Phone),
		Hierarchy:    nonEmpty(req.Hierarchy),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// Concurrent registration of the same name loses at the unique index.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	if !access.Role(role).IsKnown() {
		log.Warn().Str("username", user.Username).Str("role", role).Msg("usuario registrado con rol sin alcance definido")
	}
	log.Info().Uint("user_id", user.ID).Str("username", user.Username).Str("role", role).Msg("usuario registrado")

	resp := mapUsuario(*user)
	return &resp, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = mapUsuario(u)
	}
	return resp, nil
}

func (s *authService) DeleteUser(ctx context.Context, id uint) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	log.Info().Uint("user_id", id).Msg("usuario eliminado")
	return nil
}

// EnsureAdmin creates the admin account when it is missing. It reports
// whether an account was created.
func (s *authService) EnsureAdmin(ctx context.Context, password string) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, BootstrapAdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return false, err
	}
	err = s.repo.Create(ctx, &model.Usuario{
		Username:     BootstrapAdminUsername,
		PasswordHash: hash,
		Role:         string(access.RoleAdmin),
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ResetCredentials replaces the password and role of an existing account.
func (s *authService) ResetCredentials(ctx context.Context, username, password, role string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	if role == "" {
		role = user.Role
	}
	if err := s.repo.UpdateCredentials(ctx, user.ID, hash, role); err != nil {
		return err
	}
	log.Info().Uint("user_id", user.ID).Str("username", username).Str("role", role).Msg("credenciales actualizadas")
	return nil
}

// hashPassword reports over-long passwords as a client error.
func (s *authService) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// nonEmpty turns blank optional strings into NULL columns.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
