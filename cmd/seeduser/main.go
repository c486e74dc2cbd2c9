// seeduser creates a user, or resets its password and role when it already exists.
// Uso: go run ./cmd/seeduser -username oficial20 -password secreto -role "OFICIAL DE 20"
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"distrital4/internal/auth"
	"distrital4/internal/config"
	"distrital4/internal/dto"
	"distrital4/internal/infra"
	"distrital4/internal/repository"
	"distrital4/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	username := flag.String("username", "", "nombre de usuario")
	password := flag.String("password", "", "contraseña en texto plano")
	role := flag.String("role", "user", "rol asignado")
	flag.Parse()
	if *username == "" || *password == "" {
		log.Fatal().Msg("se requieren -username y -password")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	svc := service.NewAuthService(
		repository.NewUsuarioRepository(db),
		auth.NewPasswordHasher(cfg.BcryptCost),
		auth.NewSessionIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationMinutes)*time.Minute),
	)

	ctx := context.Background()
	_, err = svc.Register(ctx, dto.RegisterRequest{Username: *username, Password: *password, Role: *role})
	switch {
	case err == nil:
		log.Info().Str("username", *username).Str("role", *role).Msg("usuario creado")
	case errors.Is(err, service.ErrDuplicateUsername):
		if err := svc.ResetCredentials(ctx, *username, *password, *role); err != nil {
			log.Fatal().Err(err).Msg("no se pudo actualizar el usuario")
		}
		log.Info().Str("username", *username).Str("role", *role).Msg("usuario actualizado")
	default:
		log.Fatal().Err(err).Msg("no se pudo crear el usuario")
	}
}
