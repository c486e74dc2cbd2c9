package router

import (
	"context"
	"time"

	_ "distrital4/docs"
	"distrital4/internal/access"
	"distrital4/internal/auth"
	"distrital4/internal/config"
	"distrital4/internal/handler"
	"distrital4/internal/middleware"
	"distrital4/internal/repository"
	"distrital4/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB. rdb may be nil, in
// which case rate-limit counters live in process memory only. ctx bounds the
// lifetime of background goroutines started here.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// ClientIP keys the rate limiters; forwarded headers count only behind a known proxy.
	if cfg.IsProduction() && cfg.TrustProxyHTTPS {
		_ = r.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})
	} else {
		_ = r.SetTrustedProxies(nil)
	}

	var authStore middleware.RateStore
	if rdb != nil {
		authStore = middleware.NewFallbackStore(
			middleware.NewRedisStore(rdb, "distrital4:ratelimit:"),
			middleware.NewMemoryStore(ctx),
			5, 30*time.Second,
		)
	} else {
		authStore = middleware.NewMemoryStore(ctx)
	}
	apiStore := middleware.NewMemoryStore(ctx)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	if cfg.IsProduction() && cfg.TrustProxyHTTPS {
		r.Use(middleware.ForceHTTPS())
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Origins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(apiStore, "api", 1000, time.Minute,
		"Demasiadas solicitudes. Intente nuevamente en un momento."))

	// ── Core ─────────────────────────────────────────────────────────────────
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	session := auth.NewSessionIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpirationMinutes)*time.Minute)
	resolver := access.Resolver{
		Strict: cfg.StrictRoleScope,
		OnUnknown: func(role access.Role) {
			log.Warn().Str("role", string(role)).Bool("strict", cfg.StrictRoleScope).Msg("rol sin alcance definido")
		},
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	novedadRepo := repository.NewNovedadRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, hasher, session)
	novedadSvc := service.NewNovedadService(novedadRepo, resolver)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	novedadesH := handler.NewNovedadesHandler(novedadSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	officers := middleware.RequireRole(access.OfficerRoles()...)
	adminOnly := middleware.RequireRole(access.RoleAdmin)
	dashboard := middleware.RequireRole(access.DashboardRoles()...)
	authLimit := middleware.RateLimit(authStore, "auth", cfg.AuthRateLimit,
		time.Duration(cfg.AuthRateWindowMinutes)*time.Minute,
		"Demasiados intentos. Intente nuevamente mas tarde.")
	jwtMW := middleware.JWTAuth(session)

	// Public
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/login", authLimit, authH.Login)
	// The limiter runs before JWT so rejected tokens also spend attempts.
	r.POST("/register", authLimit, jwtMW, adminOnly, usuariosH.Registrar)

	// Protected routes
	protected := r.Group("", jwtMW)
	{
		users := protected.Group("/users", adminOnly)
		{
			users.GET("", usuariosH.Listar)
			users.DELETE("/:id", usuariosH.Eliminar)
		}

		// Listing is open to every authenticated role; the service narrows it by scope.
		protected.GET("/novedades", novedadesH.Listar)
		novedades := protected.Group("/novedades", officers)
		{
			novedades.GET("/:id", novedadesH.ObtenerPorID)
			novedades.POST("", novedadesH.Crear)
			novedades.PUT("/:id", novedadesH.Actualizar)
			novedades.DELETE("/:id", novedadesH.Eliminar)
		}

		protected.GET("/novedades_parte", officers, handler.Bienvenida("Parte de Novedades"))
		protected.GET("/ver_novedades", officers, handler.Bienvenida("Ver Partes de Novedades"))
		protected.GET("/dashboard", dashboard, handler.Bienvenida("Dashboard"))
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
