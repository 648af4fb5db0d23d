package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/jhoicas/crm-clientes/internal/application/auth"
	appcliente "github.com/jhoicas/crm-clientes/internal/application/cliente"
	infraapi "github.com/jhoicas/crm-clientes/internal/infrastructure/api"
	"github.com/jhoicas/crm-clientes/internal/infrastructure/session"
	"github.com/jhoicas/crm-clientes/internal/state"
	httpRouter "github.com/jhoicas/crm-clientes/internal/interfaces/http"
	"github.com/jhoicas/crm-clientes/pkg/config"
	"github.com/jhoicas/crm-clientes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	sesiones, err := session.New(cfg.Session.File)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir persistencia de sesión")
	}

	// El store de auth se siembra con la sesión persistida; el cliente del
	// backend toma el bearer de la misma persistencia en cada petición.
	authStore := state.NewAuthStore(sesiones, log)
	clienteStore := state.NewClienteStore(log)

	apiClient := infraapi.New(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		func() string { return sesiones.Obtener(state.ClaveToken) },
		log,
	)

	authUC := appauth.NewUseCase(apiClient, authStore, sesiones, log)
	clienteUC := appcliente.NewUseCase(apiClient, clienteStore, authStore, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Clientes",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      httpRouter.NewAuthHandler(authUC, authStore),
		Cliente:   httpRouter.NewClienteHandler(clienteUC, clienteStore),
		AuthStore: authStore,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
