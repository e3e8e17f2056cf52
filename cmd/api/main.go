package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrbot/backend/internal/config"
	"github.com/hrbot/backend/internal/logging"
	"github.com/hrbot/backend/internal/repository/postgres"
	"github.com/hrbot/backend/internal/service"
	httptransport "github.com/hrbot/backend/internal/transport/http"
	"github.com/hrbot/backend/internal/transport/mail"
)

func main() {
	cfg := config.Load()

	// Mirror log output to the TCP collector when one is configured.
	if cfg.LogstashTCPAddr != "" {
		mirror, err := logging.NewTCPWriter(cfg.LogstashTCPAddr, logging.TCPWriterConfig{})
		if err != nil {
			log.Fatalf("Failed to set up log mirror: %v", err)
		}
		defer mirror.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, mirror))
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	employeeRepo := postgres.NewEmployeeRepo(db)
	resetRepo := postgres.NewPasswordResetRepo(db)

	var mailer service.OTPSender
	if cfg.SendGridAPIKey == "" {
		log.Println("SENDGRID_API_KEY not set, logging OTP codes instead of sending email")
		mailer = mail.ConsoleOTPMailer{}
	} else {
		mailer = mail.NewOTPMailer(cfg.SendGridAPIKey, cfg.FromEmail)
	}

	authService := service.NewAuthService(employeeRepo, resetRepo, mailer, service.AuthServiceConfig{
		OTPTTL:    cfg.OTPTTL,
		OTPLength: cfg.OTPLength,
	})
	provisioningService := service.NewProvisioningService(employeeRepo)

	e := httptransport.NewRouter(cfg.AllowOrigins)
	httptransport.RegisterAuth(e, authService)
	httptransport.RegisterWebhooks(e, provisioningService)
	httptransport.RegisterSwagger(e)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
