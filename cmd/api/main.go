package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hourline-app/hourline-backend-go/internal/config"
	appHTTP "github.com/hourline-app/hourline-backend-go/internal/handler/http"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/cron"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/database"
	"github.com/hourline-app/hourline-backend-go/internal/pkg/token"
	"github.com/hourline-app/hourline-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hourline-app/hourline-backend-go/internal/service/attendance"
	policyService "github.com/hourline-app/hourline-backend-go/internal/service/policy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	dayRecordRepo := postgresql.NewDayRecordRepository(db)
	policyRepo := postgresql.NewPolicyRepository(db)

	tokenService := token.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	policySvc := policyService.NewPolicyService(policyRepo)

	runTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}
	attendanceSvc := attendanceService.NewAttendanceService(dayRecordRepo, policySvc, runTx)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	settingsHandler := appHTTP.NewSettingsHandler(policySvc)

	router := appHTTP.NewRouter(cfg, tokenService, attendanceHandler, settingsHandler)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(dayRecordRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	if cfg.App.Env == "development" {
		// Convenience credential for local API poking.
		devToken, _, err := tokenService.GenerateAccessToken("dev-user")
		if err == nil {
			slog.Info("Development access token", "token", devToken)
		}
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
