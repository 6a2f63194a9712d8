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

	"github.com/dayflow-hr/dayflow-backend-go/internal/config"
	"github.com/dayflow-hr/dayflow-backend-go/internal/fixtures"
	appHTTP "github.com/dayflow-hr/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/credential"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/firebase"
	"github.com/dayflow-hr/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/dayflow-backend-go/internal/repository/memory"
	attendanceService "github.com/dayflow-hr/dayflow-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hr/dayflow-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hr/dayflow-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hr/dayflow-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/dayflow-backend-go/internal/service/leave"
	payrollService "github.com/dayflow-hr/dayflow-backend-go/internal/service/payroll"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := appHTTP.NewLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := fixtures.Load(cfg.Seed.Password, cfg.Seed.BcryptCost)
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	userRepo := memory.NewUserRepository(seed.Users...)
	leaveRequestRepo := memory.NewLeaveRequestRepository(seed.LeaveRequests...)
	attendanceRepo := memory.NewAttendanceRepository(seed.Attendance...)
	payrollRepo := memory.NewPayrollRepository(seed.Payroll...)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, credential.NewGenerator(), cfg.Seed.BcryptCost)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, leaveRequestRepo, attendanceRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Profile:    appHTTP.NewProfileHandler(),
	}

	router := appHTTP.NewRouter(cfg, logger, JWTService, authSvc, newFirebaseVerifier(ctx, cfg.Firebase), handlers)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newFirebaseVerifier never fails: without a usable project every token is
// rejected and GET /profile answers 401.
func newFirebaseVerifier(ctx context.Context, cfg config.FirebaseConfig) firebase.TokenVerifier {
	projectID := cfg.ProjectID
	if projectID == "" && cfg.CredentialsFile != "" {
		id, err := firebase.ProjectIDFromCredentialsFile(ctx, cfg.CredentialsFile)
		if err != nil {
			slog.Warn("Firebase credentials unusable, /profile disabled", "error", err)
			return firebase.UnavailableVerifier{Reason: err}
		}
		projectID = id
	}
	if projectID == "" {
		slog.Warn("Firebase project not configured, /profile disabled")
		return firebase.UnavailableVerifier{Reason: firebase.ErrProjectIDRequired}
	}

	verifier, err := firebase.NewRemoteVerifier(ctx, projectID)
	if err != nil {
		slog.Warn("Firebase keys unavailable, /profile disabled", "error", err)
		return firebase.UnavailableVerifier{Reason: err}
	}
	return verifier
}
