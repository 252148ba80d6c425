package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexocrm/crm-backend-go/internal/config"
	appHTTP "github.com/nexocrm/crm-backend-go/internal/handler/http"
	"github.com/nexocrm/crm-backend-go/internal/pkg/cron"
	"github.com/nexocrm/crm-backend-go/internal/pkg/database"
	"github.com/nexocrm/crm-backend-go/internal/pkg/email"
	"github.com/nexocrm/crm-backend-go/internal/pkg/jwt"
	"github.com/nexocrm/crm-backend-go/internal/pkg/oauth"
	"github.com/nexocrm/crm-backend-go/internal/repository/postgresql"
	"github.com/nexocrm/crm-backend-go/internal/service/access"
	authService "github.com/nexocrm/crm-backend-go/internal/service/auth"
	companyService "github.com/nexocrm/crm-backend-go/internal/service/company"
	contactService "github.com/nexocrm/crm-backend-go/internal/service/contact"
	dashboardService "github.com/nexocrm/crm-backend-go/internal/service/dashboard"
	employeeService "github.com/nexocrm/crm-backend-go/internal/service/employee"
	leadService "github.com/nexocrm/crm-backend-go/internal/service/lead"
	meetingService "github.com/nexocrm/crm-backend-go/internal/service/meeting"
	noteService "github.com/nexocrm/crm-backend-go/internal/service/note"
	reminderService "github.com/nexocrm/crm-backend-go/internal/service/reminder"
	roleService "github.com/nexocrm/crm-backend-go/internal/service/role"
	taskService "github.com/nexocrm/crm-backend-go/internal/service/task"
	todoService "github.com/nexocrm/crm-backend-go/internal/service/todo"
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

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	contactRepo := postgresql.NewContactRepository(db)
	leadRepo := postgresql.NewLeadRepository(db)
	meetingRepo := postgresql.NewMeetingRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	todoRepo := postgresql.NewTodoRepository(db)
	noteRepo := postgresql.NewNoteRepository(db)
	reminderRepo := postgresql.NewReminderRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	gate := access.NewGate(companyRepo, employeeRepo)
	evaluator := access.NewEvaluator(employeeRepo, roleRepo)

	loginLink := cfg.App.FrontendURL + "/login"
	authSvc := authService.NewAuthService(db, userRepo, companyRepo, employeeRepo, jwtSvc, googleSvc)
	companySvc := companyService.NewCompanyService(companyRepo, userRepo, emailSvc, loginLink)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, roleRepo, companyRepo, userRepo, emailSvc, loginLink)
	roleSvc := roleService.NewRoleService(roleRepo)
	contactSvc := contactService.NewContactService(contactRepo)
	leadSvc := leadService.NewLeadService(leadRepo, contactSvc, employeeRepo, userRepo, emailSvc)
	meetingSvc := meetingService.NewMeetingService(meetingRepo, contactSvc, employeeRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)
	todoSvc := todoService.NewTodoService(todoRepo)
	noteSvc := noteService.NewNoteService(noteRepo)
	reminderSvc := reminderService.NewReminderService(reminderRepo)
	dashboardSvc := dashboardService.NewDashboardService(leadRepo, taskRepo, meetingRepo, reminderSvc)

	handlers := appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc, jwtSvc, googleSvc),
		Company:   appHTTP.NewCompanyHandler(companySvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Role:      appHTTP.NewRoleHandler(roleSvc),
		Contact:   appHTTP.NewContactHandler(contactSvc),
		Lead:      appHTTP.NewLeadHandler(leadSvc),
		Meeting:   appHTTP.NewMeetingHandler(meetingSvc),
		Task:      appHTTP.NewTaskHandler(taskSvc),
		Todo:      appHTTP.NewTodoHandler(todoSvc),
		Note:      appHTTP.NewNoteHandler(noteSvc),
		Reminder:  appHTTP.NewReminderHandler(reminderSvc),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, gate, evaluator, handlers)

	scheduler := cron.NewScheduler()
	cron.NewTaskJobs(taskRepo, userRepo, emailSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
