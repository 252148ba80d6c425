package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nexocrm/crm-backend-go/internal/config"
	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/handler/http/middleware"
	"github.com/nexocrm/crm-backend-go/internal/pkg/jwt"
	"github.com/nexocrm/crm-backend-go/internal/service/access"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth      AuthHandler
	Company   CompanyHandler
	Employee  EmployeeHandler
	Role      RoleHandler
	Contact   ContactHandler
	Lead      LeadHandler
	Meeting   MeetingHandler
	Task      TaskHandler
	Todo      TodoHandler
	Note      NoteHandler
	Reminder  ReminderHandler
	Dashboard DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, gate *access.Gate, evaluator *access.Evaluator, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crm-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Route("/register", func(r chi.Router) {
				r.Post("/company", h.Auth.RegisterCompany)
				r.Post("/employee", h.Auth.RegisterEmployee)
			})
			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Profile sits outside the tenant gate so users of pending
			// companies can still see their own account state.
			r.Get("/auth/profile", h.Auth.Profile)

			// Super admin only
			r.Route("/admin/companies", func(r chi.Router) {
				r.Use(middleware.SuperAdminOnly)
				r.Get("/", h.Company.List)
				r.Get("/{companyID}", h.Company.Get)
				r.Patch("/{companyID}/verify", h.Company.SetVerify)
				r.Patch("/{companyID}/activate", h.Company.SetActive)
			})

			// Tenant members: company and employee must be verified and
			// active before anything below responds.
			r.Group(func(r chi.Router) {
				r.Use(middleware.TenantGate(gate))

				r.Route("/companies/my", func(r chi.Router) {
					r.Get("/", h.Company.GetOwn)

					r.Group(func(r chi.Router) {
						r.Use(middleware.CompanyAdminOnly)
						r.Put("/", h.Company.Update)
					})
				})

				r.Route("/employees", func(r chi.Router) {
					r.Use(middleware.CompanyAdminOnly)
					r.Get("/", h.Employee.List)
					r.Get("/{employeeID}", h.Employee.Get)
					r.Post("/{employeeID}/verify", h.Employee.Verify)
					r.Post("/{employeeID}/reject", h.Employee.Reject)
					r.Patch("/{employeeID}/activate", h.Employee.SetActive)
					r.Patch("/{employeeID}/designation", h.Employee.UpdateDesignation)
				})

				r.Route("/roles", func(r chi.Router) {
					r.Use(middleware.CompanyAdminOnly)
					r.Post("/", h.Role.Create)
					r.Get("/", h.Role.List)
					r.Get("/{roleID}", h.Role.Get)
					r.Put("/{roleID}", h.Role.Update)
					r.Delete("/{roleID}", h.Role.Delete)
				})

				r.Route("/contacts", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleContacts)
					r.With(perm(role.ActionCreate)).Post("/", h.Contact.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Contact.List)
					r.With(perm(role.ActionRead)).Get("/{contactID}", h.Contact.Get)
					r.With(perm(role.ActionUpdate)).Put("/{contactID}", h.Contact.Update)
					r.With(perm(role.ActionDelete)).Delete("/{contactID}", h.Contact.Delete)
				})

				r.Route("/leads", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleLeads)
					r.With(perm(role.ActionCreate)).Post("/", h.Lead.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Lead.List)
					r.With(perm(role.ActionRead)).Get("/{leadID}", h.Lead.Get)
					r.With(perm(role.ActionUpdate)).Put("/{leadID}", h.Lead.Update)
					r.With(perm(role.ActionUpdate)).Patch("/{leadID}/status", h.Lead.SetStatus)
					r.With(perm(role.ActionUpdate)).Post("/{leadID}/follow-ups", h.Lead.AddFollowUp)
					r.With(perm(role.ActionUpdate)).Patch("/{leadID}/assign", h.Lead.Assign)
					r.With(perm(role.ActionDelete)).Delete("/{leadID}", h.Lead.Delete)
				})

				r.Route("/meetings", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleMeeting)
					r.With(perm(role.ActionCreate)).Post("/", h.Meeting.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Meeting.List)
					r.With(perm(role.ActionRead)).Get("/{meetingID}", h.Meeting.Get)
					r.With(perm(role.ActionUpdate)).Put("/{meetingID}", h.Meeting.Update)
					r.With(perm(role.ActionUpdate)).Post("/{meetingID}/participants", h.Meeting.AddParticipant)
					r.With(perm(role.ActionUpdate)).Delete("/{meetingID}/participants/employees/{employeeID}", h.Meeting.RemoveEmployee)
					r.With(perm(role.ActionUpdate)).Delete("/{meetingID}/participants/contacts/{contactID}", h.Meeting.RemoveContact)
					r.With(perm(role.ActionDelete)).Delete("/{meetingID}", h.Meeting.Delete)
				})

				r.Route("/tasks", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleTasks)
					r.With(perm(role.ActionCreate)).Post("/", h.Task.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Task.List)
					r.With(perm(role.ActionRead)).Get("/{taskID}", h.Task.Get)
					r.With(perm(role.ActionUpdate)).Put("/{taskID}", h.Task.Update)
					r.With(perm(role.ActionUpdate)).Patch("/{taskID}/status", h.Task.SetStatus)
					r.With(perm(role.ActionDelete)).Delete("/{taskID}", h.Task.Delete)
				})

				r.Route("/todos", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleTodos)
					r.With(perm(role.ActionCreate)).Post("/", h.Todo.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Todo.List)
					r.With(perm(role.ActionUpdate)).Put("/{todoID}", h.Todo.Update)
					r.With(perm(role.ActionUpdate)).Patch("/{todoID}/toggle", h.Todo.Toggle)
					r.With(perm(role.ActionDelete)).Delete("/{todoID}", h.Todo.Delete)
				})

				r.Route("/notes", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleNotes)
					r.With(perm(role.ActionCreate)).Post("/", h.Note.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Note.List)
					r.With(perm(role.ActionRead)).Get("/{noteID}", h.Note.Get)
					r.With(perm(role.ActionUpdate)).Put("/{noteID}", h.Note.Update)
					r.With(perm(role.ActionDelete)).Delete("/{noteID}", h.Note.Delete)
				})

				r.Route("/reminders", func(r chi.Router) {
					perm := permissionFor(evaluator, role.ModuleReminders)
					r.With(perm(role.ActionCreate)).Post("/", h.Reminder.Create)
					r.With(perm(role.ActionRead)).Get("/", h.Reminder.List)
					r.With(perm(role.ActionRead)).Get("/calendar", h.Reminder.Calendar)
					r.With(perm(role.ActionRead)).Get("/upcoming", h.Reminder.Upcoming)
					r.With(perm(role.ActionRead)).Get("/{reminderID}", h.Reminder.Get)
					r.With(perm(role.ActionUpdate)).Put("/{reminderID}", h.Reminder.Update)
					r.With(perm(role.ActionDelete)).Delete("/{reminderID}", h.Reminder.Delete)
				})

				r.Get("/dashboard", h.Dashboard.Summary)
			})
		})
	})
	return r
}

// permissionFor curries the module so route blocks only spell out the
// action per verb.
func permissionFor(evaluator *access.Evaluator, module role.Module) func(role.Action) func(http.Handler) http.Handler {
	return func(action role.Action) func(http.Handler) http.Handler {
		return middleware.RequirePermission(evaluator, module, action)
	}
}
