package response

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/nexocrm/crm-backend-go/internal/domain/auth"
	"github.com/nexocrm/crm-backend-go/internal/domain/company"
	"github.com/nexocrm/crm-backend-go/internal/domain/contact"
	"github.com/nexocrm/crm-backend-go/internal/domain/employee"
	"github.com/nexocrm/crm-backend-go/internal/domain/lead"
	"github.com/nexocrm/crm-backend-go/internal/domain/meeting"
	"github.com/nexocrm/crm-backend-go/internal/domain/note"
	"github.com/nexocrm/crm-backend-go/internal/domain/reminder"
	"github.com/nexocrm/crm-backend-go/internal/domain/role"
	"github.com/nexocrm/crm-backend-go/internal/domain/task"
	"github.com/nexocrm/crm-backend-go/internal/domain/todo"
	"github.com/nexocrm/crm-backend-go/internal/domain/user"
	"github.com/nexocrm/crm-backend-go/internal/pkg/validator"
	"github.com/nexocrm/crm-backend-go/internal/service/access"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Tenant gate denials carry the verify state alongside the reason.
	var denied *access.DeniedError
	if errors.As(err, &denied) {
		details := map[string]string{}
		if denied.VerifyState != "" {
			details["verify_state"] = denied.VerifyState
		}
		writeJSON(w, http.StatusForbidden, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "FORBIDDEN",
				Message: denied.Error(),
				Details: details,
			},
		})
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrRefreshTokenInvalid),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthExchangeFailed),
		errors.Is(err, auth.ErrOAuthNotLinked):
		Unauthorized(w, err.Error())

	// Access control
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrSuperAdminRequired),
		errors.Is(err, user.ErrPrincipalMissingFromAuth),
		errors.Is(err, employee.ErrNoAssignedRole),
		errors.Is(err, role.ErrRoleInactive):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, company.ErrCompanyNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, role.ErrRoleNotFound),
		errors.Is(err, contact.ErrContactNotFound),
		errors.Is(err, lead.ErrLeadNotFound),
		errors.Is(err, lead.ErrAssigneeNotFound),
		errors.Is(err, task.ErrAssigneeNotFound),
		errors.Is(err, meeting.ErrMeetingNotFound),
		errors.Is(err, meeting.ErrParticipantNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, todo.ErrTodoNotFound),
		errors.Is(err, note.ErrNoteNotFound),
		errors.Is(err, reminder.ErrReminderNotFound),
		errors.Is(err, pgx.ErrNoRows):
		NotFound(w, err.Error())

	// Conflicts
	case errors.Is(err, user.ErrUserEmailExists),
		errors.Is(err, company.ErrCompanyEmailExists),
		errors.Is(err, employee.ErrEmployeeExists),
		errors.Is(err, employee.ErrEmployeeAlreadyDone),
		errors.Is(err, role.ErrRoleNameExists),
		errors.Is(err, role.ErrRoleInUse),
		errors.Is(err, meeting.ErrParticipantDuplicated):
		Conflict(w, err.Error())

	// Bad input
	case errors.Is(err, lead.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, company.ErrInvalidVerifyState),
		errors.Is(err, reminder.ErrInvalidRange),
		errors.Is(err, reminder.ErrInvalidType),
		errors.Is(err, role.ErrUnknownModule),
		errors.Is(err, employee.ErrRoleOutsideCompany),
		errors.Is(err, contact.ErrContactIdentityMissing),
		errors.Is(err, meeting.ErrTitleRequired),
		errors.Is(err, meeting.ErrInvalidTimeRange),
		errors.Is(err, todo.ErrTextRequired),
		errors.Is(err, note.ErrTitleRequired),
		errors.Is(err, reminder.ErrDateTimeRequired),
		errors.Is(err, reminder.ErrDaysRequired),
		errors.Is(err, reminder.ErrMessageRequired),
		errors.Is(err, user.ErrCompanyIDRequired):
		BadRequest(w, err.Error(), nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
