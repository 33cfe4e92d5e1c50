package errors

import (
	"net/http"
	"testing"

	"catlog/internal/errors"
)

func TestKindTransportMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      AppError
		kind     Kind
		httpCode int
		code     string
	}{
		{
			name:     "validation maps to bad request",
			err:      NewValidationError("name", "name must not be empty"),
			kind:     KindValidation,
			httpCode: http.StatusBadRequest,
			code:     "VALIDATION_FAILED",
		},
		{
			name:     "not found maps to 404 with resource code",
			err:      NewNotFoundError("cat", "b9f7c3c0-0000-0000-0000-000000000000"),
			kind:     KindNotFound,
			httpCode: http.StatusNotFound,
			code:     "CAT_NOT_FOUND",
		},
		{
			name:     "unauthorized maps to 401",
			err:      NewUnauthorizedError("invalid or expired token"),
			kind:     KindUnauthorized,
			httpCode: http.StatusUnauthorized,
			code:     "UNAUTHORIZED",
		},
		{
			name:     "confirmation required maps to 422",
			err:      ErrConfirmationRequired,
			kind:     KindConfirmationRequired,
			httpCode: http.StatusUnprocessableEntity,
			code:     "CONFIRMATION_REQUIRED",
		},
		{
			name:     "database maps to 500",
			err:      NewDatabaseExecuteError(errors.New("connection refused"), "create cat"),
			kind:     KindDatabase,
			httpCode: http.StatusInternalServerError,
			code:     "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Kind(); got != tt.kind {
				t.Fatalf("Kind() = %s, want %s", got, tt.kind)
			}
			if got := tt.err.HTTPCode(); got != tt.httpCode {
				t.Fatalf("HTTPCode() = %d, want %d", got, tt.httpCode)
			}
			if got := tt.err.ErrorCode(); got != tt.code {
				t.Fatalf("ErrorCode() = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestDatabaseErrorHidesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New(`pq: relation "toilet_events" does not exist`)
	err := NewDatabaseExecuteError(cause, "aggregate usage")

	if err.Message() != "database operation failed" {
		t.Fatalf("Message() = %q, want generic message", err.Message())
	}
	if err.Details() != "aggregate usage" {
		t.Fatalf("Details() = %q, want operation context", err.Details())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected the raw cause to stay reachable for logging")
	}
}

func TestNotFoundCarriesResourceAndID(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("event", "0f2a7e1c-0000-0000-0000-000000000000")

	if err.Message() != "event not found" {
		t.Fatalf("Message() = %q", err.Message())
	}
	if err.Details() != "0f2a7e1c-0000-0000-0000-000000000000" {
		t.Fatalf("Details() = %q, want the missing id", err.Details())
	}
}

func TestFromValidationErrorsReportsFirstViolationOnly(t *testing.T) {
	t.Parallel()

	type registerInput struct {
		Name   string   `json:"name" validate:"required,max=50"`
		Weight *float64 `json:"weight" validate:"omitnil,gt=0"`
	}

	validate := NewValidate()
	negative := -1.5

	err := validate.Struct(&registerInput{Name: "", Weight: &negative})
	if err == nil {
		t.Fatal("expected violations")
	}

	appErr := FromValidationErrors(err)
	if appErr.Kind() != KindValidation {
		t.Fatalf("Kind() = %s, want validation", appErr.Kind())
	}
	if appErr.Details() != "name" {
		t.Fatalf("Details() = %q, want first violated field only", appErr.Details())
	}
	if appErr.Message() != "name must not be empty" {
		t.Fatalf("Message() = %q", appErr.Message())
	}
}

func TestFromValidationErrorsMessages(t *testing.T) {
	t.Parallel()

	type eventInput struct {
		EventType string `json:"event_type" validate:"required,oneof=urine feces"`
		Note      string `json:"note" validate:"max=500"`
		Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
	}

	validate := NewValidate()

	tests := []struct {
		name    string
		input   eventInput
		field   string
		message string
	}{
		{
			name:    "oneof lists allowed values",
			input:   eventInput{EventType: "hairball"},
			field:   "event_type",
			message: "event_type must be one of: urine, feces",
		},
		{
			name:    "string max counts characters",
			input:   eventInput{EventType: "urine", Note: string(make([]byte, 501))},
			field:   "note",
			message: "note must be 500 characters or fewer",
		},
		{
			name:    "numeric max keeps plain bound",
			input:   eventInput{EventType: "urine", Limit: 101},
			field:   "limit",
			message: "limit must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Struct(&tt.input)
			if err == nil {
				t.Fatal("expected violations")
			}

			appErr := FromValidationErrors(err)
			if appErr.Details() != tt.field {
				t.Fatalf("Details() = %q, want %q", appErr.Details(), tt.field)
			}
			if appErr.Message() != tt.message {
				t.Fatalf("Message() = %q, want %q", appErr.Message(), tt.message)
			}
		})
	}
}

func TestFromValidationErrorsFallback(t *testing.T) {
	t.Parallel()

	appErr := FromValidationErrors(errors.New("not a validator error"))

	if appErr.Kind() != KindValidation {
		t.Fatalf("Kind() = %s, want validation", appErr.Kind())
	}
	if appErr.Details() != "unknown" {
		t.Fatalf("Details() = %q, want unknown", appErr.Details())
	}
}
