package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"

	"taskly-be/internal/models"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

func TestRegisterRequestRules(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name  string
		req   models.RegisterRequest
		field string
		want  string
	}{
		{
			name:  "missing username",
			req:   models.RegisterRequest{Email: "a@b.co", Password1: "s3cret-pass", Password2: "s3cret-pass"},
			field: "username",
			want:  "This field is required.",
		},
		{
			name:  "bad username",
			req:   models.RegisterRequest{Username: "ann smith", Email: "a@b.co", Password1: "s3cret-pass", Password2: "s3cret-pass"},
			field: "username",
			want:  "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.",
		},
		{
			name:  "bad email",
			req:   models.RegisterRequest{Username: "ann", Email: "nope", Password1: "s3cret-pass", Password2: "s3cret-pass"},
			field: "email",
			want:  "Enter a valid email address.",
		},
		{
			name:  "short password",
			req:   models.RegisterRequest{Username: "ann", Email: "a@b.co", Password1: "abc", Password2: "abc"},
			field: "password1",
			want:  "Ensure this value has at least 8 characters.",
		},
		{
			name:  "numeric password",
			req:   models.RegisterRequest{Username: "ann", Email: "a@b.co", Password1: "12345678", Password2: "12345678"},
			field: "password1",
			want:  "This password is entirely numeric.",
		},
		{
			name:  "mismatch",
			req:   models.RegisterRequest{Username: "ann", Email: "a@b.co", Password1: "s3cret-pass", Password2: "other-pass"},
			field: "password2",
			want:  "The two password fields didn't match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := FieldErrors(v.Struct(tt.req))
			msgs, ok := fields[tt.field]
			if !ok {
				t.Fatalf("no error for %q, got %v", tt.field, fields)
			}
			if msgs[0] != tt.want {
				t.Errorf("got %q, want %q", msgs[0], tt.want)
			}
		})
	}
}

func TestValidRegisterRequest(t *testing.T) {
	v := newValidator()
	req := models.RegisterRequest{Username: "ann.b+c@d-e_f", Email: "ann@example.com", Password1: "s3cret-pass", Password2: "s3cret-pass"}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestTaskFormRules(t *testing.T) {
	v := newValidator()

	fields := FieldErrors(v.Struct(models.TaskForm{DueDate: "31/12/2024"}))
	if got := fields["title"]; len(got) != 1 || got[0] != "This field is required." {
		t.Errorf("title: got %v", got)
	}
	if got := fields["due_date"]; len(got) != 1 || got[0] != "Enter a valid date." {
		t.Errorf("due_date: got %v", got)
	}

	if err := v.Struct(models.TaskForm{Title: "ok", DueDate: "2024-12-31"}); err != nil {
		t.Errorf("expected valid form, got %v", err)
	}
	if err := v.Struct(models.TaskForm{Title: "ok"}); err != nil {
		t.Errorf("empty due date should be allowed, got %v", err)
	}
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	if got := FieldErrors(errors.New("boom")); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := FieldErrors(nil); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	if err := Setup(); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := Setup(); err != nil {
		t.Fatalf("second Setup failed: %v", err)
	}
}
