package command_test

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bizstack/backoffice/internal/user/domain"
	"github.com/bizstack/backoffice/internal/user/repository"
	"github.com/bizstack/backoffice/internal/user/usecase/command"
	"github.com/bizstack/backoffice/pkg/apperrors"
	"github.com/bizstack/backoffice/pkg/auth"
)

func setupUserDB(t *testing.T) domain.UserRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return repository.NewGormUserRepository(db)
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := setupUserDB(t)
	handler := command.NewRegisterUserHandler(repo)

	user, err := handler.Handle(command.RegisterUserCommand{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter22",
		FullName: "Alex Doe",
	})
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if user.Password == "hunter22" {
		t.Error("Password stored in plaintext")
	}
	if !auth.CheckPassword(user.Password, "hunter22") {
		t.Error("Stored hash does not match the password")
	}
	if user.Role != domain.RoleUser {
		t.Errorf("Role = %q, want default %q", user.Role, domain.RoleUser)
	}
	if !user.IsActive {
		t.Error("New user not active")
	}
}

func TestRegister_RejectsDuplicates(t *testing.T) {
	repo := setupUserDB(t)
	handler := command.NewRegisterUserHandler(repo)

	first := command.RegisterUserCommand{Username: "alex", Email: "alex@example.com", Password: "hunter22"}
	if _, err := handler.Handle(first); err != nil {
		t.Fatalf("First registration failed: %v", err)
	}

	cases := []struct {
		name string
		cmd  command.RegisterUserCommand
	}{
		{"same username", command.RegisterUserCommand{Username: "alex", Email: "other@example.com", Password: "hunter22"}},
		{"same email", command.RegisterUserCommand{Username: "sam", Email: "alex@example.com", Password: "hunter22"}},
		{"short password", command.RegisterUserCommand{Username: "kim", Email: "kim@example.com", Password: "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := handler.Handle(tc.cmd)
			apiErr := apperrors.From(err)
			if apiErr == nil || apiErr.Code != apperrors.CodeInvalidContent {
				t.Errorf("Handle error = %v, want INVALID_CONTENT_ERROR", err)
			}
		})
	}
}

// flakyUserRepository simulates a transient store failure on the
// username lookup.
type flakyUserRepository struct {
	domain.UserRepository
}

func (flakyUserRepository) FindByUsername(string) (*domain.User, error) {
	return nil, errors.New("connection reset by peer")
}

func TestRegister_SurfacesLookupFailures(t *testing.T) {
	handler := command.NewRegisterUserHandler(flakyUserRepository{})

	_, err := handler.Handle(command.RegisterUserCommand{
		Username: "alex", Email: "alex@example.com", Password: "hunter22",
	})
	if err == nil {
		t.Fatal("Expected an error when the username lookup fails")
	}
	if apiErr := apperrors.From(err); apiErr != nil {
		t.Errorf("Lookup failure classified as %q, want an unclassified error", apiErr.Code)
	}
}

func TestLogin(t *testing.T) {
	repo := setupUserDB(t)
	register := command.NewRegisterUserHandler(repo)
	login := command.NewLoginUserHandler(repo)

	if _, err := register.Handle(command.RegisterUserCommand{
		Username: "alex", Email: "alex@example.com", Password: "hunter22",
	}); err != nil {
		t.Fatalf("Registration failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		result, err := login.Handle(command.LoginUserCommand{Username: "alex", Password: "hunter22"})
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		claims, err := auth.ValidateToken(result.Token)
		if err != nil {
			t.Fatalf("Issued token does not validate: %v", err)
		}
		if claims.Username != "alex" {
			t.Errorf("Token username = %q, want alex", claims.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := login.Handle(command.LoginUserCommand{Username: "alex", Password: "nope"})
		apiErr := apperrors.From(err)
		if apiErr == nil || apiErr.Code != apperrors.CodeUnauthorized {
			t.Errorf("Handle error = %v, want UNAUTHORIZED_ERROR", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := login.Handle(command.LoginUserCommand{Username: "ghost", Password: "hunter22"})
		apiErr := apperrors.From(err)
		if apiErr == nil || apiErr.Code != apperrors.CodeUnauthorized {
			t.Errorf("Handle error = %v, want UNAUTHORIZED_ERROR", err)
		}
	})

	t.Run("deactivated account", func(t *testing.T) {
		user, err := repo.FindByUsername("alex")
		if err != nil {
			t.Fatalf("FindByUsername failed: %v", err)
		}
		user.IsActive = false
		if err := repo.Update(user); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		_, err = login.Handle(command.LoginUserCommand{Username: "alex", Password: "hunter22"})
		apiErr := apperrors.From(err)
		if apiErr == nil || apiErr.Code != apperrors.CodeUnauthorized {
			t.Errorf("Handle error = %v, want UNAUTHORIZED_ERROR", err)
		}
	})
}
