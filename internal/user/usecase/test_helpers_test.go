package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"desapega-api/internal/model"
	repo "desapega-api/internal/user/repository"
	"desapega-api/pkg/encrypter"
	"desapega-api/pkg/scope"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUserRepo is an in-memory Repository honoring the zero-value-on-miss
// convention and the unique index on email.
type mockUserRepo struct {
	users  map[int64]model.User
	nextID int64

	createErr error
	getErr    error
	updateErr error

	// hideOnGet makes GetOneUser report a miss while keeping the stored
	// rows visible to CreateUser, simulating a concurrent registration
	// landing between the pre-check and the insert.
	hideOnGet bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]model.User{}, nextID: 1}
}

func (m *mockUserRepo) seed(u model.User) model.User {
	if u.ID == 0 {
		u.ID = m.nextID
		m.nextID++
	} else if u.ID >= m.nextID {
		m.nextID = u.ID + 1
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users[u.ID] = u
	return u
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	if m.createErr != nil {
		return model.User{}, m.createErr
	}
	for _, u := range m.users {
		if u.Email == opt.Email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	return m.seed(model.User{
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		Profile:      opt.Profile,
	}), nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if m.getErr != nil {
		return model.User{}, m.getErr
	}
	if m.hideOnGet {
		return model.User{}, nil
	}
	for _, u := range m.users {
		if opt.ID != 0 && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != opt.Email {
			continue
		}
		if opt.ID == 0 && opt.Email == "" {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

func (m *mockUserRepo) UpdateUserPassword(ctx context.Context, id int64, passwordHash string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	m.users[id] = u
	return nil
}

// fakeEncrypter makes hashes deterministic and inspectable in tests.
type fakeEncrypter struct{}

func (fakeEncrypter) HashPassword(plain string) (string, error) {
	return "hash:" + plain, nil
}

func (fakeEncrypter) ComparePassword(hash, plain string) error {
	if hash != "hash:"+plain {
		return encrypter.ErrMismatch
	}
	return nil
}

// fakeTokenManager records issued identities instead of signing real tokens.
type fakeTokenManager struct {
	issueErr error
}

func (f *fakeTokenManager) Issue(userID int64, email, profile string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}

func (f *fakeTokenManager) Verify(token string) (*scope.Claims, error) {
	return nil, errors.New("not used in usecase tests")
}

func hasViolation(t interface{ Fatalf(string, ...any) }, err error, field string) {
	if err == nil || !strings.Contains(err.Error(), field+":") {
		t.Fatalf("expected violation on %q, got %v", field, err)
	}
}
