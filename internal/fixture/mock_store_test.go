package fixture_test

import (
	"context"
	"database/sql"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/store"
)

// storedUser is a row in the mock user store.
type storedUser struct {
	ID       uuid.UUID
	VerifyID uuid.UUID
	Name     string
	Email    string
	Password string
	Rank     domain.Rank
}

// MockUserStore implements store.UserRegistrar in memory with the same
// email uniqueness the schema enforces. The Fn hooks override behaviour.
type MockUserStore struct {
	mutex sync.RWMutex
	users map[uuid.UUID]storedUser

	RegisterFn      func(ctx context.Context, name, email, hashedPassword string, rank domain.Rank) (domain.Registration, error)
	FindIDByEmailFn func(ctx context.Context, email string) (uuid.UUID, error)
	DeleteByIDFn    func(ctx context.Context, id uuid.UUID) error

	RegisterCalls []string
	DeleteCalls   []uuid.UUID
}

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]storedUser)}
}

func (m *MockUserStore) Register(
	ctx context.Context,
	name, email, hashedPassword string,
	rank domain.Rank,
) (domain.Registration, error) {
	m.mutex.Lock()
	m.RegisterCalls = append(m.RegisterCalls, email)
	m.mutex.Unlock()

	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, name, email, hashedPassword, rank)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return domain.Registration{}, store.ErrEmailExists
		}
	}

	u := storedUser{
		ID:       uuid.New(),
		VerifyID: uuid.New(),
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Rank:     rank,
	}
	m.users[u.ID] = u
	return domain.Registration{UserID: u.ID, VerifyID: u.VerifyID}, nil
}

func (m *MockUserStore) FindIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	if m.FindIDByEmailFn != nil {
		return m.FindIDByEmailFn(ctx, email)
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for id, u := range m.users {
		if u.Email == email {
			return id, nil
		}
	}
	return uuid.Nil, store.ErrUserNotFound
}

func (m *MockUserStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	m.mutex.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mutex.Unlock()

	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.users, id)
	return nil
}

func (m *MockUserStore) WithTx(*sql.Tx) store.UserRegistrar {
	return m
}

// ByEmail returns every stored row with the given email.
func (m *MockUserStore) ByEmail(email string) []storedUser {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var out []storedUser
	for _, u := range m.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out
}
