package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeHasher prefixes the plaintext instead of hashing; good enough to
// observe that services never store plaintext as-is.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}

// fakeUserRepo is an in-memory UserRepository enforcing username uniqueness.
type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}

	user.ID = uuid.New()
	stored := *user
	r.users[user.ID] = &stored

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *user

	return &found, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			found := *user

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.users)
}

// fakeRecipeRepo is an in-memory RecipeRepository.
type fakeRecipeRepo struct {
	mu        sync.Mutex
	recipes   []*entity.Recipe
	createErr error
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{}
}

func (r *fakeRecipeRepo) Create(_ context.Context, recipe *entity.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	recipe.ID = uuid.New()
	stored := *recipe
	r.recipes = append(r.recipes, &stored)

	return nil
}

func (r *fakeRecipeRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var owned []*entity.Recipe
	for _, recipe := range r.recipes {
		if recipe.UserID == userID {
			found := *recipe
			owned = append(owned, &found)
		}
	}

	return owned, nil
}

func (r *fakeRecipeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.recipes)
}

// fakeTxManager hands the services a factory over the in-memory fakes. No
// real transaction semantics are simulated beyond error passthrough.
type fakeTxManager struct {
	userRepo   *fakeUserRepo
	recipeRepo *fakeRecipeRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *fakeTxManager) UserRepo() repository.UserRepository {
	return m.userRepo
}

func (m *fakeTxManager) RecipeRepo() repository.RecipeRepository {
	return m.recipeRepo
}
