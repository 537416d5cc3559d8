package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/database"
	"prospecta/cmd/internal/domain/entity"
	"prospecta/cmd/internal/utils"
	"prospecta/cmd/internal/utils/uid"
	"prospecta/cmd/internal/validators"
)

// Check digits are real, so the cnpj validator accepts them.
const (
	testCNPJ        = "11222333000181"
	testCNPJBanco   = "00000000000191"
	testCNPJVale    = "33000167000101"
	testCNPJBradesco = "60701190000104"
)

// newTestDB opens a unique in-memory database per test name to avoid
// leakage via the shared cache.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	uid.Init(1)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	if err := validate.RegisterValidation("strongpwd", validators.StrongPassword); err != nil {
		t.Fatalf("register strongpwd: %v", err)
	}
	if err := validate.RegisterValidation("cnpj", validators.CNPJ); err != nil {
		t.Fatalf("register cnpj: %v", err)
	}
	return validate
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	now := utils.NowUTC()
	user := &entity.User{
		ID:           uid.Generate(),
		Nome:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedLead(t *testing.T, db *gorm.DB, owner *entity.User, cnpj string) *entity.Lead {
	t.Helper()
	now := utils.NowUTC()
	lead := &entity.Lead{
		ID:          uid.Generate(),
		Cnpj:        cnpj,
		NomeDevedor: "Devedora " + cnpj,
		Status:      entity.StatusAVerificar,
		UserID:      owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.Create(lead).Error; err != nil {
		t.Fatalf("seed lead: %v", err)
	}
	return lead
}

// fakeStorage keeps uploaded objects in memory, keyed by the URL it
// hands out.
type fakeStorage struct {
	objects map[string][]byte
	failPut bool
	failDel bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte) (string, error) {
	if f.failPut {
		return "", errors.New("storage unavailable")
	}
	url := "https://fake.storage/" + key
	f.objects[url] = data
	return url, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	if f.failDel {
		return errors.New("storage unavailable")
	}
	delete(f.objects, url)
	return nil
}
