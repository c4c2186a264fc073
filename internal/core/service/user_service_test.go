package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/recordhub/records-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[int64]domain.User
	createErr error // if set, Create returns this error
	listErr   error
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	r := &stubUserRepo{byID: make(map[int64]domain.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byID[u.ID]; ok {
		return domain.ErrDuplicateKey
	}
	r.byID[u.ID] = *u
	return nil
}

// Update mirrors "UPDATE ... SET id = new WHERE id = old".
func (r *stubUserRepo) Update(_ context.Context, id int64, u *domain.User) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	if _, taken := r.byID[u.ID]; taken && u.ID != id {
		return domain.ErrDuplicateKey
	}
	delete(r.byID, id)
	r.byID[u.ID] = *u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func sampleUser(id int64) domain.User {
	return domain.User{
		ID:        id,
		FirstName: "Анна",
		LastName:  "Смирнова",
		Age:       30,
		Email:     "anna@example.com",
		Role:      "executor",
		Phone:     "+7 900 000 00 00",
	}
}

func assertRecordError(t *testing.T, err error, resource domain.Resource, id int64, kind error) {
	t.Helper()
	var re *domain.RecordError
	if !errors.As(err, &re) {
		t.Fatalf("expected *domain.RecordError, got %T (%v)", err, err)
	}
	if re.Resource != resource {
		t.Fatalf("expected resource %s, got %s", resource, re.Resource)
	}
	if re.ID != id {
		t.Fatalf("expected id %d, got %d", id, re.ID)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestUserService_CreateAndGet(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	if err := svc.CreateUser(context.Background(), sampleUser(1)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != sampleUser(1) {
		t.Fatalf("expected %+v, got %+v", sampleUser(1), *got)
	}
}

func TestUserService_CreateDuplicate(t *testing.T) {
	repo := newStubUserRepo(sampleUser(1))
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	err := svc.CreateUser(context.Background(), sampleUser(1))
	assertRecordError(t, err, domain.ResourceUser, 1, domain.ErrDuplicateKey)
}

func TestUserService_CreateStoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.createErr = errors.New("disk full")
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	err := svc.CreateUser(context.Background(), sampleUser(1))
	if err == nil || errors.Is(err, domain.ErrDuplicateKey) || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected plain store failure, got %v", err)
	}
	if !errors.Is(err, repo.createErr) {
		t.Fatalf("expected cause to be preserved, got %v", err)
	}
}

func TestUserService_GetMissing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), domain.IDPolicyReassign, discardLogger)

	_, err := svc.GetUser(context.Background(), 42)
	assertRecordError(t, err, domain.ResourceUser, 42, domain.ErrNotFound)
}

func TestUserService_ListStoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.listErr = errors.New("connection reset")
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	if _, err := svc.ListUsers(context.Background()); !errors.Is(err, repo.listErr) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestUserService_Update_ReassignMovesRecord(t *testing.T) {
	repo := newStubUserRepo(sampleUser(5))
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	body := sampleUser(6)
	body.FirstName = "Борис"
	if err := svc.UpdateUser(context.Background(), 5, body); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := svc.GetUser(context.Background(), 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected old id to be gone, got %v", err)
	}
	got, err := svc.GetUser(context.Background(), 6)
	if err != nil {
		t.Fatalf("get new id: %v", err)
	}
	if got.FirstName != "Борис" {
		t.Fatalf("expected replaced first_name, got %q", got.FirstName)
	}
}

func TestUserService_Update_ReassignCollision(t *testing.T) {
	repo := newStubUserRepo(sampleUser(5), sampleUser(6))
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	err := svc.UpdateUser(context.Background(), 5, sampleUser(6))
	assertRecordError(t, err, domain.ResourceUser, 6, domain.ErrDuplicateKey)
}

func TestUserService_Update_Preserve(t *testing.T) {
	repo := newStubUserRepo(sampleUser(5))
	svc := NewUserService(repo, domain.IDPolicyPreserve, discardLogger)

	if err := svc.UpdateUser(context.Background(), 5, sampleUser(6)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.GetUser(context.Background(), 5); err != nil {
		t.Fatalf("expected record to stay at 5, got %v", err)
	}
	if _, ok := repo.byID[6]; ok {
		t.Fatalf("record must not be moved under preserve policy")
	}
}

func TestUserService_Update_Reject(t *testing.T) {
	repo := newStubUserRepo(sampleUser(5))
	svc := NewUserService(repo, domain.IDPolicyReject, discardLogger)

	err := svc.UpdateUser(context.Background(), 5, sampleUser(6))
	if !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("expected malformed input, got %v", err)
	}
	if _, ok := repo.byID[5]; !ok {
		t.Fatalf("record must be untouched after rejected update")
	}
}

func TestUserService_Update_Missing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), domain.IDPolicyReassign, discardLogger)

	err := svc.UpdateUser(context.Background(), 7, sampleUser(7))
	assertRecordError(t, err, domain.ResourceUser, 7, domain.ErrNotFound)
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo(sampleUser(3))
	svc := NewUserService(repo, domain.IDPolicyReassign, discardLogger)

	if err := svc.DeleteUser(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err := svc.DeleteUser(context.Background(), 3)
	assertRecordError(t, err, domain.ResourceUser, 3, domain.ErrNotFound)
}
