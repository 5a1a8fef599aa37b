package adoptions

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/platform/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test store (in-memory, con tx por copia)
// -------------------------

type testRepo struct {
	byID    map[string]Adoption
	animals map[string]animals.Animal
	users   map[string]users.User

	// failSetStatus simula que la escritura del animal falla.
	failSetStatus error
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:    map[string]Adoption{},
		animals: map[string]animals.Animal{},
		users:   map[string]users.User{},
	}
}

func (r *testRepo) clone() *testRepo {
	c := newTestRepo()
	for k, v := range r.byID {
		c.byID[k] = v
	}
	for k, v := range r.animals {
		c.animals[k] = v
	}
	for k, v := range r.users {
		c.users[k] = v
	}
	c.failSetStatus = r.failSetStatus
	return c
}

func (r *testRepo) Create(ctx context.Context, a Adoption) error {
	for _, x := range r.byID {
		if x.AnimalID == a.AnimalID && x.UserID == a.UserID {
			return apperror.ErrConstraintViolation
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Adoption) error {
	if _, ok := r.byID[a.ID]; !ok {
		return apperror.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Adoption, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adoption{}, apperror.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) FindByAnimalAndUser(ctx context.Context, animalID, userID string) (Adoption, error) {
	for _, a := range r.byID {
		if a.AnimalID == animalID && a.UserID == userID {
			return a, nil
		}
	}
	return Adoption{}, apperror.ErrNotFound
}

func (r *testRepo) HasPending(ctx context.Context, animalID, userID, excludeID string) (bool, error) {
	for _, a := range r.byID {
		if a.AnimalID == animalID && a.UserID == userID && a.Status == StatusPending && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string) ([]Adoption, error) {
	out := make([]Adoption, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Adoption, error) {
	out := make([]Adoption, 0)
	for _, a := range r.byID {
		if f.Status == "" || a.Status == f.Status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) SetStatus(ctx context.Context, animalID string, status animals.Status, at time.Time) error {
	if r.failSetStatus != nil {
		return r.failSetStatus
	}
	a, ok := r.animals[animalID]
	if !ok {
		return apperror.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = at
	r.animals[animalID] = a
	return nil
}

func (r *testRepo) Get(ctx context.Context, id string) (animals.Animal, error) {
	a, ok := r.animals[id]
	if !ok {
		return animals.Animal{}, apperror.ErrNotFound
	}
	return a, nil
}

type testUsers struct{ repo *testRepo }

func (u testUsers) GetByID(ctx context.Context, id string) (users.User, error) {
	x, ok := u.repo.users[id]
	if !ok {
		return users.User{}, apperror.ErrNotFound
	}
	return x, nil
}

type testTx struct{ staged *testRepo }

func (t testTx) Adoptions() Repository { return t.staged }
func (t testTx) Animals() AnimalStatusWriter { return t.staged }

type testUoW struct{ repo *testRepo }

func (u testUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	staged := u.repo.clone()
	if err := fn(ctx, testTx{staged: staged}); err != nil {
		return err
	}
	*u.repo = *staged
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	repo.animals["ax"] = animals.Animal{ID: "ax", Name: "Rex", Status: animals.StatusAvailable}
	repo.users["uy"] = users.User{ID: "uy", Username: "yuri", PhoneNumber: "+380933456789"}
	repo.users["nophone"] = users.User{ID: "nophone", Username: "anon"}

	svc := NewService(repo, testUoW{repo: repo}, repo, testUsers{repo: repo}, nil)
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return svc, repo
}

func formMessage(t *testing.T, err error) string {
	t.Helper()
	var ae *apperror.Error
	require.True(t, errors.As(err, &ae), "expected *apperror.Error, got %v", err)
	assert.Empty(t, ae.Field)
	return ae.Message
}

// -------------------------
// Tests
// -------------------------

func TestStatus_AnimalStatusTable(t *testing.T) {
	cases := map[Status]animals.Status{
		StatusPending:  animals.StatusPending,
		StatusApproved: animals.StatusAdopted,
		StatusRejected: animals.StatusAvailable,
	}
	for in, want := range cases {
		got, ok := in.AnimalStatus()
		assert.True(t, ok)
		assert.Equal(t, want, got, string(in))
	}

	_, ok := Status("cancelled").AnimalStatus()
	assert.False(t, ok)
}

func TestService_Lifecycle_SyncsAnimalStatus(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// creada pending => animal pending
	a, err := svc.Request(ctx, "uy", "ax", "I have a garden")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, a.Status)
	assert.Equal(t, animals.StatusPending, repo.animals["ax"].Status)

	// approved => adopted
	a, err = svc.Decide(ctx, a.ID, StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, a.Status)
	assert.Equal(t, animals.StatusAdopted, repo.animals["ax"].Status)

	// rejected => available
	_, err = svc.Decide(ctx, a.ID, StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, animals.StatusAvailable, repo.animals["ax"].Status)
}

func TestService_RecordAdoptionDecision_Idempotent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Request(ctx, "uy", "ax", "")
	require.NoError(t, err)
	a, err = svc.Decide(ctx, a.ID, StatusApproved)
	require.NoError(t, err)

	// alguien toca el animal a mano; re-guardar la adopción lo vuelve a alinear
	x := repo.animals["ax"]
	x.Status = animals.StatusReserved
	repo.animals["ax"] = x

	again, err := svc.RecordAdoptionDecision(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, a.CreatedAt, again.CreatedAt)
	assert.Equal(t, animals.StatusAdopted, repo.animals["ax"].Status)
	assert.Len(t, repo.byID, 1)
}

func TestService_RecordAdoptionDecision_PendingDuplicateExcludesSelf(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Request(ctx, "uy", "ax", "")
	require.NoError(t, err)

	// re-guardar la misma pending no choca consigo misma
	_, err = svc.RecordAdoptionDecision(ctx, a)
	require.NoError(t, err)

	// otra adopción pending para el mismo par sí
	_, err = svc.RecordAdoptionDecision(ctx, Adoption{AnimalID: "ax", UserID: "uy", Status: StatusPending})
	require.ErrorIs(t, err, apperror.ErrInvalidEntity)
	assert.Equal(t, msgPendingExists, formMessage(t, err))
	assert.Len(t, repo.byID, 1)
}

func TestService_RecordAdoptionDecision_RollsBackOnSyncFailure(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Request(ctx, "uy", "ax", "")
	require.NoError(t, err)

	repo.failSetStatus = errors.New("db down")

	_, err = svc.Decide(ctx, a.ID, StatusApproved)
	require.ErrorIs(t, err, apperror.ErrSynchronizationFailure)

	assert.Equal(t, StatusPending, repo.byID[a.ID].Status, "adoption must not be persisted")
	assert.Equal(t, animals.StatusPending, repo.animals["ax"].Status)
}

func TestService_RecordAdoptionDecision_RejectsUnknownStatus(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.RecordAdoptionDecision(context.Background(), Adoption{AnimalID: "ax", UserID: "uy", Status: "maybe"})
	assert.ErrorIs(t, err, apperror.ErrInvalidEntity)
	assert.Empty(t, repo.byID)
}

func TestService_Request_DuplicateAfterAdopted(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	a, err := svc.Request(ctx, "uy", "ax", "")
	require.NoError(t, err)
	_, err = svc.Decide(ctx, a.ID, StatusApproved)
	require.NoError(t, err)

	_, err = svc.Request(ctx, "uy", "ax", "again")
	require.ErrorIs(t, err, apperror.ErrDuplicateRequest)
	assert.Equal(t, msgAlreadyApplied, formMessage(t, err))
	assert.Len(t, repo.byID, 1)
}

func TestService_RecordAdoptionDecision_StoreUniquenessSurfaces(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// otra solicitud (rejected) para el par, creada por fuera del intake
	repo.byID["old"] = Adoption{ID: "old", AnimalID: "ax", UserID: "uy", Status: StatusRejected}

	_, err := svc.RecordAdoptionDecision(ctx, Adoption{AnimalID: "ax", UserID: "uy", Status: StatusApproved})
	assert.ErrorIs(t, err, apperror.ErrConstraintViolation)
	assert.Equal(t, animals.StatusAvailable, repo.animals["ax"].Status)
}

func TestService_Request_CheckOrder(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.Request(ctx, "uy", "missing", "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// sin teléfono
	_, err = svc.Request(ctx, "nophone", "ax", "")
	require.ErrorIs(t, err, apperror.ErrMissingContactInfo)
	assert.Equal(t, msgPhoneRequired, formMessage(t, err))
	assert.Empty(t, repo.byID)
	assert.Equal(t, animals.StatusAvailable, repo.animals["ax"].Status)

	// duplicado se chequea antes que el teléfono
	repo.byID["prev"] = Adoption{ID: "prev", AnimalID: "ax", UserID: "nophone", Status: StatusRejected}
	_, err = svc.Request(ctx, "nophone", "ax", "")
	assert.ErrorIs(t, err, apperror.ErrDuplicateRequest)
}

func TestService_Request_SanitizesNotes(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Request(context.Background(), "uy", "ax", "<b>hello</b>")
	require.NoError(t, err)
	assert.Equal(t, "hello", a.Notes)
}

func TestService_List_InvalidStatusFilter(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), Filter{Status: "nope"})
	assert.ErrorIs(t, err, apperror.ErrInvalidEntity)
}
