package animals

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"animal-shelter/internal/platform/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Animal
	types map[string]AnimalType
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}, types: map[string]AnimalType{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return apperror.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, apperror.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f Filter, limit, offset int) ([]Animal, int, error) {
	all := make([]Animal, 0)
	for _, a := range r.byID {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.TypeID != "" && a.TypeID != f.TypeID {
			continue
		}
		if f.Gender != "" && a.Gender != f.Gender {
			continue
		}
		if f.Age != nil && a.Age != *f.Age {
			continue
		}
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	total := len(all)
	if offset >= total {
		return []Animal{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *testRepo) CountByStatus(ctx context.Context) (map[Status]int, error) {
	out := map[Status]int{}
	for _, a := range r.byID {
		out[a.Status]++
	}
	return out, nil
}

func (r *testRepo) SetStatus(ctx context.Context, id string, status Status, at time.Time) error {
	a, ok := r.byID[id]
	if !ok {
		return apperror.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = at
	r.byID[id] = a
	return nil
}

func (r *testRepo) CreateType(ctx context.Context, t AnimalType) error {
	r.types[t.ID] = t
	return nil
}

func (r *testRepo) DeleteType(ctx context.Context, id string) error {
	for _, a := range r.byID {
		if a.TypeID == id {
			return apperror.ErrInUse
		}
	}
	delete(r.types, id)
	return nil
}

func (r *testRepo) GetType(ctx context.Context, id string) (AnimalType, error) {
	t, ok := r.types[id]
	if !ok {
		return AnimalType{}, apperror.ErrNotFound
	}
	return t, nil
}

func (r *testRepo) GetTypeByName(ctx context.Context, name string) (AnimalType, error) {
	for _, t := range r.types {
		if t.Name == name {
			return t, nil
		}
	}
	return AnimalType{}, apperror.ErrNotFound
}

func (r *testRepo) ListTypes(ctx context.Context) ([]AnimalType, error) {
	out := make([]AnimalType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *testRepo, AnimalType) {
	t.Helper()
	repo := newTestRepo()
	svc := NewService(repo, repo, 2)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	dog, err := svc.CreateType(context.Background(), "dog")
	require.NoError(t, err)
	return svc, repo, dog
}

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ae *apperror.Error
	require.True(t, errors.As(err, &ae), "expected *apperror.Error, got %v", err)
	return ae.Field
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	svc, _, dog := newTestService(t)

	a, err := svc.Create(context.Background(), CreateInput{Name: " Rex ", Age: 3, TypeID: dog.ID, Description: "<b>friendly</b>"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "Rex", a.Name)
	assert.Equal(t, GenderUnknown, a.Gender)
	assert.Equal(t, StatusAvailable, a.Status)
	assert.Equal(t, "friendly", a.Description)
	assert.Equal(t, svc.now(), a.AdmissionDate)
}

func TestService_Create_RejectsNegativeAge(t *testing.T) {
	svc, repo, dog := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Age: -1, TypeID: dog.ID})
	require.ErrorIs(t, err, apperror.ErrInvalidEntity)
	assert.Equal(t, "age", fieldOf(t, err))
	assert.Contains(t, err.Error(), "Age cannot be negative.")
	assert.Empty(t, repo.byID)
}

func TestService_Create_RejectsEmptyName(t *testing.T) {
	svc, _, dog := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{Name: "   ", Age: 2, TypeID: dog.ID})
	require.ErrorIs(t, err, apperror.ErrInvalidEntity)
	assert.Equal(t, "name", fieldOf(t, err))
	assert.Contains(t, err.Error(), "Name cannot be empty.")
}

func TestService_Create_UnknownType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateInput{Name: "Rex", Age: 2, TypeID: "nope"})
	require.ErrorIs(t, err, apperror.ErrInvalidEntity)
	assert.Equal(t, "type_id", fieldOf(t, err))
}

func TestService_Update_ValidatesAndKeepsAdmissionDate(t *testing.T) {
	svc, repo, dog := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "Rex", Age: 3, TypeID: dog.ID})
	require.NoError(t, err)
	admitted := a.AdmissionDate

	later := admitted.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }

	neg := -4
	_, err = svc.Update(ctx, a.ID, UpdateInput{Age: &neg})
	require.ErrorIs(t, err, apperror.ErrInvalidEntity)
	assert.Equal(t, 3, repo.byID[a.ID].Age)

	name := "Rexy"
	updated, err := svc.Update(ctx, a.ID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Rexy", updated.Name)
	assert.Equal(t, admitted, updated.AdmissionDate)
	assert.Equal(t, later, updated.UpdatedAt)
}

func TestService_Update_SanitizesDescription(t *testing.T) {
	svc, _, dog := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "Rex", Age: 3, TypeID: dog.ID, Description: "calm"})
	require.NoError(t, err)

	// sin Description en el PATCH no se toca
	name := "Rexy"
	updated, err := svc.Update(ctx, a.ID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "calm", updated.Description)

	desc := "&lt;script&gt;alert(1)&lt;/script&gt;likes <b>kids</b>"
	updated, err = svc.Update(ctx, a.ID, UpdateInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "likes kids", updated.Description)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	name := "x"
	_, err := svc.Update(context.Background(), "missing", UpdateInput{Name: &name})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestService_ListAvailable_FiltersAndPaginates(t *testing.T) {
	svc, _, dog := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateType(ctx, "cat")
	require.NoError(t, err)

	for _, in := range []CreateInput{
		{Name: "Bella", Age: 2, TypeID: dog.ID, Gender: GenderGirl},
		{Name: "Archie", Age: 2, TypeID: dog.ID, Gender: GenderBoy},
		{Name: "Coco", Age: 5, TypeID: dog.ID, Gender: GenderGirl},
		{Name: "Milo", Age: 1, TypeID: cat.ID, Gender: GenderBoy},
		{Name: "Zeus", Age: 2, TypeID: dog.ID, Status: StatusAdopted},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := svc.ListAvailable(ctx, ListQuery{TypeName: "dog"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Archie", page.Items[0].Name)
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrev())

	page, err = svc.ListAvailable(ctx, ListQuery{TypeName: "dog", Page: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Coco", page.Items[0].Name)

	two := 2
	page, err = svc.ListAvailable(ctx, ListQuery{Age: &two, Gender: GenderGirl})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Bella", page.Items[0].Name)

	_, err = svc.ListAvailable(ctx, ListQuery{Page: 9})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	page, err = svc.ListAvailable(ctx, ListQuery{TypeName: "parrot"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestService_ListAvailable_IncludesEveryType(t *testing.T) {
	svc, _, dog := newTestService(t)
	ctx := context.Background()

	cat, err := svc.CreateType(ctx, "cat")
	require.NoError(t, err)
	others, err := svc.CreateType(ctx, "others")
	require.NoError(t, err)

	for _, in := range []CreateInput{
		{Name: "Bella", Age: 2, TypeID: dog.ID},
		{Name: "Milo", Age: 1, TypeID: cat.ID},
		{Name: "Kesha", Age: 4, TypeID: others.ID},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := svc.ListAvailable(ctx, ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)

	page, err = svc.ListAvailable(ctx, ListQuery{TypeName: "others"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Kesha", page.Items[0].Name)
}

func TestService_ListAvailable_EmptyFirstPage(t *testing.T) {
	svc, _, _ := newTestService(t)

	page, err := svc.ListAvailable(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Empty(t, page.Items)
}

func TestService_Stats(t *testing.T) {
	svc, _, dog := newTestService(t)
	ctx := context.Background()

	for _, st := range []Status{StatusAvailable, StatusAvailable, StatusAdopted, StatusPending} {
		_, err := svc.Create(ctx, CreateInput{Name: "a", Age: 1, TypeID: dog.ID, Status: st})
		require.NoError(t, err)
	}

	st, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 4, Adopted: 1, Available: 2}, st)
}

func TestService_Types(t *testing.T) {
	svc, _, dog := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateType(ctx, "DOG")
	assert.ErrorIs(t, err, apperror.ErrInvalidEntity)

	require.NoError(t, svc.EnsureDefaultTypes(ctx))
	require.NoError(t, svc.EnsureDefaultTypes(ctx))
	types, err := svc.ListTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 3)

	_, err = svc.Create(ctx, CreateInput{Name: "Rex", Age: 1, TypeID: dog.ID})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.DeleteType(ctx, dog.ID), apperror.ErrInUse)
	assert.ErrorIs(t, svc.DeleteType(ctx, "missing"), apperror.ErrNotFound)
}
