package unit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID map[uuid.UUID]*Unit
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]*Unit)}
}

func (f *fakeRepo) Create(u *Unit) error {
	u.ID = uuid.New()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeRepo) FindByID(id uuid.UUID) (*Unit, error) {
	return f.byID[id], nil
}

func (f *fakeRepo) FindAllByTermID(termID uuid.UUID) ([]Unit, error) {
	var out []Unit
	for _, u := range f.byID {
		if u.TermID == termID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(u *Unit) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeRepo) Delete(id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeTermSource struct {
	known map[uuid.UUID]bool
}

func (f *fakeTermSource) Exists(id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func testService() (Service, *fakeRepo, uuid.UUID) {
	repo := newFakeRepo()
	termID := uuid.New()
	terms := &fakeTermSource{known: map[uuid.UUID]bool{termID: true}}
	return NewService(repo, terms), repo, termID
}

func TestCreateUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		svc, _, termID := testService()
		grade := 1.7

		u, err := svc.Create(ctx, termID.String(), CreateUnitDTO{
			Name:    "Mathematik 1",
			Credits: 6,
			Grade:   &grade,
		})
		require.NoError(t, err)
		assert.Equal(t, termID, u.TermID)
		assert.Equal(t, 6, u.Credits)
		require.NotNil(t, u.Grade)
		assert.Equal(t, 1.7, *u.Grade)
	})

	t.Run("UngradedIsAllowed", func(t *testing.T) {
		svc, _, termID := testService()

		u, err := svc.Create(ctx, termID.String(), CreateUnitDTO{Name: "Informatik 1", Credits: 6})
		require.NoError(t, err)
		assert.Nil(t, u.Grade)
	})

	t.Run("CreditsMustBePositive", func(t *testing.T) {
		svc, _, termID := testService()

		for _, credits := range []int{0, -3} {
			_, err := svc.Create(ctx, termID.String(), CreateUnitDTO{Name: "Mathematik 1", Credits: credits})
			assert.ErrorIs(t, err, ErrInvalidCredits)
		}
	})

	t.Run("GradeMustBeOnScale", func(t *testing.T) {
		svc, _, termID := testService()

		for _, grade := range []float64{0.9, 6.1, -1} {
			g := grade
			_, err := svc.Create(ctx, termID.String(), CreateUnitDTO{Name: "Mathematik 1", Credits: 6, Grade: &g})
			assert.ErrorIs(t, err, ErrGradeOutOfScale)
		}
	})

	t.Run("UnknownTerm", func(t *testing.T) {
		svc, _, _ := testService()

		_, err := svc.Create(ctx, uuid.NewString(), CreateUnitDTO{Name: "Mathematik 1", Credits: 6})
		assert.ErrorIs(t, err, ErrTermNotFound)
	})

	t.Run("InvalidTermID", func(t *testing.T) {
		svc, _, _ := testService()

		_, err := svc.Create(ctx, "nope", CreateUnitDTO{Name: "Mathematik 1", Credits: 6})
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestUpdateUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("SetsAndClearsGrade", func(t *testing.T) {
		svc, _, termID := testService()
		u, err := svc.Create(ctx, termID.String(), CreateUnitDTO{Name: "Mathematik 1", Credits: 6})
		require.NoError(t, err)

		grade := 2.3
		updated, err := svc.Update(ctx, u.ID.String(), UpdateUnitDTO{Grade: &grade})
		require.NoError(t, err)
		require.NotNil(t, updated.Grade)
		assert.Equal(t, 2.3, *updated.Grade)

		updated, err = svc.Update(ctx, u.ID.String(), UpdateUnitDTO{ClearGrade: true})
		require.NoError(t, err)
		assert.Nil(t, updated.Grade)
	})

	t.Run("RejectsZeroCredits", func(t *testing.T) {
		svc, _, termID := testService()
		u, err := svc.Create(ctx, termID.String(), CreateUnitDTO{Name: "Mathematik 1", Credits: 6})
		require.NoError(t, err)

		zero := 0
		_, err = svc.Update(ctx, u.ID.String(), UpdateUnitDTO{Credits: &zero})
		assert.ErrorIs(t, err, ErrInvalidCredits)
	})

	t.Run("UnknownUnit", func(t *testing.T) {
		svc, _, _ := testService()

		_, err := svc.Update(ctx, uuid.NewString(), UpdateUnitDTO{})
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})
}

func TestDeleteUnit(t *testing.T) {
	ctx := context.Background()

	svc, repo, termID := testService()
	u, err := svc.Create(ctx, termID.String(), CreateUnitDTO{Name: "Mathematik 1", Credits: 6})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID.String()))
	assert.Empty(t, repo.byID)

	err = svc.Delete(ctx, u.ID.String())
	assert.ErrorIs(t, err, ErrUnitNotFound)
}
