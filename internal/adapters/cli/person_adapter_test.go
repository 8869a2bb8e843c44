package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
	"github.com/example/lister/internal/ports/secondary"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func seededPeople() *fakePersonService {
	return &fakePersonService{
		people: []*primary.Person{
			{ID: 1, Name: "Ana", Surname: "Gomez", City: "Lima"},
		},
		nextID: 1,
	}
}

func TestPersonAdapter_Add(t *testing.T) {
	service := seededPeople()
	var out bytes.Buffer
	adapter := NewPersonAdapter(service, &out, FormatText)

	err := adapter.Add(context.Background(), primary.PersonFields{Name: "Luis", Surname: "Perez", City: "Cusco"})
	require.NoError(t, err)

	assert.IsType(t, form.Create[primary.PersonFields]{}, service.lastSubmit)
	newGoldie(t).Assert(t, "person_add", out.Bytes())
}

func TestPersonAdapter_UpdateEditFlow(t *testing.T) {
	service := seededPeople()
	var out bytes.Buffer
	adapter := NewPersonAdapter(service, &out, FormatText)

	err := adapter.Update(context.Background(), 1, func(f *primary.PersonFields) {
		f.City = "Cusco"
	})
	require.NoError(t, err)

	sub, ok := service.lastSubmit.(form.Update[primary.PersonFields])
	require.True(t, ok, "expected an update submission, got %T", service.lastSubmit)
	assert.Equal(t, int64(1), sub.ID)
	assert.Equal(t, primary.PersonFields{Name: "Ana", Surname: "Gomez", City: "Cusco"}, sub.Values)
	assert.Contains(t, out.String(), "✓ Person 1 updated")
	assert.Contains(t, out.String(), "Cusco")
}

func TestPersonAdapter_UpdateMissing(t *testing.T) {
	var out bytes.Buffer
	adapter := NewPersonAdapter(seededPeople(), &out, FormatText)

	err := adapter.Update(context.Background(), 42, func(*primary.PersonFields) {})
	require.Error(t, err)
	assert.True(t, errors.Is(err, secondary.ErrNotFound))
	assert.Empty(t, out.String())
}

func TestPersonAdapter_DeleteIsIdempotent(t *testing.T) {
	service := seededPeople()
	var out bytes.Buffer
	adapter := NewPersonAdapter(service, &out, FormatText)

	require.NoError(t, adapter.Delete(context.Background(), 1))
	require.NoError(t, adapter.Delete(context.Background(), 1))

	assert.Equal(t, "✓ Deleted person 1\nNo people found\n✓ Deleted person 1\nNo people found\n", out.String())
}

func TestPersonAdapter_Show(t *testing.T) {
	var out bytes.Buffer
	adapter := NewPersonAdapter(seededPeople(), &out, FormatText)

	require.NoError(t, adapter.Show(context.Background(), 1))

	assert.Contains(t, out.String(), "Person:   1")
	assert.Contains(t, out.String(), "Apellido: Gomez")
	assert.Contains(t, out.String(), "Ciudad:   Lima")
}

func TestPersonAdapter_ListJSON(t *testing.T) {
	var out bytes.Buffer
	adapter := NewPersonAdapter(seededPeople(), &out, FormatJSON)

	require.NoError(t, adapter.List(context.Background()))

	var got struct {
		Status string `json:"status"`
		Data   struct {
			People []primary.Person `json:"people"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, []primary.Person{{ID: 1, Name: "Ana", Surname: "Gomez", City: "Lima"}}, got.Data.People)
}

func TestPersonAdapter_ListError(t *testing.T) {
	var out bytes.Buffer
	adapter := NewPersonAdapter(&fakePersonService{err: errors.New("disk gone")}, &out, FormatText)

	err := adapter.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list people")
}
