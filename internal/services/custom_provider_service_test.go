package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagestudio/internal/catalog"
	"imagestudio/internal/kv"
	"imagestudio/internal/models"
	"imagestudio/internal/services"
)

func newCustomProviderService(t *testing.T) (services.CustomProviderService, *kv.MemoryStore) {
	t.Helper()
	table, err := catalog.DefaultTable()
	require.NoError(t, err)
	store := kv.NewMemoryStore(nil)
	svc := services.NewCustomProviderService(store, table)
	svc.Startup(context.Background())
	return svc, store
}

func TestCustomProviderService_UpsertAssignsID(t *testing.T) {
	svc, _ := newCustomProviderService(t)

	saved, err := svc.Upsert(models.CustomProvider{
		Name: " Local Forge ",
		Models: models.CustomModelSet{Generate: []models.CustomModel{
			{ID: "sd15", Name: "SD 1.5", Steps: &models.RangeSpec{Range: [2]float64{1, 50}, Default: 20}},
		}},
	})
	require.NoError(t, err)
	_, err = uuid.Parse(saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Local Forge", saved.Name)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved.ID, list[0].ID)
}

func TestCustomProviderService_UpsertReplaces(t *testing.T) {
	svc, _ := newCustomProviderService(t)

	_, err := svc.Upsert(models.CustomProvider{ID: "forge", Name: "Forge"})
	require.NoError(t, err)
	_, err = svc.Upsert(models.CustomProvider{ID: "forge", Name: "Forge 2"})
	require.NoError(t, err)

	got, err := svc.Get("forge")
	require.NoError(t, err)
	assert.Equal(t, "Forge 2", got.Name)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCustomProviderService_UpsertValidation(t *testing.T) {
	svc, _ := newCustomProviderService(t)

	cases := map[string]models.CustomProvider{
		"missing name":  {ID: "a"},
		"colon in id":   {ID: "a:b", Name: "A"},
		"reserved id":   {ID: "huggingface", Name: "HF"},
		"duplicate ids": {ID: "a", Name: "A", Models: models.CustomModelSet{Generate: []models.CustomModel{{ID: "m", Name: "M"}, {ID: "m", Name: "M2"}}}},
		"model no id":   {ID: "a", Name: "A", Models: models.CustomModelSet{Generate: []models.CustomModel{{Name: "M"}}}},
		"model no name": {ID: "a", Name: "A", Models: models.CustomModelSet{Generate: []models.CustomModel{{ID: "m"}}}},
		"inverted":      {ID: "a", Name: "A", Models: models.CustomModelSet{Generate: []models.CustomModel{{ID: "m", Name: "M", Steps: &models.RangeSpec{Range: [2]float64{9, 1}, Default: 5}}}}},
		"default out":   {ID: "a", Name: "A", Models: models.CustomModelSet{Generate: []models.CustomModel{{ID: "m", Name: "M", Guidance: &models.RangeSpec{Range: [2]float64{1, 5}, Default: 7}}}}},
	}
	for name, p := range cases {
		_, err := svc.Upsert(p)
		assert.Error(t, err, name)
	}

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCustomProviderService_RemoveNotifiesStore(t *testing.T) {
	svc, store := newCustomProviderService(t)
	_, err := svc.Upsert(models.CustomProvider{ID: "forge", Name: "Forge"})
	require.NoError(t, err)

	var changes []kv.Change
	store.Subscribe(func(c kv.Change) { changes = append(changes, c) })

	require.NoError(t, svc.Remove("forge"))
	assert.Equal(t, []kv.Change{{Key: kv.KeyCustomProviders}}, changes)

	assert.Error(t, svc.Remove("forge"))
	_, err = svc.Get("forge")
	assert.Error(t, err)
}
