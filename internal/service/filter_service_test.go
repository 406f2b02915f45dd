package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
)

func TestNewFilterService_Initial(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    models.CategoryFilter
		wantErr bool
	}{
		{name: "empty defaults to all", initial: "", want: models.FilterAll},
		{name: "explicit all", initial: "all", want: models.FilterAll},
		{name: "category", initial: "dessert", want: models.CategoryFilter(models.CategoryDessert)},
		{name: "retired label resets to all", initial: "fastfood", want: models.FilterAll},
		{name: "unknown value", initial: "drinks", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewFilterService(tt.initial, testLogger())
			if tt.wantErr {
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.State().Category)
			assert.Empty(t, svc.State().Search)
		})
	}
}

func TestFilterService_SettersAreIndependent(t *testing.T) {
	svc, err := NewFilterService("", testLogger())
	require.NoError(t, err)

	svc.SetSearchText("Soup")
	require.NoError(t, svc.SetCategoryFilter("starter"))

	state := svc.State()
	assert.Equal(t, models.CategoryFilter(models.CategoryStarter), state.Category)
	assert.Equal(t, "Soup", state.Search)

	svc.SetSearchText("")
	assert.Equal(t, models.CategoryFilter(models.CategoryStarter), svc.State().Category)

	require.NoError(t, svc.SetCategoryFilter("all"))
	assert.Equal(t, models.FilterAll, svc.State().Category)
	assert.Empty(t, svc.State().Search)
}

func TestFilterService_RejectsInvalidCategory(t *testing.T) {
	svc, err := NewFilterService("main", testLogger())
	require.NoError(t, err)
	svc.SetSearchText("burger")

	for _, value := range []string{"fastfood", "drinks", ""} {
		err := svc.SetCategoryFilter(value)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "value %q should be rejected", value)
		assert.Equal(t, []string{"category"}, verr.Fields)
	}

	state := svc.State()
	assert.Equal(t, models.CategoryFilter(models.CategoryMain), state.Category)
	assert.Equal(t, "burger", state.Search)
}

func TestFilterService_SetUpdatesBothFields(t *testing.T) {
	svc, err := NewFilterService("", testLogger())
	require.NoError(t, err)

	category, search := "dessert", "cake"
	require.NoError(t, svc.Set(&category, &search))
	assert.Equal(t, models.FilterState{Category: models.CategoryFilter(models.CategoryDessert), Search: "cake"}, svc.State())

	// nil keeps the current value
	search = "brownie"
	require.NoError(t, svc.Set(nil, &search))
	assert.Equal(t, models.CategoryFilter(models.CategoryDessert), svc.State().Category)
	assert.Equal(t, "brownie", svc.State().Search)

	category = "all"
	require.NoError(t, svc.Set(&category, nil))
	assert.Equal(t, models.FilterAll, svc.State().Category)
	assert.Equal(t, "brownie", svc.State().Search)
}

func TestFilterService_SetRejectsWithoutChanges(t *testing.T) {
	svc, err := NewFilterService("main", testLogger())
	require.NoError(t, err)
	svc.SetSearchText("burger")

	category, search := "drinks", "cola"
	err = svc.Set(&category, &search)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"category"}, verr.Fields)
	assert.Equal(t, models.FilterState{Category: models.CategoryFilter(models.CategoryMain), Search: "burger"}, svc.State())
}

func TestFilterService_SetIsAtomic(t *testing.T) {
	svc, err := NewFilterService("", testLogger())
	require.NoError(t, err)

	// each write pairs a category with its own search text
	pairs := map[models.CategoryFilter]string{
		models.CategoryFilter(models.CategoryStarter): "soup",
		models.CategoryFilter(models.CategoryMain):    "burger",
	}
	starter, soup := "starter", "soup"
	mains, burger := "main", "burger"
	require.NoError(t, svc.Set(&starter, &soup))

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			if i%2 == 0 {
				_ = svc.Set(&mains, &burger)
			} else {
				_ = svc.Set(&starter, &soup)
			}
		}
	}()

	for i := 0; i < 10000; i++ {
		state := svc.State()
		if pairs[state.Category] != state.Search {
			close(stop)
			wg.Wait()
			t.Fatalf("observed mixed filter state %+v", state)
		}
	}
	close(stop)
	wg.Wait()
}
