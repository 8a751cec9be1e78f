package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/recipebox/recipebox-backend/internal/domain"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

type fakeIngredientCatalog struct {
	byID map[uuid.UUID]*types.Ingredient
}

func (f *fakeIngredientCatalog) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Ingredient, error) {
	var out []*types.Ingredient
	for _, id := range ids {
		if ingredient, ok := f.byID[id]; ok {
			out = append(out, ingredient)
		}
	}
	return out, nil
}

type fakeTagCatalog struct {
	byID map[uuid.UUID]*types.Tag
}

func (f *fakeTagCatalog) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Tag, error) {
	var out []*types.Tag
	for _, id := range ids {
		if tag, ok := f.byID[id]; ok {
			out = append(out, tag)
		}
	}
	return out, nil
}

type validatorFixture struct {
	validator    RecipeValidator
	flourID      uuid.UUID
	sugarID      uuid.UUID
	breakfastTag uuid.UUID
	dinnerTag    uuid.UUID
}

func newValidatorFixture() *validatorFixture {
	f := &validatorFixture{
		flourID:      uuid.New(),
		sugarID:      uuid.New(),
		breakfastTag: uuid.New(),
		dinnerTag:    uuid.New(),
	}
	ingredients := &fakeIngredientCatalog{byID: map[uuid.UUID]*types.Ingredient{
		f.flourID: {ID: f.flourID, Name: "flour", MeasurementUnit: "g"},
		f.sugarID: {ID: f.sugarID, Name: "sugar", MeasurementUnit: "g"},
	}}
	tags := &fakeTagCatalog{byID: map[uuid.UUID]*types.Tag{
		f.breakfastTag: {ID: f.breakfastTag, Name: "breakfast", Slug: "breakfast"},
		f.dinnerTag:    {ID: f.dinnerTag, Name: "dinner", Slug: "dinner"},
	}}
	f.validator = NewRecipeValidator(logger.Nop(), ingredients, tags)
	return f
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func (f *validatorFixture) validPayload() RecipePayload {
	return RecipePayload{
		Name:        strPtr("Pancakes"),
		Text:        strPtr("Mix and fry."),
		CookingTime: intPtr(20),
		Ingredients: []IngredientAmount{
			{ID: f.flourID, Amount: 300},
			{ID: f.sugarID, Amount: 50},
		},
		TagIDs: []uuid.UUID{f.breakfastTag},
	}
}

func fieldMessages(t *testing.T, err error, field string) []string {
	t.Helper()
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected *apperr.ValidationError, got %T: %v", err, err)
	}
	return ve.Fields[field]
}

func TestRecipeValidator_AcceptsValidPayload(t *testing.T) {
	f := newValidatorFixture()
	payload := f.validPayload()
	payload.Name = strPtr("  Pancakes  ")

	out, err := f.validator.Validate(context.Background(), payload, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name == nil || *out.Name != "Pancakes" {
		t.Fatalf("expected trimmed name %q, got %v", "Pancakes", out.Name)
	}
	if out.CookingTime == nil || *out.CookingTime != 20 {
		t.Fatalf("expected cooking time 20, got %v", out.CookingTime)
	}
	if len(out.Ingredients) != 2 {
		t.Fatalf("expected 2 resolved ingredients, got %d", len(out.Ingredients))
	}
	if out.Ingredients[0].Ingredient.Name != "flour" || out.Ingredients[0].Amount != 300 {
		t.Fatalf("unexpected first line: %+v", out.Ingredients[0])
	}
	if len(out.TagIDs) != 1 || out.TagIDs[0] != f.breakfastTag {
		t.Fatalf("unexpected tags: %v", out.TagIDs)
	}
}

func TestRecipeValidator_RequiresAllFieldsOnFullValidate(t *testing.T) {
	f := newValidatorFixture()

	_, err := f.validator.Validate(context.Background(), RecipePayload{}, false)
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "cooking_time", "ingredients", "tags"} {
		if len(ve.Fields[field]) == 0 {
			t.Fatalf("expected an error under %q, got fields %v", field, ve.Fields)
		}
	}
}

func TestRecipeValidator_PartialSkipsAbsentFields(t *testing.T) {
	f := newValidatorFixture()
	payload := RecipePayload{Name: strPtr("New name")}

	out, err := f.validator.Validate(context.Background(), payload, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name == nil || *out.Name != "New name" {
		t.Fatalf("expected name set, got %v", out.Name)
	}
	if out.CookingTime != nil || out.Ingredients != nil || out.TagIDs != nil {
		t.Fatalf("expected absent fields to stay unset: %+v", out)
	}
}

func TestRecipeValidator_NameLength(t *testing.T) {
	f := newValidatorFixture()

	cases := []struct {
		name  string
		value string
		valid bool
	}{
		{"four chars passes", "abcd", true},
		{"three chars fails", "abc", false},
		{"whitespace does not count", "  abc  ", false},
		{"trimmed four chars passes", "  abcd  ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := f.validPayload()
			payload.Name = strPtr(tc.value)
			_, err := f.validator.Validate(context.Background(), payload, false)
			if tc.valid && err != nil {
				t.Fatalf("expected %q to pass, got %v", tc.value, err)
			}
			if !tc.valid {
				msgs := fieldMessages(t, err, "name")
				if len(msgs) == 0 {
					t.Fatalf("expected a name error for %q", tc.value)
				}
			}
		})
	}
}

func TestRecipeValidator_CookingTimeBounds(t *testing.T) {
	f := newValidatorFixture()

	cases := []struct {
		value int
		valid bool
	}{
		{1, true},
		{300, true},
		{0, false},
		{301, false},
		{-5, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.value), func(t *testing.T) {
			payload := f.validPayload()
			payload.CookingTime = intPtr(tc.value)
			_, err := f.validator.Validate(context.Background(), payload, false)
			if tc.valid {
				if err != nil {
					t.Fatalf("expected %d to pass, got %v", tc.value, err)
				}
				return
			}
			msgs := fieldMessages(t, err, "cooking_time")
			if len(msgs) != 1 {
				t.Fatalf("expected one cooking_time error, got %v", msgs)
			}
			if !strings.Contains(msgs[0], "between 1 and 300") {
				t.Fatalf("expected range in message, got %q", msgs[0])
			}
		})
	}
}

func TestRecipeValidator_RejectsDuplicateIngredients(t *testing.T) {
	f := newValidatorFixture()
	payload := f.validPayload()
	payload.Ingredients = []IngredientAmount{
		{ID: f.flourID, Amount: 100},
		{ID: f.flourID, Amount: 200},
	}

	_, err := f.validator.Validate(context.Background(), payload, false)
	msgs := fieldMessages(t, err, "ingredients")
	if len(msgs) != 1 || msgs[0] != "ingredients must be unique" {
		t.Fatalf("expected uniqueness error, got %v", msgs)
	}
}

func TestRecipeValidator_AmountBounds(t *testing.T) {
	f := newValidatorFixture()

	cases := []struct {
		value int
		valid bool
	}{
		{1, true},
		{5000, true},
		{0, false},
		{5001, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.value), func(t *testing.T) {
			payload := f.validPayload()
			payload.Ingredients = []IngredientAmount{{ID: f.flourID, Amount: tc.value}}
			_, err := f.validator.Validate(context.Background(), payload, false)
			if tc.valid {
				if err != nil {
					t.Fatalf("expected amount %d to pass, got %v", tc.value, err)
				}
				return
			}
			msgs := fieldMessages(t, err, "amount")
			if len(msgs) == 0 {
				t.Fatalf("expected an amount error for %d", tc.value)
			}
		})
	}
}

func TestRecipeValidator_RejectsUnknownIngredient(t *testing.T) {
	f := newValidatorFixture()
	unknown := uuid.New()
	payload := f.validPayload()
	payload.Ingredients = []IngredientAmount{{ID: unknown, Amount: 10}}

	_, err := f.validator.Validate(context.Background(), payload, false)
	msgs := fieldMessages(t, err, "ingredients")
	if len(msgs) != 1 || !strings.Contains(msgs[0], unknown.String()) {
		t.Fatalf("expected unknown-id error naming %s, got %v", unknown, msgs)
	}
}

func TestRecipeValidator_TagRules(t *testing.T) {
	f := newValidatorFixture()

	t.Run("empty list fails", func(t *testing.T) {
		payload := f.validPayload()
		payload.TagIDs = []uuid.UUID{}
		_, err := f.validator.Validate(context.Background(), payload, false)
		if len(fieldMessages(t, err, "tags")) == 0 {
			t.Fatal("expected a tags error")
		}
	})

	t.Run("duplicates fail", func(t *testing.T) {
		payload := f.validPayload()
		payload.TagIDs = []uuid.UUID{f.breakfastTag, f.breakfastTag}
		_, err := f.validator.Validate(context.Background(), payload, false)
		msgs := fieldMessages(t, err, "tags")
		if len(msgs) != 1 || msgs[0] != "tags must be unique" {
			t.Fatalf("expected uniqueness error, got %v", msgs)
		}
	})

	t.Run("unknown id fails", func(t *testing.T) {
		unknown := uuid.New()
		payload := f.validPayload()
		payload.TagIDs = []uuid.UUID{unknown}
		_, err := f.validator.Validate(context.Background(), payload, false)
		msgs := fieldMessages(t, err, "tags")
		if len(msgs) != 1 || !strings.Contains(msgs[0], unknown.String()) {
			t.Fatalf("expected unknown-id error, got %v", msgs)
		}
	})
}

func TestRecipeValidator_CollectsAllFailuresAtOnce(t *testing.T) {
	f := newValidatorFixture()
	payload := RecipePayload{
		Name:        strPtr("ab"),
		CookingTime: intPtr(0),
		Ingredients: []IngredientAmount{},
		TagIDs:      []uuid.UUID{},
	}

	_, err := f.validator.Validate(context.Background(), payload, false)
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "cooking_time", "ingredients", "tags"} {
		if len(ve.Fields[field]) == 0 {
			t.Fatalf("expected error under %q, got %v", field, ve.Fields)
		}
	}
}
