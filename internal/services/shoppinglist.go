package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/data/repos"
	"github.com/recipebox/recipebox-backend/internal/pkg/apperr"
	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
	"github.com/recipebox/recipebox-backend/internal/requestdata"
)

const shoppingListHeader = "Shopping list:"

// ShoppingListService renders the aggregated cart export: every ingredient
// line of every cart recipe collapsed by (name, unit), summed, and listed
// alphabetically. A pure read; it reflects whatever cart state exists at
// query time.
type ShoppingListService interface {
	Generate(ctx context.Context) (string, error)
}

type shoppingListService struct {
	log      *logger.Logger
	cart     repos.MembershipStore
	lineRepo repos.RecipeIngredientRepo
}

func NewShoppingListService(log *logger.Logger, cart repos.MembershipStore, lineRepo repos.RecipeIngredientRepo) ShoppingListService {
	return &shoppingListService{
		log:      log.With("service", "ShoppingListService"),
		cart:     cart,
		lineRepo: lineRepo,
	}
}

func (sls *shoppingListService) Generate(ctx context.Context) (string, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return "", apperr.ErrUnauthorized
	}

	cartIDs, err := sls.cart.RecipeIDs(ctx, nil, userID)
	if err != nil {
		return "", err
	}
	if len(cartIDs) == 0 {
		return "", apperr.ErrEmptyCart
	}

	totals, err := sls.lineRepo.CartTotals(ctx, nil, userID)
	if err != nil {
		return "", err
	}

	return RenderShoppingList(totals), nil
}

// RenderShoppingList materializes the full report. Ordering is byte-wise
// ascending on the ingredient name regardless of the database collation.
func RenderShoppingList(totals []repos.IngredientTotal) string {
	sorted := make([]repos.IngredientTotal, len(totals))
	copy(sorted, totals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].MeasurementUnit < sorted[j].MeasurementUnit
	})

	var b strings.Builder
	b.WriteString(shoppingListHeader + "\n\n")
	for _, row := range sorted {
		fmt.Fprintf(&b, "%s (%s) — %d\n", row.Name, row.MeasurementUnit, row.Total)
	}
	return b.String()
}
