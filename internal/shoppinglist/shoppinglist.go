// Package shoppinglist aggregates the ingredients of a user's shopping cart
// into a downloadable list.
package shoppinglist

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/tealeg/xlsx"

	"github.com/matt-dz/foodgram/internal/database"
)

const (
	SheetName       = "Shopping list"
	TextFilename    = "data.txt"
	XLSXFilename    = "data.xlsx"
	TextContentType = "text/plain; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Item struct {
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int64
}

type List struct {
	Username string
	Items    []Item
}

// Build loads the cart of userID and aggregates it.
func Build(ctx context.Context, q database.Querier, userID int64) (List, error) {
	user, err := q.GetUser(ctx, userID)
	if err != nil {
		return List{}, fmt.Errorf("getting user: %w", err)
	}
	rows, err := q.ListShoppingCartIngredients(ctx, userID)
	if err != nil {
		return List{}, fmt.Errorf("listing cart ingredients: %w", err)
	}
	return List{Username: user.Username, Items: Aggregate(rows)}, nil
}

// Aggregate groups rows by ingredient, sums their amounts and orders the
// result by name (byte-wise), then by ingredient id.
func Aggregate(rows []database.ListShoppingCartIngredientsRow) []Item {
	byID := make(map[int64]*Item, len(rows))
	items := make([]*Item, 0, len(rows))
	for _, r := range rows {
		item, ok := byID[r.IngredientID]
		if !ok {
			item = &Item{
				IngredientID:    r.IngredientID,
				Name:            r.Name,
				MeasurementUnit: r.MeasurementUnit,
			}
			byID[r.IngredientID] = item
			items = append(items, item)
		}
		item.Amount += int64(r.Amount)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].IngredientID < items[j].IngredientID
	})

	out := make([]Item, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out
}

func RenderText(w io.Writer, l List) error {
	if _, err := fmt.Fprintf(w, "Shopping list for %s:\n", l.Username); err != nil {
		return err
	}
	for i, item := range l.Items {
		if _, err := fmt.Fprintf(w, "%d. %s (%s) - %d\n",
			i+1, item.Name, item.MeasurementUnit, item.Amount); err != nil {
			return err
		}
	}
	return nil
}

func RenderXLSX(w io.Writer, l List) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range []string{"#", "Ingredient", "Unit", "Amount"} {
		header.AddCell().SetValue(h)
	}
	for i, item := range l.Items {
		row := sheet.AddRow()
		row.AddCell().SetValue(i + 1)
		row.AddCell().SetValue(item.Name)
		row.AddCell().SetValue(item.MeasurementUnit)
		row.AddCell().SetValue(item.Amount)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
