package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shopping-cart/internal/domain"

	"github.com/shopspring/decimal"
)

type ItemAdder interface {
	AddItem(ctx context.Context, cart *domain.Cart, item domain.Item) error
}

var requiredColumns = []string{"item_id", "quantity", "price", "name"}

// CSVImporter reads item rows and adds them to a cart through the cart service.
// Columns: item_id, quantity, price, name, category, user_type. Only the first
// four are required; user_type falls back to the cart's.
type CSVImporter struct {
	reader *csv.Reader
	adder  ItemAdder
	cart   *domain.Cart
}

func NewCSVImporter(r io.Reader, adder ItemAdder, cart *domain.Cart) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, adder: adder, cart: cart}
}

// Run adds every data row to the cart and returns how many rows were read.
// Zero-quantity rows count as read but add nothing.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	if i.cart == nil {
		return 0, fmt.Errorf("import: nil cart: %w", domain.ErrInvalidArgument)
	}
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return 0, fmt.Errorf("missing column %q: %w", col, domain.ErrInvalidArgument)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		line++
		if blank(record) {
			continue
		}

		item, err := i.parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}
		if err := i.adder.AddItem(ctx, i.cart, item); err != nil {
			return imported, fmt.Errorf("line %d: add item %d: %w", line, item.ItemID, err)
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (domain.Item, error) {
	get := func(col string) string {
		if idx, ok := index[col]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	itemID, err := strconv.Atoi(get("item_id"))
	if err != nil {
		return domain.Item{}, fmt.Errorf("item_id: %w", domain.ErrInvalidArgument)
	}
	quantity, err := strconv.Atoi(get("quantity"))
	if err != nil || quantity < 0 {
		return domain.Item{}, fmt.Errorf("quantity: %w", domain.ErrInvalidArgument)
	}
	price, err := decimal.NewFromString(get("price"))
	if err != nil || price.IsNegative() {
		return domain.Item{}, fmt.Errorf("price: %w", domain.ErrInvalidArgument)
	}
	userType := get("user_type")
	if userType == "" {
		userType = i.cart.UserType
	}
	return domain.Item{
		ItemID:   itemID,
		Quantity: quantity,
		Price:    price,
		Name:     get("name"),
		Category: get("category"),
		UserType: userType,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
