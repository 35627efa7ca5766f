package cart

import (
	"fmt"

	"shopping-cart/internal/domain"
)

// Command texts interpolate values directly into the statement. String
// fields are not escaped; callers downstream assert on the exact text.

func insertCommand(item domain.Item) string {
	return fmt.Sprintf(
		"INSERT INTO cart (item_id, quantity, price, name, category, user_type) VALUES (%d, %d, %s, '%s', '%s', '%s')",
		item.ItemID, item.Quantity, item.Price.String(), item.Name, item.Category, item.UserType,
	)
}

func deleteItemCommand(itemID int) string {
	return fmt.Sprintf("DELETE FROM cart WHERE item_id = %d", itemID)
}

func updateQuantityCommand(itemID, quantity int) string {
	return fmt.Sprintf("UPDATE cart SET quantity = %d WHERE item_id = %d", quantity, itemID)
}

const emptyCommand = "DELETE FROM cart"
