package pipeline

// InventoryRow is the reconstructed current stock for one (product, city)
// pair.
type InventoryRow struct {
	ProductID    int32
	CityID       int32
	CurrentStock int32
}

type inventoryKey struct {
	productID int32
	cityID    int32
}

// BuildInventory reduces the full sale stream to one row per
// (product, city) pair, taking stock_final from the sale with the latest
// order date; same-date ties go to the highest sale id (most recently
// recorded transaction wins). It consumes the whole stream before emitting
// anything; rows come out in first-occurrence order of their pair.
func BuildInventory(sales []Sale) []InventoryRow {
	latest := make(map[inventoryKey]Sale)
	var order []inventoryKey

	for _, s := range sales {
		key := inventoryKey{productID: s.ProductID, cityID: s.CityID}
		cur, ok := latest[key]
		if !ok {
			latest[key] = s
			order = append(order, key)
			continue
		}
		if s.OrderDate.After(cur.OrderDate) || (s.OrderDate.Equal(cur.OrderDate) && s.ID > cur.ID) {
			latest[key] = s
		}
	}

	rows := make([]InventoryRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, InventoryRow{
			ProductID:    key.productID,
			CityID:       key.cityID,
			CurrentStock: latest[key].StockFinal,
		})
	}
	return rows
}
