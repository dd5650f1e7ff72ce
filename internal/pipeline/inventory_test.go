package pipeline

import "testing"

func sale(t *testing.T, id int64, productID, cityID int32, date string, stockFinal int32) Sale {
	t.Helper()
	return Sale{
		ID:         id,
		ProductID:  productID,
		CityID:     cityID,
		OrderDate:  mustDate(t, date),
		StockFinal: stockFinal,
	}
}

func TestBuildInventoryLatestDateWins(t *testing.T) {
	sales := []Sale{
		sale(t, 1, 1, 1, "2024-01-01", 40),
		sale(t, 2, 1, 1, "2024-01-02", 35),
	}

	rows := BuildInventory(sales)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].CurrentStock != 35 {
		t.Errorf("current stock = %d, want 35 (later order date)", rows[0].CurrentStock)
	}
}

func TestBuildInventorySameDateHighestIDWins(t *testing.T) {
	sales := []Sale{
		sale(t, 9, 1, 1, "2024-03-15", 12),
		sale(t, 4, 1, 1, "2024-03-15", 30),
	}

	rows := BuildInventory(sales)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].CurrentStock != 12 {
		t.Errorf("current stock = %d, want 12 (highest id on tied date)", rows[0].CurrentStock)
	}
}

func TestBuildInventoryOneRowPerPair(t *testing.T) {
	sales := []Sale{
		sale(t, 1, 1, 1, "2024-01-01", 40),
		sale(t, 2, 1, 2, "2024-01-01", 10),
		sale(t, 3, 2, 1, "2024-01-01", 25),
		sale(t, 4, 1, 1, "2024-01-05", 33),
		sale(t, 5, 2, 1, "2024-01-02", 20),
	}

	rows := BuildInventory(sales)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	type key struct{ productID, cityID int32 }
	seen := make(map[key]int32)
	for _, row := range rows {
		k := key{row.ProductID, row.CityID}
		if _, ok := seen[k]; ok {
			t.Errorf("duplicate inventory row for (%d, %d)", row.ProductID, row.CityID)
		}
		seen[k] = row.CurrentStock
	}

	if seen[key{1, 1}] != 33 {
		t.Errorf("(1,1) stock = %d, want 33", seen[key{1, 1}])
	}
	if seen[key{1, 2}] != 10 {
		t.Errorf("(1,2) stock = %d, want 10", seen[key{1, 2}])
	}
	if seen[key{2, 1}] != 20 {
		t.Errorf("(2,1) stock = %d, want 20", seen[key{2, 1}])
	}
}

func TestBuildInventoryEmptyStream(t *testing.T) {
	if rows := BuildInventory(nil); len(rows) != 0 {
		t.Fatalf("got %d rows for empty stream", len(rows))
	}
}
