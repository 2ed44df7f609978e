package db

import "testing"

func TestEnsureSchemaIdempotent(t *testing.T) {
	database := NewTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}

	var n int
	err := database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_products_position'`,
	).Scan(&n)
	if err != nil {
		t.Fatalf("querying sqlite_master: %v", err)
	}
	if n != 1 {
		t.Errorf("expected position index, found %d", n)
	}
}

func TestProductTypeCheck(t *testing.T) {
	database := NewTestDB(t)

	_, err := database.Exec(`INSERT INTO products (id, position, title, slug, type) VALUES ('1', 1, 'Bad', 'bad', 'rum')`)
	if err == nil {
		t.Error("expected CHECK constraint to reject unknown type")
	}
}
