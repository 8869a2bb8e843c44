package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with a small demo data set.
func SeedFixtures(database *sql.DB) error {
	people := []struct{ name, apellido, ciudad string }{
		{"Ana", "Gomez", "Lima"},
		{"Luis", "Quispe", "Cusco"},
		{"Marta", "Rojas", "Arequipa"},
	}
	for _, p := range people {
		if _, err := database.Exec(
			"INSERT INTO personas (name, apellido, ciudad) VALUES (?, ?, ?)",
			p.name, p.apellido, p.ciudad,
		); err != nil {
			return fmt.Errorf("seed personas: %w", err)
		}
	}

	products := []struct {
		name, brand         string
		quantity, unitPrice float64
		purchased           bool
	}{
		{"Leche", "Gloria", 2, 3.5, true},
		{"Pan", "Bimbo", 1, 6.9, false},
		{"Arroz", "Costeño", 5, 4.2, false},
	}
	for _, p := range products {
		if _, err := database.Exec(
			"INSERT INTO productos (name, brand, quantity, unit_price, subtotal, purchased) VALUES (?, ?, ?, ?, ?, ?)",
			p.name, p.brand, p.quantity, p.unitPrice, p.quantity*p.unitPrice, p.purchased,
		); err != nil {
			return fmt.Errorf("seed productos: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO settings (key, value) VALUES ('budget', '100') ON CONFLICT(key) DO UPDATE SET value = excluded.value",
	); err != nil {
		return fmt.Errorf("seed budget: %w", err)
	}

	return nil
}
