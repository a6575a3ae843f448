package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario.
type Warehouse struct {
	ID          string
	Name        string
	Location    string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
