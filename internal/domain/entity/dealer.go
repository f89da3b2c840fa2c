package entity

// Dealer representa un concesionario. Es dueño de cero o más Cars; al
// eliminarlo, sus Cars se eliminan en cascada (FK ON DELETE CASCADE).
type Dealer struct {
	ID   int64
	Name string
}
