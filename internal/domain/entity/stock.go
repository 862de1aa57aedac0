package entity

// StockStatus es el estado derivado del stock de un producto. No se persiste:
// se calcula bajo demanda como suma de entradas menos suma de salidas.
// CurrentQuantity puede ser negativo si las salidas registradas superan las
// entradas; es un estado observable, no un error de esta capa.
type StockStatus struct {
	ProductID       string
	CurrentQuantity int64
	MinimumStock    int64
	BelowMinimum    bool
}
