package repository

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
// Los casos de uso que necesitan atomicidad (ajustes de stock, ventas,
// traslados, producción) reciben este bundle dentro de TxRunner.Run.
type TxRepos struct {
	Ingredients IngredientRepository
	Adjustments StockAdjustmentRepository
	Positions   InventoryPositionRepository
	Products    ProductRepository
	Sales       SaleRepository
	Transfers   TransferRepository
	Production  ProductionRepository
	History     SystemHistoryRepository
}
