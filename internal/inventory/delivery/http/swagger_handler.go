package http

// ListByWarehouse godoc
// @Summary List stock for a warehouse
// @Description Paginated stock rows joined with product name, barcode and price
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param id path int true "Warehouse ID"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} object{data=array,meta=object{limit=int,page=int,total=int,totalPages=int}}
// @Router /api/v1/inventory/warehouse/{id} [get]
func (h *InventoryHandler) ListByWarehouseDoc() {}

// UpdateConfigs godoc
// @Summary Bulk-update stock thresholds
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{configs=array} true "Threshold entries keyed by inventory id"
// @Success 200 {object} object{data=object{message=string}}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/inventory/configs [put]
func (h *InventoryHandler) UpdateConfigsDoc() {}

// Decrease godoc
// @Summary Manually decrease stock
// @Description Guarded decrement; rejected when it would drive quantity below zero
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{warehouseId=int,lines=array} true "Adjustment lines"
// @Success 200 {object} object{data=object{message=string}}
// @Failure 409 {object} object{code=string,message=string} "Insufficient stock"
// @Router /api/v1/inventory/decrease [post]
func (h *InventoryHandler) DecreaseDoc() {}
