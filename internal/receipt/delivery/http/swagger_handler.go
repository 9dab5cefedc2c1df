package http

// Create godoc
// @Summary Record a goods receipt
// @Description Creates the receipt and increments warehouse stock in one transaction
// @Tags GoodsReceipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{warehouseId=int,products=array} true "Receipt data"
// @Success 201 {object} object{data=object}
// @Failure 400 {object} object{code=string,message=string}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/goods-receipt [post]
func (h *ReceiptHandler) CreateDoc() {}

// Update godoc
// @Summary Replace receipt line items
// @Description Stock is reconciled by per-product delta against the stored lines
// @Tags GoodsReceipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Receipt ID"
// @Param request body object{products=array} true "New line set"
// @Success 200 {object} object{data=object}
// @Failure 404 {object} object{code=string,message=string}
// @Failure 409 {object} object{code=string,message=string} "Insufficient stock"
// @Router /api/v1/goods-receipt/{id} [put]
func (h *ReceiptHandler) UpdateDoc() {}

// Delete godoc
// @Summary Delete a goods receipt
// @Description Decrements the received quantities back out of stock
// @Tags GoodsReceipts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} object{data=object{id=int}}
// @Failure 404 {object} object{code=string,message=string}
// @Failure 409 {object} object{code=string,message=string} "Received stock already consumed"
// @Router /api/v1/goods-receipt/{id} [delete]
func (h *ReceiptHandler) DeleteDoc() {}
