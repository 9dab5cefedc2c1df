package http

// Create godoc
// @Summary Place an order
// @Description Creates the order, its payment record and the stock decrement in one transaction
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{warehouseId=int,customerId=int,discount=int,note=string,paid=int,due=int,payment=object,products=array} true "Order data"
// @Success 201 {object} object{data=object}
// @Failure 400 {object} object{code=string,message=string}
// @Failure 404 {object} object{code=string,message=string}
// @Failure 409 {object} object{code=string,message=string} "Insufficient stock"
// @Router /api/v1/order [post]
func (h *OrderHandler) CreateDoc() {}

// List godoc
// @Summary List orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} object{data=array,meta=object{limit=int,page=int,total=int,totalPages=int}}
// @Router /api/v1/order [get]
func (h *OrderHandler) ListDoc() {}

// Get godoc
// @Summary Get order by ID
// @Description Returns the order with its line items preloaded
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{data=object}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/order/{id} [get]
func (h *OrderHandler) GetDoc() {}

// Delete godoc
// @Summary Delete an order
// @Description Restores the consumed stock and cancels the payment
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{data=object{id=int}}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/order/{id} [delete]
func (h *OrderHandler) DeleteDoc() {}
