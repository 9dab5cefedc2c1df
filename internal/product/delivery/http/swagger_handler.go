package http

// Create godoc
// @Summary Create a new product
// @Description Create a product priced in the smallest currency unit
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,barcode=string,price=int} true "Product data"
// @Success 201 {object} object{data=object}
// @Failure 400 {object} object{code=string,message=string}
// @Router /api/v1/product [post]
func (h *ProductHandler) CreateDoc() {}

// List godoc
// @Summary List products
// @Description Paginated product listing with search over name and barcode
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort key"
// @Param sortOrder query string false "asc or desc"
// @Param search query string false "Filter term"
// @Success 200 {object} object{data=array,meta=object{limit=int,page=int,total=int,totalPages=int}}
// @Failure 400 {object} object{code=string,message=string}
// @Router /api/v1/product [get]
func (h *ProductHandler) ListDoc() {}

// Get godoc
// @Summary Get product by ID
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{data=object}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/product/{id} [get]
func (h *ProductHandler) GetDoc() {}

// Update godoc
// @Summary Update a product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,barcode=string,price=int} true "Product data"
// @Success 200 {object} object{data=object}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/product/{id} [put]
func (h *ProductHandler) UpdateDoc() {}

// Delete godoc
// @Summary Delete a product
// @Description Soft-deletes the product; its id stays referenced by order history
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{data=object{id=int}}
// @Failure 404 {object} object{code=string,message=string}
// @Router /api/v1/product/{id} [delete]
func (h *ProductHandler) DeleteDoc() {}
