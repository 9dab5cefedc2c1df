package main

// @title Backoffice API
// @version 1.0
// @description Business operations backend: products, warehouses, customers, inventory, orders, goods receipts and payments behind a JWT-protected REST API.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/bizstack/backoffice
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/bizstack/backoffice/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Warehouses
// @tag.description Warehouse endpoints

// @tag.name Customers
// @tag.description Customer endpoints

// @tag.name Inventory
// @tag.description Stock levels and threshold configuration

// @tag.name Orders
// @tag.description Order placement and lookup

// @tag.name GoodsReceipts
// @tag.description Incoming stock receipts

// @tag.name Payments
// @tag.description Payment records

// @tag.name Dashboard
// @tag.description Aggregate counters
