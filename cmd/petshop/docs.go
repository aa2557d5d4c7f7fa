package main

// @title Petshop Service API
// @version 1.0
// @description Pet shop management backend with purchase, inventory and catalog endpoints
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/petshop-backend
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/petshop-backend/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Purchases
// @tag.description Purchase confirmation and cancellation endpoints

// @tag.name Clients
// @tag.description Client management endpoints

// @tag.name Animals
// @tag.description Animal management endpoints

// @tag.name Inventories
// @tag.description Stock management endpoints

// @tag.name Products
// @tag.description Food, toy and medicine catalog endpoints

// @tag.name Health
// @tag.description Health check endpoints
