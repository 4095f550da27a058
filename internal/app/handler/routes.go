package handler

import "github.com/gin-gonic/gin"

// RegisterAPIRoutes регистрирует REST-маршруты шести семейств ресурсов.
// Коллекции регистрируются с хвостовым слэшем и без — клиенты используют оба варианта
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")

	partners := api.Group("/partners")
	{
		partners.GET("", h.GetPartners)
		partners.GET("/", h.GetPartners)
		partners.GET("/:id", h.GetPartner)
		partners.POST("", h.CreatePartner)
		partners.POST("/", h.CreatePartner)
		partners.PUT("/:id", h.UpdatePartner)
		partners.DELETE("/:id", h.DeletePartner)
	}

	clients := api.Group("/clients")
	{
		clients.GET("", h.GetClients)
		clients.GET("/", h.GetClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.POST("/", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}

	licenses := api.Group("/licenses")
	{
		licenses.GET("", h.GetLicenses)
		licenses.GET("/", h.GetLicenses)
		licenses.GET("/:id", h.GetLicense)
		licenses.POST("", h.CreateLicense)
		licenses.POST("/", h.CreateLicense)
		licenses.PUT("/:id", h.UpdateLicense)
		licenses.DELETE("/:id", h.DeleteLicense)
	}

	devices := api.Group("/devices")
	{
		devices.GET("", h.GetDevices)
		devices.GET("/", h.GetDevices)
		devices.GET("/:id", h.GetDevice)
		devices.POST("", h.CreateDevice)
		devices.POST("/", h.CreateDevice)
		devices.PUT("/:id", h.UpdateDevice)
		devices.DELETE("/:id", h.DeleteDevice)
	}

	updates := api.Group("/updates")
	{
		updates.GET("", h.GetUpdates)
		updates.GET("/", h.GetUpdates)
		updates.GET("/:id", h.GetUpdate)
		updates.POST("", h.CreateUpdate)
		updates.POST("/", h.CreateUpdate)
		updates.PUT("/:id", h.UpdateUpdate)
		updates.DELETE("/:id", h.DeleteUpdate)
		updates.POST("/:id/package", h.UploadUpdatePackage)
		updates.GET("/:id/package", h.DownloadUpdatePackage)
	}

	users := api.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.GET("/", h.GetUsers)
		users.GET("/:id", h.GetUser)
		users.POST("", h.CreateUser)
		users.POST("/", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
