package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/rflkt/rflkt-storage-service/utils"
)

func (ctrl *Controller) HealthCheck(c *gin.Context) {
	utils.JSON200(c, gin.H{"status": "healthy"})
}

func (ctrl *Controller) DatabaseHealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ctrl.Infra.Postgres.HealthCheck(); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Database health check failed: %v", err)
		utils.JSON503(c, "Database connection failed")
		return
	}
	utils.JSON200(c, gin.H{"status": "healthy", "message": "Database connection successful"})
}

func (ctrl *Controller) StorageHealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ctrl.Infra.Minio.HealthCheck(ctx); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Health] Storage health check failed: %v", err)
		utils.JSON503(c, "Storage connection failed")
		return
	}
	utils.JSON200(c, gin.H{"status": "healthy", "message": "Storage connection successful"})
}
