package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/rflkt/rflkt-storage-service/http/controller/dto"
	"github.com/rflkt/rflkt-storage-service/utils"
)

func (ctrl *Controller) CreateBucket(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBucketRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Creating bucket '%s' in region '%s'", req.Name, req.Region)

	name, err := ctrl.Storage.CreateBucket(ctx, req.Name, req.Region)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to create bucket: %v", err)
		respondError(c, err)
		return
	}

	region := req.Region
	if region == "" {
		region = ctrl.Config.EnvConfig.Storage.DefaultRegion
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Successfully created bucket: %s", name)
	utils.JSON201(c, gin.H{
		"message":     "Bucket created successfully",
		"bucket_name": name,
		"region":      region,
	})
}

func (ctrl *Controller) CreateBucketWithFolder(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBucketWithFolderRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to bind JSON: %v", err)
		utils.JSON400(c, "Invalid request payload")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Creating bucket '%s' with folder '%s'", req.Name, req.FolderName)

	name, folder, err := ctrl.Storage.CreateBucketWithFolder(ctx, req.Name, req.Region, req.FolderName)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to create bucket with folder: %v", err)
		respondError(c, err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Successfully created bucket '%s' with folder '%s'", name, folder)
	utils.JSON201(c, gin.H{
		"message":     "Bucket and folder created successfully",
		"bucket_name": name,
		"folder_name": folder,
	})
}

func (ctrl *Controller) ListBuckets(c *gin.Context) {
	ctx := c.Request.Context()

	buckets, err := ctrl.Storage.ListBuckets(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to list buckets: %v", err)
		respondError(c, err)
		return
	}

	utils.JSON200(c, gin.H{
		"buckets": buckets,
		"count":   len(buckets),
	})
}

func (ctrl *Controller) GetBucketDetails(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	if name == "" {
		utils.JSON400(c, "bucket name is required")
		return
	}

	details, err := ctrl.Storage.GetBucketDetails(ctx, name)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to get bucket details: %v", err)
		respondError(c, err)
		return
	}

	utils.JSON200(c, gin.H{"bucket": details})
}

func (ctrl *Controller) ListFolders(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	if name == "" {
		utils.JSON400(c, "bucket name is required")
		return
	}

	folders, err := ctrl.Storage.ListTopLevelFolders(ctx, name)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to list folders: %v", err)
		respondError(c, err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Bucket] Found %d folders in bucket '%s'", len(folders), name)
	utils.JSON200(c, gin.H{
		"bucket_name": name,
		"folders":     folders,
		"count":       len(folders),
	})
}

func (ctrl *Controller) GetFolderContents(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	folder := c.Param("folder")
	if name == "" || folder == "" {
		utils.JSON400(c, "bucket name and folder name are required")
		return
	}

	objects, err := ctrl.Storage.ListFolderContents(ctx, name, folder)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to list folder contents: %v", err)
		respondError(c, err)
		return
	}

	utils.JSON200(c, gin.H{
		"bucket_name": name,
		"folder_name": folder,
		"objects":     objects,
		"count":       len(objects),
	})
}

func (ctrl *Controller) GetFolderImageURLs(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	folder := c.Param("folder")
	if name == "" || folder == "" {
		utils.JSON400(c, "bucket name and folder name are required")
		return
	}

	urls, err := ctrl.Storage.FolderImageURLs(ctx, name, folder)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Bucket] Failed to build image URLs: %v", err)
		respondError(c, err)
		return
	}

	utils.JSON200(c, gin.H{
		"bucket_name": name,
		"folder_name": folder,
		"image_urls":  urls,
		"count":       len(urls),
	})
}
