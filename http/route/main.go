package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rflkt/rflkt-storage-service/http/controller"
	middlewares "github.com/rflkt/rflkt-storage-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	r.GET("/health", ctrl.HealthCheck)
	r.GET("/health/db", ctrl.DatabaseHealthCheck)
	r.GET("/health/storage", ctrl.StorageHealthCheck)

	apiRoutes := r.Group("/api/v1/storage")
	{
		apiRoutes.Use(middles.AuthMiddleware)

		bucketRoutes := apiRoutes.Group("/buckets")
		{
			bucketRoutes.POST("/", ctrl.CreateBucket)
			bucketRoutes.GET("/", ctrl.ListBuckets)
			bucketRoutes.POST("/create-with-folder", ctrl.CreateBucketWithFolder)
			bucketRoutes.GET("/:name", ctrl.GetBucketDetails)
			bucketRoutes.GET("/:name/folders", ctrl.ListFolders)
			bucketRoutes.GET("/:name/folders/:folder/contents", ctrl.GetFolderContents)
			bucketRoutes.GET("/:name/folders/:folder/images-urls", ctrl.GetFolderImageURLs)
		}

		productRoutes := apiRoutes.Group("/products")
		{
			productRoutes.POST("/", ctrl.CreateProduct)
			productRoutes.GET("/", ctrl.ListProducts)
			productRoutes.DELETE("/:folder_name", ctrl.DeleteProduct)
		}
	}
	return r
}
