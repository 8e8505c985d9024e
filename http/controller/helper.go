package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/rflkt/rflkt-storage-service/provider"
	"github.com/rflkt/rflkt-storage-service/utils"
)

// respondError renders a classified provider error as its HTTP status.
func respondError(c *gin.Context, err error) {
	message := err.Error()
	switch provider.KindOf(err) {
	case provider.KindInvalidArgument:
		utils.JSON400(c, message)
	case provider.KindNotFound:
		utils.JSON404(c, message)
	case provider.KindConflict:
		utils.JSON409(c, message)
	case provider.KindPermissionDenied:
		utils.JSON403(c, message)
	case provider.KindUnavailable:
		utils.JSON503(c, message)
	default:
		utils.JSON500(c, message)
	}
}
