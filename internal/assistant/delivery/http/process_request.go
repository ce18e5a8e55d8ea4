package http

import (
	"github.com/gin-gonic/gin"
)

// processDetectReq binds and validates the detect request body.
func (h *handler) processDetectReq(c *gin.Context) (detectReq, error) {
	var req detectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processHandleReq binds and validates the handle request body.
func (h *handler) processHandleReq(c *gin.Context) (handleReq, error) {
	var req handleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFunctionsReq binds and validates the functions query parameters.
func (h *handler) processFunctionsReq(c *gin.Context) (functionsReq, error) {
	var req functionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
