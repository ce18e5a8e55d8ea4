package http

import (
	"github.com/gin-gonic/gin"

	"voice-intent/pkg/response"
)

// Detect godoc
// @Summary     Classify an utterance
// @Description Classifies the utterance as a context answer, continue chat or function call without acting on it.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body detectReq true "Utterance and optional dialogue"
// @Success     200  {object} intentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Failure     503  {object} response.Resp "Intent recognition not configured"
// @Router      /api/v1/intent/detect [POST]
func (h *handler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detect(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Detect: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetectResp(output))
}

// Handle godoc
// @Summary     Handle a user turn
// @Description Classifies the utterance, executes the decision and records the turn in the device session.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body handleReq true "Device and utterance"
// @Success     200  {object} handleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Failure     503  {object} response.Resp "Intent recognition not configured"
// @Router      /api/v1/intent/handle [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHandleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleTurn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleTurn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHandleResp(output))
}

// Functions godoc
// @Summary     List callable functions
// @Description Returns the local functions followed by remote tools for a device.
// @Tags        Intent
// @Produce     json
// @Param       device_id query string true "Device ID"
// @Success     200 {object} functionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intent/functions [GET]
func (h *handler) Functions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFunctionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Functions(ctx, req.DeviceID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Functions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newFunctionsResp(output))
}
