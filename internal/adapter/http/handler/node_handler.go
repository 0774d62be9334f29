package handler

import (
	"simplepay/internal/adapter/http/dto"
	"simplepay/internal/core/domain"
	"simplepay/internal/core/ports"
	"simplepay/pkg/apperror"
	"simplepay/pkg/response"

	"github.com/gin-gonic/gin"
)

// NodeHandler handles node status and endpoint management.
type NodeHandler struct {
	nodeSvc ports.NodeService
}

// NewNodeHandler creates a new NodeHandler.
func NewNodeHandler(nodeSvc ports.NodeService) *NodeHandler {
	return &NodeHandler{nodeSvc: nodeSvc}
}

// GetStatus handles GET /api/v1/node/status.
func (h *NodeHandler) GetStatus(c *gin.Context) {
	response.OK(c, dto.ToNodeStatusResponse(h.nodeSvc.Status(c.Request.Context())))
}

// UpdateEndpoint handles PUT /api/v1/node/endpoint.
func (h *NodeHandler) UpdateEndpoint(c *gin.Context) {
	var req dto.UpdateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	endpoint := domain.Endpoint{URI: req.URI, Username: req.Username, Password: req.Password}
	if err := h.nodeSvc.UpdateEndpoint(c.Request.Context(), endpoint); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"endpoint": endpoint.Identity()})
}
