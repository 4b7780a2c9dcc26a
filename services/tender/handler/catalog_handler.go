package handler

//go:generate mockgen -destination=mock_handler.go -package=handler tender-board/services/tender/handler CatalogServiceInterface,LedgerServiceInterface,ReviewServiceInterface

import (
	"context"
	"net/http"

	model "tender-board/internal/models"
	"tender-board/services/tender/helpers"
	"tender-board/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListTenders(ctx context.Context) ([]model.Tender, error)
	CreateTender(ctx context.Context, fields model.TenderFields) (model.Tender, error)
	UpdateTender(ctx context.Context, id string, fields model.TenderFields) (model.Tender, error)
	DeleteTender(ctx context.Context, id string) error
}

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(service CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListTendersHandler handles GET /tenders
func (h *CatalogHandler) ListTendersHandler(c *gin.Context) {
	tenders, err := h.service.ListTenders(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListTendersHandler", err, nil)
		return
	}

	if tenders == nil {
		tenders = []model.Tender{}
	}

	utils.JSONResponse(c, http.StatusOK, tenders, "tenders retrieved successfully")
	helpers.LogSuccess("ListTendersHandler", "tenders retrieved successfully", map[string]any{
		"count": len(tenders),
	})
}

// CreateTenderHandler handles POST /tenders
func (h *CatalogHandler) CreateTenderHandler(c *gin.Context) {
	var req helpers.TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateTenderHandler", err)
		return
	}

	tender, err := h.service.CreateTender(c.Request.Context(), req.Fields())
	if err != nil {
		helpers.RespondError(c, "CreateTenderHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, tender, "Tender Created Successfully!")
	helpers.LogSuccess("CreateTenderHandler", "tender created", map[string]any{
		"tender_id": tender.ID,
		"name":      tender.Name,
	})
}

// UpdateTenderHandler handles PUT /tenders/:tender_id
func (h *CatalogHandler) UpdateTenderHandler(c *gin.Context) {
	tenderID := c.Param("tender_id")

	var req helpers.TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateTenderHandler", err)
		return
	}

	tender, err := h.service.UpdateTender(c.Request.Context(), tenderID, req.Fields())
	if err != nil {
		helpers.RespondError(c, "UpdateTenderHandler", err, map[string]any{"tender_id": tenderID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, tender, "Tender Updated Successfully!")
	helpers.LogSuccess("UpdateTenderHandler", "tender updated", map[string]any{"tender_id": tenderID})
}

// DeleteTenderHandler handles DELETE /tenders/:tender_id
func (h *CatalogHandler) DeleteTenderHandler(c *gin.Context) {
	tenderID := c.Param("tender_id")

	if err := h.service.DeleteTender(c.Request.Context(), tenderID); err != nil {
		helpers.RespondError(c, "DeleteTenderHandler", err, map[string]any{"tender_id": tenderID})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Tender has been removed.")
	helpers.LogSuccess("DeleteTenderHandler", "tender deleted", map[string]any{"tender_id": tenderID})
}
