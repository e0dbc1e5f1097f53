package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/carelink/homecare-backend-go/internal/domain/client"
	"github.com/carelink/homecare-backend-go/internal/handler/http/response"
	clientService "github.com/carelink/homecare-backend-go/internal/service/client"
	"github.com/go-chi/chi/v5"
)

type ClientHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ClientHandlerImpl struct {
	clientService clientService.Service
}

func NewClientHandler(service clientService.Service) ClientHandler {
	return &ClientHandlerImpl{clientService: service}
}

// Create implements ClientHandler.
func (h *ClientHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq client.CreateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create client validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.clientService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Client created", "client_id", created.ID)
	response.Created(w, "Client created successfully", toClientResponse(created))
}

// List implements ClientHandler.
func (h *ClientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := client.ClientFilter{
		Name:      queryStrPtr(r, "name"),
		IsActive:  queryBoolPtr(r, "is_active"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	clients, total, err := h.clientService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List clients service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]client.ClientResponse, 0, len(clients))
	for _, item := range clients {
		items = append(items, toClientResponse(item))
	}

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages(total, filter.Limit),
	})
}

// GetByID implements ClientHandler.
func (h *ClientHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	clientData, err := h.clientService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, toClientResponse(clientData))
}

// Update implements ClientHandler.
func (h *ClientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq client.UpdateClientRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update client decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update client validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.clientService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated successfully", toClientResponse(updated))
}

// Delete implements ClientHandler.
func (h *ClientHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.clientService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete client service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted successfully", nil)
}

func toClientResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Address:         c.Address,
		Phone:           c.Phone,
		ContractedHours: c.ContractedHoursPerMth.StringFixed(2),
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}
