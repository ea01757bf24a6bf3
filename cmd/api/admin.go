package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"glowcart/pkg/agenttask"
	"glowcart/pkg/catalog"
	"glowcart/pkg/order"
	"glowcart/pkg/otel"
	"glowcart/pkg/returns"
)

// adminListProductsHandler lists all products, including inactive ones.
// @Summary List products (admin)
// @Produce json
// @Success 200 {array} catalog.Product
// @Security ApiKeyAuth
// @Router /admin/products [get]
func adminListProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListProductsHandler")
	defer span.End()

	products, err := catalogRepo.ListProducts(ctx)
	if err != nil {
		log.Error(ctx, "list products", "error", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// adminCreateProductHandler creates a product.
// @Summary Create product
// @Accept json
// @Produce json
// @Param product body catalog.Product true "Product"
// @Success 201 {object} catalog.Product
// @Security ApiKeyAuth
// @Router /admin/products [post]
func adminCreateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminCreateProductHandler")
	defer span.End()

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = catalog.StatusActive
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := catalogRepo.CreateProduct(ctx, p); err != nil {
		log.Error(ctx, "create product", "error", err)
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// adminUpdateProductHandler updates a product.
// @Summary Update product
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body catalog.Product true "Product"
// @Success 200 {object} catalog.Product
// @Security ApiKeyAuth
// @Router /admin/products/{id} [put]
func adminUpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpdateProductHandler")
	defer span.End()

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p.ID = mux.Vars(r)["id"]
	p.UpdatedAt = time.Now().UTC()
	if err := catalogRepo.UpdateProduct(ctx, p); err != nil {
		if err == catalog.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "update product", "error", err)
		http.Error(w, "failed to update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// adminDeleteProductHandler removes a product.
// @Summary Delete product
// @Param id path string true "Product ID"
// @Success 204
// @Security ApiKeyAuth
// @Router /admin/products/{id} [delete]
func adminDeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminDeleteProductHandler")
	defer span.End()

	if err := catalogRepo.DeleteProduct(ctx, mux.Vars(r)["id"]); err != nil {
		if err == catalog.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "delete product", "error", err)
		http.Error(w, "failed to delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// adminGetInventoryHandler returns a product's inventory record.
// @Summary Get inventory
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} catalog.Inventory
// @Security ApiKeyAuth
// @Router /admin/inventory/{productID} [get]
func adminGetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminGetInventoryHandler")
	defer span.End()

	inv, err := catalogRepo.GetInventory(ctx, mux.Vars(r)["productID"])
	if err == catalog.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get inventory", "error", err)
		http.Error(w, "failed to load inventory", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inv)
}

// adminUpsertInventoryHandler creates or replaces a product's inventory record.
// @Summary Upsert inventory
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param inventory body catalog.Inventory true "Inventory"
// @Success 200 {object} catalog.Inventory
// @Security ApiKeyAuth
// @Router /admin/inventory/{productID} [put]
func adminUpsertInventoryHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpsertInventoryHandler")
	defer span.End()

	var inv catalog.Inventory
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	inv.ProductID = mux.Vars(r)["productID"]
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now
	}
	inv.UpdatedAt = now
	if err := catalogRepo.UpsertInventory(ctx, inv); err != nil {
		log.Error(ctx, "upsert inventory", "error", err)
		http.Error(w, "failed to save inventory", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}

// adminRestockHandler adds stock for a product and stamps the restock time.
// @Summary Restock product
// @Accept json
// @Param productID path string true "Product ID"
// @Param restock body restockRequest true "Quantity to add"
// @Success 204
// @Security ApiKeyAuth
// @Router /admin/inventory/{productID}/restock [post]
func adminRestockHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminRestockHandler")
	defer span.End()

	var req restockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity < 1 {
		http.Error(w, "quantity must be positive", http.StatusBadRequest)
		return
	}
	if err := catalogRepo.Restock(ctx, mux.Vars(r)["productID"], req.Quantity, time.Now().UTC()); err != nil {
		if err == catalog.ErrNotFound {
			http.NotFound(w, r)
			return
		}
		log.Error(ctx, "restock", "error", err)
		http.Error(w, "failed to restock", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// adminListOrdersHandler lists all orders, newest first.
// @Summary List orders (admin)
// @Produce json
// @Success 200 {array} order.Order
// @Security ApiKeyAuth
// @Router /admin/orders [get]
func adminListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListOrdersHandler")
	defer span.End()

	orders, err := orderRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "list orders", "error", err)
		http.Error(w, "failed to load orders", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

type orderStatusRequest struct {
	Status         order.Status `json:"status"`
	TrackingNumber string       `json:"tracking_number,omitempty"`
	Carrier        string       `json:"carrier,omitempty"`
	Notes          string       `json:"notes,omitempty"`
}

// adminUpdateOrderStatusHandler moves an order through its lifecycle.
// Illegal transitions are rejected with 409. Marking shipped requires a
// tracking number and carrier and stamps the ship time; delivered stamps
// the delivery time.
// @Summary Update order status
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body orderStatusRequest true "New status"
// @Success 200 {object} order.Order
// @Failure 409 "illegal status transition"
// @Security ApiKeyAuth
// @Router /admin/orders/{id}/status [put]
func adminUpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpdateOrderStatusHandler")
	defer span.End()

	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	o, err := orderRepo.Get(ctx, mux.Vars(r)["id"])
	if err == order.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get order", "error", err)
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return
	}

	if !order.CanTransition(o.Status, req.Status) {
		http.Error(w, "illegal transition "+string(o.Status)+" -> "+string(req.Status), http.StatusConflict)
		return
	}

	now := time.Now().UTC()
	switch req.Status {
	case order.StatusShipped:
		if req.TrackingNumber == "" || req.Carrier == "" {
			http.Error(w, "tracking_number and carrier are required to ship", http.StatusBadRequest)
			return
		}
		o.TrackingNumber = req.TrackingNumber
		o.Carrier = req.Carrier
		o.ShippedAt = &now
	case order.StatusDelivered:
		o.DeliveredAt = &now
	}
	o.Status = req.Status
	if req.Notes != "" {
		o.Notes = req.Notes
	}
	o.UpdatedAt = now

	if err := orderRepo.UpdateStatus(ctx, o); err != nil {
		log.Error(ctx, "update order status", "error", err)
		http.Error(w, "failed to update order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// adminListReturnsHandler lists all returns, newest first.
// @Summary List returns (admin)
// @Produce json
// @Success 200 {array} returns.Return
// @Security ApiKeyAuth
// @Router /admin/returns [get]
func adminListReturnsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListReturnsHandler")
	defer span.End()

	list, err := returnsRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "list returns", "error", err)
		http.Error(w, "failed to load returns", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

type returnStatusRequest struct {
	Status       returns.Status `json:"status"`
	RefundAmount float64        `json:"refund_amount,omitempty"`
	AdminNotes   string         `json:"admin_notes,omitempty"`
}

// adminUpdateReturnStatusHandler moves a return through its lifecycle.
// Refunding stamps the processed time.
// @Summary Update return status
// @Accept json
// @Produce json
// @Param id path string true "Return ID"
// @Param status body returnStatusRequest true "New status"
// @Success 200 {object} returns.Return
// @Failure 409 "illegal status transition"
// @Security ApiKeyAuth
// @Router /admin/returns/{id}/status [put]
func adminUpdateReturnStatusHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminUpdateReturnStatusHandler")
	defer span.End()

	var req returnStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "status is required", http.StatusBadRequest)
		return
	}

	ret, err := returnsRepo.Get(ctx, mux.Vars(r)["id"])
	if err == returns.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get return", "error", err)
		http.Error(w, "failed to load return", http.StatusInternalServerError)
		return
	}

	if !returns.CanTransition(ret.Status, req.Status) {
		http.Error(w, "illegal transition "+string(ret.Status)+" -> "+string(req.Status), http.StatusConflict)
		return
	}

	now := time.Now().UTC()
	ret.Status = req.Status
	if req.RefundAmount > 0 {
		ret.RefundAmount = req.RefundAmount
	}
	if req.AdminNotes != "" {
		ret.AdminNotes = req.AdminNotes
	}
	if req.Status == returns.StatusRefunded {
		ret.ProcessedAt = &now
	}
	ret.UpdatedAt = now

	if err := returnsRepo.UpdateStatus(ctx, ret); err != nil {
		log.Error(ctx, "update return status", "error", err)
		http.Error(w, "failed to update return", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ret)
}

type createTaskRequest struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// adminCreateTaskHandler queues an agent task.
// @Summary Create agent task
// @Accept json
// @Produce json
// @Param task body createTaskRequest true "Task"
// @Success 201 {object} agenttask.Task
// @Security ApiKeyAuth
// @Router /admin/agent-tasks [post]
func adminCreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminCreateTaskHandler")
	defer span.End()

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" || req.Prompt == "" {
		http.Error(w, "title and prompt are required", http.StatusBadRequest)
		return
	}
	now := time.Now().UTC()
	t := agenttask.Task{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Prompt:    req.Prompt,
		Status:    agenttask.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := taskRepo.Create(ctx, t); err != nil {
		log.Error(ctx, "create task", "error", err)
		http.Error(w, "failed to create task", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// adminListTasksHandler lists agent tasks, newest first.
// @Summary List agent tasks
// @Produce json
// @Success 200 {array} agenttask.Task
// @Security ApiKeyAuth
// @Router /admin/agent-tasks [get]
func adminListTasksHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminListTasksHandler")
	defer span.End()

	tasks, err := taskRepo.List(ctx)
	if err != nil {
		log.Error(ctx, "list tasks", "error", err)
		http.Error(w, "failed to load tasks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}

// adminExecuteTaskHandler runs a pending task's prompt through the gateway
// and stores the completion text. A gateway failure marks the task failed;
// nothing is retried.
// @Summary Execute agent task
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} agenttask.Task
// @Security ApiKeyAuth
// @Router /admin/agent-tasks/{id}/execute [post]
func adminExecuteTaskHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "adminExecuteTaskHandler")
	defer span.End()

	t, err := taskRepo.Get(ctx, mux.Vars(r)["id"])
	if err == agenttask.ErrNotFound {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error(ctx, "get task", "error", err)
		http.Error(w, "failed to load task", http.StatusInternalServerError)
		return
	}
	if t.Status == agenttask.StatusRunning {
		http.Error(w, "task is already running", http.StatusConflict)
		return
	}

	t.Status = agenttask.StatusRunning
	t.UpdatedAt = time.Now().UTC()
	if err := taskRepo.Update(ctx, t); err != nil {
		log.Error(ctx, "mark task running", "error", err)
		http.Error(w, "failed to update task", http.StatusInternalServerError)
		return
	}

	result, err := aiClient.Complete(ctx,
		"You are a capable back-office assistant for a skincare e-commerce business. Complete the task below and reply with the finished result.",
		t.Prompt)
	now := time.Now().UTC()
	if err != nil {
		log.Error(ctx, "execute task", "task_id", t.ID, "error", err)
		t.Status = agenttask.StatusFailed
		t.Result = err.Error()
	} else {
		t.Status = agenttask.StatusCompleted
		t.Result = result
		t.CompletedAt = &now
	}
	t.UpdatedAt = now
	if err := taskRepo.Update(ctx, t); err != nil {
		log.Error(ctx, "store task result", "error", err)
		http.Error(w, "failed to update task", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
