package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"homestead/internal/app/frame"
	"homestead/internal/app/inventory"
	"homestead/internal/app/observe"
	"homestead/internal/app/placement"
	"homestead/internal/app/ports"
	"homestead/internal/domain/item"
	"homestead/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Handler is the input layer: it turns HTTP requests into world and item
// operations. It never touches the World directly.
type Handler struct {
	ObserveUC   observe.UseCase
	PlacementUC placement.UseCase
	InventoryUC inventory.UseCase
	KPI         kpiSnapshotProvider

	// AllowOrigins limits cross-origin callers; empty allows any.
	AllowOrigins []string
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(newCORSPolicy(h.AllowOrigins).middleware())

	api := s.Group("/api")
	api.GET("/world", h.getWorld)
	api.POST("/structures", h.placeStructure)
	api.DELETE("/structures", h.removeStructure)
	api.POST("/taps", h.tap)
	api.POST("/items", h.createItem)
	api.GET("/inventory", h.getInventory)

	s.GET("/ops/kpi", h.kpi)
}

type positionRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type tapRequest struct {
	PX *int `json:"px"`
	PY *int `json:"py"`
}

type itemRequest struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func (h Handler) getWorld(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) placeStructure(c context.Context, ctx *app.RequestContext) {
	var body positionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.X == nil || body.Y == nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "x and y are required")
		return
	}

	resp, err := h.PlacementUC.Place(c, placement.Request{X: *body.X, Y: *body.Y})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) removeStructure(c context.Context, ctx *app.RequestContext) {
	x, errX := strconv.Atoi(strings.TrimSpace(string(ctx.Query("x"))))
	y, errY := strconv.Atoi(strings.TrimSpace(string(ctx.Query("y"))))
	if errX != nil || errY != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "x and y query parameters are required")
		return
	}

	resp, err := h.PlacementUC.Remove(c, placement.Request{X: x, Y: y})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tap(c context.Context, ctx *app.RequestContext) {
	var body tapRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.PX == nil || body.PY == nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "px and py are required")
		return
	}

	resp, err := h.PlacementUC.PlaceAtTap(c, placement.TapRequest{PX: *body.PX, PY: *body.PY})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) createItem(c context.Context, ctx *app.RequestContext) {
	var body itemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.InventoryUC.Create(c, inventory.Request{Type: body.Type, Count: body.Count})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getInventory(c context.Context, ctx *app.RequestContext) {
	bag, err := h.InventoryUC.Contents(c)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"bag": bag})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(c context.Context, ctx *app.RequestContext, err error) {
	var oob *world.OutOfBoundsError
	switch {
	case errors.As(err, &oob):
		ctx.JSON(consts.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":    "out_of_bounds",
				"message": err.Error(),
				"details": map[string]any{
					"pos":  oob.Pos,
					"size": oob.Size,
				},
			},
		})
	case errors.Is(err, world.ErrOutOfBounds):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "out_of_bounds", err.Error())
	case errors.Is(err, world.ErrOccupied):
		writeErrorBody(ctx, consts.StatusConflict, "occupied", err.Error())
	case errors.Is(err, placement.ErrNotBuildable):
		writeErrorBody(ctx, consts.StatusConflict, "not_buildable", err.Error())
	case errors.Is(err, item.ErrUnknownType):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_item_type", err.Error())
	case errors.Is(err, placement.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, inventory.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, frame.ErrStopped),
		errors.Is(err, frame.ErrQueueFull),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "unavailable", err.Error())
	default:
		hlog.CtxErrorf(c, "unhandled request error: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
