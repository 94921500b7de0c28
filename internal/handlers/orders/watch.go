package orders

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/gin-contrib/sse"
	"go.uber.org/zap"

	"github.com/GlebRadaev/otpshop/internal/dto"
	"github.com/GlebRadaev/otpshop/internal/service/orderservice"
	"github.com/GlebRadaev/otpshop/internal/upstream"
	"github.com/GlebRadaev/otpshop/pkg/auth"
	"github.com/GlebRadaev/otpshop/pkg/numfmt"
	"github.com/GlebRadaev/otpshop/pkg/poller"
	"github.com/GlebRadaev/otpshop/pkg/utils"
)

const (
	EventTick   = "tick"
	EventOrders = "orders"
	EventError  = "error"
)

// stream serialises events of both poll tasks onto one response.
type stream struct {
	mu      sync.Mutex
	w       io.Writer
	flusher http.Flusher
	format  numfmt.Format
	views   []orderservice.OrderView
}

func (s *stream) emit(event string, data any) error {
	if err := sse.Encode(s.w, sse.Event{Event: event, Data: data}); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *stream) tick(timers func([]orderservice.OrderView) []orderservice.OrderView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = timers(s.views)
	return s.emit(EventTick, dto.NewOrderResponses(s.views, s.format))
}

func (s *stream) replace(views []orderservice.OrderView) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = views
	return s.emit(EventOrders, dto.NewOrderResponses(s.views, s.format))
}

func (s *stream) fail(err error) error {
	message := utils.FallbackMessage
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emit(EventError, utils.Response{Status: "error", Message: message})
}

// Watch godoc
//
//	@Summary		Watch active orders
//	@Description	Server-sent events: "tick" every second with recomputed countdowns,
//	@Description	"orders" every five seconds with refreshed statuses. Ends when the client disconnects.
//	@Tags			Orders
//	@Produce		text/event-stream
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		502	{object}	utils.Response	"Upstream API unreachable"
//	@Router			/app/orders/watch [get]
func (h *OrderHandler) Watch(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "")
		return
	}
	ctx := r.Context()
	session := auth.SessionFrom(ctx)

	views, err := h.orderService.ActiveOrders(ctx, session)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", sse.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	s := &stream{w: w, flusher: flusher, format: h.numberFormat(r)}
	if err := s.replace(views); err != nil {
		zap.L().Debug("watch stream closed", zap.Error(err))
		return
	}

	var group poller.Group
	group.Go(ctx, poller.Task{
		Name:     "watch-tick",
		Interval: h.tickInterval,
		Fn: func(context.Context) error {
			return s.tick(h.orderService.Timers)
		},
	})
	group.Go(ctx, poller.Task{
		Name:     "watch-orders",
		Interval: h.refreshInterval,
		Fn: func(ctx context.Context) error {
			views, err := h.orderService.ActiveOrders(ctx, session)
			if err != nil {
				if ctx.Err() == nil {
					_ = s.fail(err)
				}
				return err
			}
			return s.replace(views)
		},
	})
	<-ctx.Done()
	group.Wait()
}
