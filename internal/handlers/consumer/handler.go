package consumer

import (
	"context"
	"net/http"

	"github.com/GioMjds/paynal-prajik/infras/kafka"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/service"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	"github.com/GioMjds/paynal-prajik/shared/failure"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Handler struct {
	commission service.Commission
	otel       otel.Otel
}

func New(commission service.Commission, otel otel.Otel) Handler {
	return Handler{
		commission: commission,
		otel:       otel,
	}
}

// FoodOrder records the commission of a food order event.
// Malformed events are logged and acknowledged so they do not block the partition.
func (handler *Handler) FoodOrder(ctx context.Context, message kafkaGo.Message) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FoodOrder")
	defer scope.End()

	event, err := kafka.Decode[dto.FoodOrderEvent](message)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("offset", message.Offset).Msg("failed to decode food order event, skipping")

		return nil
	}

	err = handler.commission.Record(ctx, event)

	switch {
	case err == nil:
		scope.AddEvent("Commission recorded for order " + event.OrderID)

		return nil
	case failure.GetCode(err) < http.StatusInternalServerError:
		scope.TraceError(err)
		log.Error().Err(err).Str("order_id", event.OrderID).Msg("rejected food order event, skipping")

		return nil
	default:
		scope.TraceError(err)
		log.Error().Err(err).Str("order_id", event.OrderID).Msg("failed to record commission")

		return err
	}
}
