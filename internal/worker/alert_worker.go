package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"stockroom/internal/infra"
)

// LowStockWorker turns low-stock jobs into notification mail. Delivery
// failures land in the dead letter queue for manual inspection.
type LowStockWorker struct {
	mailer    *infra.Mailer
	recipient string
}

func NewLowStockWorker(mailer *infra.Mailer, recipient string) *LowStockWorker {
	return &LowStockWorker{mailer: mailer, recipient: recipient}
}

func (w *LowStockWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload LowStockPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("low_stock_worker: invalid payload")
		return
	}
	if w.recipient == "" {
		log.Warn().Msg("low_stock_worker: no alert recipient configured, skipping")
		return
	}

	subject := fmt.Sprintf("Low stock: %s (%d left)", payload.ItemName, payload.Quantity)
	body := fmt.Sprintf(
		"Item %q in warehouse %q dropped to %d units (restock threshold %d, category %s).",
		payload.ItemName, payload.WarehouseName, payload.Quantity, payload.Threshold, payload.CategoryName,
	)

	if err := w.mailer.Send(w.recipient, subject, body); err != nil {
		log.Error().Err(err).Str("item", payload.ItemName).Msg("low_stock_worker: failed to send alert")
		SendToDLQ(ctx, rdb, QueueLowStock, "low-stock", raw, err.Error(), 1)
		return
	}
	log.Info().Str("item", payload.ItemName).Int("quantity", payload.Quantity).Msg("low stock alert sent")
}
