package consumer

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/kafka"
	"github.com/GioMjds/paynal-prajik/internal/handlers/consumer"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Worker runs the Kafka subscriptions of the service until SIGTERM.
type Worker struct {
	Config  *config.Config
	Client  kafka.Client
	Handler consumer.Handler
}

type subscription struct {
	topic   string
	handler kafka.Handler
}

func New(cfg *config.Config, client kafka.Client, handler consumer.Handler) *Worker {
	return &Worker{
		Config:  cfg,
		Client:  client,
		Handler: handler,
	}
}

func (w *Worker) subscriptions() []subscription {
	return []subscription{
		{topic: w.Config.Kafka.Topics.FoodOrders, handler: w.Handler.FoodOrder},
	}
}

func (w *Worker) Serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Kafka worker stopped")
	}

	log.Info().Msg("Kafka worker shut down.")
}

// Run consumes every subscription concurrently and returns when ctx is done or one of them fails.
func (w *Worker) Run(ctx context.Context) error {
	defer func() {
		if err := w.Client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client.")
		}
	}()

	group, ctx := errgroup.WithContext(ctx)

	for _, sub := range w.subscriptions() {
		log.Info().Str("topic", sub.topic).Str("group", w.Config.Kafka.ConsumerGroup).Msg("Subscribing to topic.")

		group.Go(func() error {
			return w.Client.Consume(ctx, w.Config.Kafka.ConsumerGroup, sub.topic, sub.handler)
		})
	}

	return group.Wait() //nolint:wrapcheck
}
