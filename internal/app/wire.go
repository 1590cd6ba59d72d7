//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"service/internal/gateway/http/product"
	"service/internal/gateway/http/user"
	order_delete "service/internal/handlers/rest/order_delete"
	order_get "service/internal/handlers/rest/order_get"
	order_status_patch "service/internal/handlers/rest/order_status_patch"
	orders_get "service/internal/handlers/rest/orders_get"
	orders_post "service/internal/handlers/rest/orders_post"
	orders_user_get "service/internal/handlers/rest/orders_user_get"
	"service/internal/handlers/tasks/orders_status_gauge"
	"service/internal/pkg/config"
	"service/internal/pkg/httpclient"

	orderRepo "service/internal/repository/order"
	orderService "service/internal/service/order"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OrdersStatusGaugeInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
	order_get.Service
	orders_user_get.Service
	order_status_patch.Service
	order_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrdersStatusGaugeInterval,

		provideOrderRepository,

		provideHTTPClient,
		provideUserGateway,
		provideProductGateway,

		provideServiceOrder,

		provideOrdersStatusGaugeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderRepo.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.UserGateway), new(*user.UserGateway)),
		wire.Bind(new(orderService.ProductGateway), new(*product.ProductGateway)),

		wire.Bind(new(orders_status_gauge.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier orderRepo.Querier, txManager orderRepo.TxManager) *orderRepo.Repository {
	return orderRepo.New(querier, txManager)
}

func provideHTTPClient() *http.Client {
	return httpclient.New()
}

func provideUserGateway(client *http.Client, cfg *config.Config) *user.UserGateway {
	return user.New(client, cfg.Collaborators.UserServiceURL)
}

func provideProductGateway(client *http.Client, cfg *config.Config) *product.ProductGateway {
	return product.New(client, cfg.Collaborators.ProductServiceURL)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	userGateway orderService.UserGateway,
	productGateway orderService.ProductGateway,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(
		log,
		repository,
		userGateway,
		productGateway,
		publisher,
	)
}

func provideOrdersStatusGaugeInterval(cfg *config.Config) OrdersStatusGaugeInterval {
	return OrdersStatusGaugeInterval(cfg.Tasks.OrdersStatusGaugeInterval)
}

func provideOrdersStatusGaugeTask(
	log logger.Logger,
	service orders_status_gauge.Service,
	interval OrdersStatusGaugeInterval,
) *orders_status_gauge.OrdersStatusGauge {
	return orders_status_gauge.NewOrdersStatusGauge(log, service, time.Duration(interval))
}

func provideTaskList(
	ordersStatusGaugeTask *orders_status_gauge.OrdersStatusGauge,
) []background.Task {
	return []background.Task{
		ordersStatusGaugeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
