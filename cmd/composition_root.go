package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pricingrepo"
	ratelimit "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	topics     commands.EventTopics
	publisher  *kafka.Publisher
	redis      *redis.Client
	limiter    ports.RateLimiter
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	publisher, err := kafka.NewPublisher(config.KafkaBrokers(), logger)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		topics:     eventTopics(config),
		publisher:  publisher,
		logger:     logger,
	}

	if config.RedisAddr != "" {
		root.redis = ratelimit.NewClient(config.RedisAddr)
		limiter, limiterErr := ratelimit.NewFixedWindowLimiter(root.redis, config.RateLimitRequests, config.RateLimitWindow)
		if limiterErr != nil {
			_ = root.Close()
			return nil, fmt.Errorf("rate limiter: %w", limiterErr)
		}
		root.limiter = limiter
	}

	return root, nil
}

func eventTopics(config Config) commands.EventTopics {
	topics := commands.DefaultEventTopics()
	if config.KafkaOrderChangedTopic != "" {
		topics.OrderStatusChanged = config.KafkaOrderChangedTopic
	}
	if config.KafkaDeliveryRequestChangedTopic != "" {
		topics.DeliveryRequestStatusChanged = config.KafkaDeliveryRequestChangedTopic
	}
	return topics
}

// Close releases the broker and counter store connections.
func (c *CompositionRoot) Close() error {
	var err error
	if c.publisher != nil {
		err = c.publisher.Close()
	}
	if c.redis != nil {
		if redisErr := c.redis.Close(); err == nil {
			err = redisErr
		}
	}
	return err
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// Commands

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.uow(), c.topics)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uow(), c.topics)
}

func (c *CompositionRoot) CreateReassignOrderCommandHandler() commands.ReassignOrderCommandHandler {
	return commands.NewReassignOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelStorePendingOrdersCommandHandler() commands.CancelStorePendingOrdersCommandHandler {
	return commands.NewCancelStorePendingOrdersCommandHandler(c.uow(), c.topics)
}

func (c *CompositionRoot) CreateCreateDeliveryRequestCommandHandler() commands.CreateDeliveryRequestCommandHandler {
	return commands.NewCreateDeliveryRequestCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateClaimDeliveryRequestCommandHandler() commands.ClaimDeliveryRequestCommandHandler {
	return commands.NewClaimDeliveryRequestCommandHandler(c.uow(), c.topics)
}

func (c *CompositionRoot) CreateChangeDeliveryRequestStatusCommandHandler() commands.ChangeDeliveryRequestStatusCommandHandler {
	return commands.NewChangeDeliveryRequestStatusCommandHandler(c.uow(), c.topics)
}

func (c *CompositionRoot) CreateRegisterDelivererCommandHandler() commands.RegisterDelivererCommandHandler {
	var f commands.DelivererUoWFactory = FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDelivererCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDelivererAvailabilityCommandHandler() commands.SetDelivererAvailabilityCommandHandler {
	var f commands.DelivererUoWFactory = FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDelivererAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveDelivererCommandHandler() commands.ApproveDelivererCommandHandler {
	var f commands.DelivererUoWFactory = FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveDelivererCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateGeofenceAreaCommandHandler() commands.CreateGeofenceAreaCommandHandler {
	var f commands.GeofenceUoWFactory = FuncGeofenceUoWFactory(func() commands.GeofenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateGeofenceAreaCommandHandler(f)
}

func (c *CompositionRoot) CreatePublishOutboxMessagesCommandHandler() commands.PublishOutboxMessagesCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishOutboxMessagesCommandHandler(f, c.publisher)
}

// Queries

func (c *CompositionRoot) CreateListAvailableOrdersQueryHandler() queries.ListAvailableOrdersQueryHandler {
	return queries.NewListAvailableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestTrackingQueryHandler() queries.GetLatestTrackingQueryHandler {
	return queries.NewGetLatestTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProblematicOrdersQueryHandler() queries.GetProblematicOrdersQueryHandler {
	return queries.NewGetProblematicOrdersQueryHandler(c.gormDB, services.NewProblemDetector(nil))
}

func (c *CompositionRoot) CreateListAvailableDeliveryRequestsQueryHandler() queries.ListAvailableDeliveryRequestsQueryHandler {
	return queries.NewListAvailableDeliveryRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliverersQueryHandler() queries.ListDeliverersQueryHandler {
	return queries.NewListDeliverersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentLocationQueryHandler() queries.GetCurrentLocationQueryHandler {
	return queries.NewGetCurrentLocationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearbyDeliverersQueryHandler() queries.FindNearbyDeliverersQueryHandler {
	return queries.NewFindNearbyDeliverersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEstimateFeeQueryHandler() queries.EstimateFeeQueryHandler {
	return queries.NewEstimateFeeQueryHandler(pricingrepo.NewGormPricingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderLimitsQueryHandler() queries.GetOrderLimitsQueryHandler {
	return queries.NewGetOrderLimitsQueryHandler(pricingrepo.NewGormPricingRepository(c.gormDB))
}

func (c *CompositionRoot) CreateEstimateDeliveryQueryHandler() queries.EstimateDeliveryQueryHandler {
	return queries.NewEstimateDeliveryQueryHandler()
}

func (c *CompositionRoot) CreateGetDeliveryZonesQueryHandler() queries.GetDeliveryZonesQueryHandler {
	return queries.NewGetDeliveryZonesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDelivererStatsQueryHandler() queries.GetDelivererStatsQueryHandler {
	return queries.NewGetDelivererStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDelivererHistoryQueryHandler() queries.ListDelivererHistoryQueryHandler {
	return queries.NewListDelivererHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMyDeliveryRequestsQueryHandler() queries.ListMyDeliveryRequestsQueryHandler {
	return queries.NewListMyDeliveryRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

// Adapters

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	handlers := httpadapter.Handlers{
		PlaceOrder:                  c.CreatePlaceOrderCommandHandler(),
		ClaimOrder:                  c.CreateClaimOrderCommandHandler(),
		ChangeOrderStatus:           c.CreateChangeOrderStatusCommandHandler(),
		ReassignOrder:               c.CreateReassignOrderCommandHandler(),
		CancelStorePendingOrders:    c.CreateCancelStorePendingOrdersCommandHandler(),
		CreateDeliveryRequest:       c.CreateCreateDeliveryRequestCommandHandler(),
		ClaimDeliveryRequest:        c.CreateClaimDeliveryRequestCommandHandler(),
		ChangeDeliveryRequestStatus: c.CreateChangeDeliveryRequestStatusCommandHandler(),
		RegisterDeliverer:           c.CreateRegisterDelivererCommandHandler(),
		SetDelivererAvailability:    c.CreateSetDelivererAvailabilityCommandHandler(),
		ApproveDeliverer:            c.CreateApproveDelivererCommandHandler(),
		UpdateLocation:              c.CreateUpdateLocationCommandHandler(),
		CreateGeofenceArea:          c.CreateCreateGeofenceAreaCommandHandler(),

		ListAvailableOrders:           c.CreateListAvailableOrdersQueryHandler(),
		GetLatestTracking:             c.CreateGetLatestTrackingQueryHandler(),
		GetTrackingHistory:            c.CreateGetTrackingHistoryQueryHandler(),
		GetProblematicOrders:          c.CreateGetProblematicOrdersQueryHandler(),
		ListAvailableDeliveryRequests: c.CreateListAvailableDeliveryRequestsQueryHandler(),
		ListDeliverers:                c.CreateListDeliverersQueryHandler(),
		GetCurrentLocation:            c.CreateGetCurrentLocationQueryHandler(),
		FindNearbyDeliverers:          c.CreateFindNearbyDeliverersQueryHandler(),
		EstimateFee:                   c.CreateEstimateFeeQueryHandler(),
		GetOrderLimits:                c.CreateGetOrderLimitsQueryHandler(),
		EstimateDelivery:              c.CreateEstimateDeliveryQueryHandler(),
		GetDeliveryZones:              c.CreateGetDeliveryZonesQueryHandler(),
		GetDelivererStats:             c.CreateGetDelivererStatsQueryHandler(),
		ListDelivererHistory:          c.CreateListDelivererHistoryQueryHandler(),
		ListMyDeliveryRequests:        c.CreateListMyDeliveryRequestsQueryHandler(),
		TrackOrder:                    c.CreateTrackOrderQueryHandler(),
	}
	return httpadapter.NewServer(handlers, c.config.NearbyFreshnessWindow, c.logger)
}

func (c *CompositionRoot) CreateRouterConfig() httpadapter.RouterConfig {
	return httpadapter.RouterConfig{
		JWTSecret: []byte(c.config.JWTSecret),
		Limiter:   c.limiter,
		Logger:    c.logger,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePublishOutboxMessagesCommandHandler(),
		c.config.OutboxBatchSize,
		c.CreateGetProblematicOrdersQueryHandler(),
		c.logger,
	)
}

type FuncDelivererUoWFactory func() commands.DelivererUoW

func (f FuncDelivererUoWFactory) Create() commands.DelivererUoW {
	return f()
}

type FuncGeofenceUoWFactory func() commands.GeofenceUoW

func (f FuncGeofenceUoWFactory) Create() commands.GeofenceUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
