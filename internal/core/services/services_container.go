package services

import (
	portsrepo "github.com/SscSPs/wholesale_payments/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wholesale_payments/internal/core/ports/services"
	"github.com/SscSPs/wholesale_payments/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Store:    NewStoreService(repos.StoreRepo),
		Order:    NewOrderService(repos.OrderRepo, repos.StoreRepo),
		Payments: NewPaymentService(repos.StoreRepo, repos.OrderRepo, repos.ReportingRepo),
		Auth:     NewAuthService(cfg, repos.UserRepo),
	}
}
