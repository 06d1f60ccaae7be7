package services

import (
	"github.com/country-insights/country_insights_app/internal/core/ports/clients"
	portsrepo "github.com/country-insights/country_insights_app/internal/core/ports/repositories"
	portssvc "github.com/country-insights/country_insights_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	countrySource clients.CountrySource,
	rateSource clients.RateSource,
	renderer clients.SummaryRenderer,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Country: NewCountryService(repos.CountryRepo),
		Status:  NewStatusService(repos.CountryRepo, repos.StatusRepo),
		Refresh: NewRefreshService(
			countrySource,
			rateSource,
			repos.CountryRepo,
			repos.StatusRepo,
			renderer,
			NewGDPEstimator(),
		),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.CountrySvcFacade = (*CountryService)(nil)
	_ portssvc.RefreshSvc       = (*RefreshService)(nil)
	_ portssvc.StatusSvc        = (*StatusService)(nil)
)
