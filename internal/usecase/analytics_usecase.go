package usecase

import (
	"context"
	"math"
	"sort"

	"quotation_service/internal/domain/entities"
	"quotation_service/internal/domain/pricing"
	"quotation_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	popularServicesLimit  = 10
	recentQuotationsLimit = 10
)

// IAnalyticsUseCase builds the admin dashboard report.

type IAnalyticsUseCase interface {
	Report(ctx context.Context, caller entities.Caller) (entities.AnalyticsReport, error)
}

type AnalyticsUseCase struct {
	quotations interfaces.IQuotationRepository
	services   interfaces.IServiceRepository
	users      interfaces.IUserRepository
	log        logrus.FieldLogger
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(quotations interfaces.IQuotationRepository, services interfaces.IServiceRepository, users interfaces.IUserRepository, log logrus.FieldLogger) *AnalyticsUseCase {
	return &AnalyticsUseCase{quotations: quotations, services: services, users: users, log: log}
}

func (u *AnalyticsUseCase) Report(ctx context.Context, caller entities.Caller) (entities.AnalyticsReport, error) {
	if err := RequireRole(caller, entities.RoleAdmin); err != nil {
		return entities.AnalyticsReport{}, err
	}

	all, err := u.quotations.ListAll(ctx)
	if err != nil {
		return entities.AnalyticsReport{}, err
	}

	counts := map[string]int{}
	agents := map[string]*entities.AgentPerformance{}
	var agentOrder []string
	var revenue []float64

	for _, q := range all {
		if isFinite(q.Total) {
			revenue = append(revenue, q.Total)
		}
		for _, item := range q.Items {
			counts[item.ServiceID]++
		}
		a, ok := agents[q.CreatedBy]
		if !ok {
			a = &entities.AgentPerformance{AgentID: q.CreatedBy}
			agents[q.CreatedBy] = a
			agentOrder = append(agentOrder, q.CreatedBy)
		}
		a.Count++
		if isFinite(q.Total) {
			a.Revenue = pricing.Sum(a.Revenue, q.Total)
		}
	}

	top := topServices(counts, popularServicesLimit)
	recent := newest(all, recentQuotationsLimit)

	serviceIDs := make([]string, 0, len(top))
	for _, p := range top {
		serviceIDs = append(serviceIDs, p.ServiceID)
	}

	services := map[string]entities.Service{}
	users := map[string]entities.User{}
	g, gctx := errgroup.WithContext(ctx)
	if len(serviceIDs) > 0 {
		g.Go(func() error {
			found, err := u.services.GetByIDs(gctx, serviceIDs)
			for _, s := range found {
				services[s.ID] = s
			}
			return err
		})
	}
	if len(agentOrder) > 0 {
		g.Go(func() error {
			found, err := u.users.GetByIDs(gctx, agentOrder)
			for _, usr := range found {
				users[usr.ID] = usr
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return entities.AnalyticsReport{}, err
	}

	report := entities.AnalyticsReport{
		TotalQuotations:   len(all),
		TotalRevenue:      pricing.Sum(revenue...),
		PopularServices:   []entities.ServicePopularity{},
		QuotationsByAgent: []entities.AgentPerformance{},
		RecentQuotations:  make([]entities.RecentQuotation, 0, len(recent)),
	}

	// The limit applies before the name join; services gone from the catalog
	// shrink the list instead of letting lower ranked ones in.
	for _, p := range top {
		s, ok := services[p.ServiceID]
		if !ok {
			continue
		}
		p.ServiceName = s.Name
		report.PopularServices = append(report.PopularServices, p)
	}

	for _, id := range agentOrder {
		usr, ok := users[id]
		if !ok {
			continue
		}
		a := *agents[id]
		a.AgentName = usr.Name
		report.QuotationsByAgent = append(report.QuotationsByAgent, a)
	}
	sort.SliceStable(report.QuotationsByAgent, func(i, j int) bool {
		return report.QuotationsByAgent[i].Revenue > report.QuotationsByAgent[j].Revenue
	})

	for _, q := range recent {
		rq := entities.RecentQuotation{
			ID:         q.ID,
			Number:     q.Number,
			ClientName: q.ClientName,
			Total:      q.Total,
			Status:     q.Status,
			CreatedAt:  q.CreatedAt,
		}
		if usr, ok := users[q.CreatedBy]; ok {
			summary := usr.Summary()
			rq.CreatedBy = &summary
		}
		report.RecentQuotations = append(report.RecentQuotations, rq)
	}

	u.log.WithFields(logrus.Fields{
		"total_quotations": report.TotalQuotations,
		"total_revenue":    report.TotalRevenue,
	}).Debug("[analytics][usecase] report built")
	return report, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// topServices ranks service ids by occurrence count, ties broken by id.
func topServices(counts map[string]int, limit int) []entities.ServicePopularity {
	out := make([]entities.ServicePopularity, 0, len(counts))
	for id, n := range counts {
		out = append(out, entities.ServicePopularity{ServiceID: id, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ServiceID < out[j].ServiceID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func newest(list []entities.Quotation, limit int) []entities.Quotation {
	sorted := make([]entities.Quotation, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
